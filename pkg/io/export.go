package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
)

// WriteJSON encodes b as indented JSON and writes it to w. The output can be
// read back with [ReadJSON].
func WriteJSON(b *board.Board, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes b to a JSON file at path.
func ExportJSON(b *board.Board, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(b, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
