package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/errors"
)

// ReadJSON decodes a board from r and validates it.
//
// Decoding and validation failures carry [errors.ErrCodeInvalidBoard].
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*board.Board, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBoard, err, "read board")
	}
	return DecodeJSON(data)
}

// DecodeJSON is [ReadJSON] for data already in memory.
func DecodeJSON(data []byte) (*board.Board, error) {
	var b board.Board
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &b.Objects); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBoard, err, "decode objects")
		}
	} else if err := json.Unmarshal(data, &b); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBoard, err, "decode board")
	}

	if err := b.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBoard, err, "invalid board")
	}
	return &b, nil
}

// ImportJSON reads the board stored at path.
//
// A missing file yields [errors.ErrCodeFileNotFound].
func ImportJSON(path string) (*board.Board, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	b, err := ReadJSON(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return b, nil
}
