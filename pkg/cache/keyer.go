package cache

import "fmt"

// Keyer builds cache keys. Implementations must include every input that
// changes the cached value.
type Keyer interface {
	// MeasureKey is the key of a board measurement.
	MeasureKey(boardHash string, opts MeasureKeyOpts) string

	// ArtifactKey is the key of a rendered board.
	ArtifactKey(boardHash string, opts ArtifactKeyOpts) string
}

// MeasureKeyOpts are the sampling inputs besides the board.
type MeasureKeyOpts struct {
	SX int `json:"sx"`
	SY int `json:"sy"`
}

// ArtifactKeyOpts are the rendering inputs besides the board.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Size   int    `json:"size,omitempty"`
	Grid   int    `json:"grid,omitempty"`
}

// DefaultKeyer builds keys of the form "kind:sha256(...)".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// MeasureKey implements Keyer.
func (DefaultKeyer) MeasureKey(boardHash string, opts MeasureKeyOpts) string {
	return hashKey("measure", boardHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(boardHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), boardHash, opts)
}
