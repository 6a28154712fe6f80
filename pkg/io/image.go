package io

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/errors"
)

// ReadPNG decodes a rendered board image from r. Decoding failures carry
// [errors.ErrCodeInvalidBoard].
func ReadPNG(r io.Reader) (image.Image, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBoard, err, "decode png")
	}
	return img, nil
}

// ImportPNG reads the board image stored at path.
//
// A missing file yields [errors.ErrCodeFileNotFound].
func ImportPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	img, err := ReadPNG(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return img, nil
}
