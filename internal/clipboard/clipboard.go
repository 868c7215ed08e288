// Package clipboard reads images placed on the system clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
)

// ErrNoImage is returned when the clipboard holds no image data.
var ErrNoImage = errors.New("clipboard does not contain image data")

func decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrNoImage
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode clipboard image: %w", err)
	}
	return img, nil
}

// readChunks gathers an incremental selection transfer. next returns
// each chunk as it arrives; an empty chunk ends the transfer.
func readChunks(next func() ([]byte, error)) ([]byte, error) {
	var data []byte
	for {
		chunk, err := next()
		if err != nil {
			return nil, fmt.Errorf("incremental transfer: %w", err)
		}
		if len(chunk) == 0 {
			return data, nil
		}
		data = append(data, chunk...)
	}
}
