//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import (
	"errors"
	"image"
)

// ReadImage is unsupported on this platform.
func ReadImage() (image.Image, error) {
	return nil, errors.New("clipboard image operations are not supported on this platform")
}
