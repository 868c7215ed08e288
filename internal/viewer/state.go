// Package viewer holds the interaction state of the image viewer and the
// two controllers that mutate it: pointer dragging and the stepped
// control panel. Both controllers are handed the same *State, so the
// order in which the host delivers events fully determines the result.
package viewer

import (
	"errors"
	"fmt"

	"github.com/example/photoviewer/internal/scene"
)

var (
	// ErrUnsupported is returned by Base for behaviour a concrete
	// controller did not provide.
	ErrUnsupported = errors.New("unsupported operation on an abstract controller")
	// ErrNilElement is returned when a controller is enabled without its
	// elements.
	ErrNilElement = errors.New("controller requires a surface and a controlled element")
	// ErrEmptyGeometry is returned when the controlled element has no
	// height to derive the zoom scale from.
	ErrEmptyGeometry = errors.New("controlled element has empty geometry")
)

// Point is a position in window pixels.
type Point struct {
	Left, Top float64
}

// Size is an extent in pixels.
type Size struct {
	Width, Height float64
}

// Vector is a pointer delta.
type Vector struct {
	X, Y float64
}

// State is the single source of truth for the controlled element's
// geometry and drag status.
type State struct {
	Position      Point
	Size          Size
	Dragging      bool
	PointerOffset Vector

	original Size
}

// NewState captures box as both the current and the original size.
func NewState(box scene.Box) (*State, error) {
	if box.Height <= 0 {
		return nil, fmt.Errorf("new state %vx%v: %w", box.Width, box.Height, ErrEmptyGeometry)
	}
	size := Size{Width: box.Width, Height: box.Height}
	return &State{Size: size, original: size}, nil
}

// OriginalSize returns the size captured at construction.
func (s *State) OriginalSize() Size { return s.original }

// Scale is the width to height ratio of the original size.
func (s *State) Scale() float64 { return s.original.Width / s.original.Height }
