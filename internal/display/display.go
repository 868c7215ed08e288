// Package display queries the monitor layout used to size the viewer
// window.
package display

import (
	"errors"
	"image"
)

var (
	errNoMonitors = errors.New("no monitors available")
	// ErrUnsupported is returned where monitor queries are unavailable.
	ErrUnsupported = errors.New("monitor query not supported on this platform")
)

// Monitor describes one output in the desktop layout.
type Monitor struct {
	Index   int
	Name    string
	Rect    image.Rectangle
	Primary bool
}

// Primary returns the primary monitor, else the first one.
func Primary(monitors []Monitor) (Monitor, bool) {
	if len(monitors) == 0 {
		return Monitor{}, false
	}
	for _, m := range monitors {
		if m.Primary {
			return m, true
		}
	}
	return monitors[0], true
}

// Fallback is used when no monitor could be queried.
var Fallback = image.Pt(1024, 768)

// Minimum keeps the control panel usable on tiny images.
var Minimum = image.Pt(480, 360)

// WindowSize picks a window that fits content plus room for the control
// panel, clamped to 90% of the primary monitor.
func WindowSize(content image.Point, panel int, monitors []Monitor) image.Point {
	limit := Fallback
	if m, ok := Primary(monitors); ok && !m.Rect.Empty() {
		limit = image.Pt(m.Rect.Dx()*9/10, m.Rect.Dy()*9/10)
	}
	want := image.Pt(content.X, content.Y+panel)
	want.X = clamp(want.X, Minimum.X, limit.X)
	want.Y = clamp(want.Y, Minimum.Y, limit.Y)
	return want
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return hi
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
