package viewer

import (
	"fmt"

	"github.com/example/photoviewer/internal/scene"
)

// Viewer is an enabled pair of controllers over one controlled element.
type Viewer struct {
	State *State
	Drag  *DragController
	Panel *PanelController
}

// Enable measures controlled, builds the shared state from its box and
// enables dragging on surface and the control panel on container.
func Enable(host Host, surface, container, controlled *scene.Node, opts ...Option) (*Viewer, error) {
	if host == nil || surface == nil || container == nil || controlled == nil {
		return nil, fmt.Errorf("enable viewer: %w", ErrNilElement)
	}
	st, err := NewState(host.Measure(controlled))
	if err != nil {
		return nil, fmt.Errorf("enable viewer: %w", err)
	}
	v := &Viewer{
		State: st,
		Drag:  NewDragController(host, st, opts...),
		Panel: NewPanelController(host, st, opts...),
	}
	if err := v.Drag.Enable(surface, controlled); err != nil {
		return nil, err
	}
	if err := v.Panel.Enable(container, controlled); err != nil {
		return nil, err
	}
	return v, nil
}

// Close cancels any pending panel action.
func (v *Viewer) Close() {
	if v.Panel != nil {
		v.Panel.Stop()
	}
}
