package viewer

import (
	"fmt"

	"github.com/example/photoviewer/internal/scene"
)

// DragController repositions the controlled element while the pointer is
// held down on it.
type DragController struct {
	Base
	controlled *scene.Node
}

var _ Controller = (*DragController)(nil)

// NewDragController creates a drag controller sharing state.
func NewDragController(host Host, state *State, opts ...Option) *DragController {
	o := buildOptions(opts)
	return &DragController{
		Base: NewBase(host, state, o.log.With().Str("controller", "drag").Logger()),
	}
}

// Enable listens for pointer events on surface.
func (d *DragController) Enable(surface, controlled *scene.Node) error {
	if err := d.ready(surface, controlled); err != nil {
		return fmt.Errorf("enable drag: %w", err)
	}
	d.controlled = controlled
	listener := func(ev *scene.Event) {
		if err := d.HandleEvent(ev); err != nil {
			d.log.Error().Err(err).Str("event", ev.Type).Msg("drag event")
		}
	}
	for _, name := range []string{scene.EventPointerDown, scene.EventPointerMove, scene.EventPointerUp} {
		d.host.Bind(surface, name, listener)
	}
	return nil
}

// HandleEvent applies a pointer event to the shared state.
func (d *DragController) HandleEvent(ev *scene.Event) error {
	if d.controlled == nil {
		return fmt.Errorf("drag event: %w", ErrNilElement)
	}
	ev = d.resolveEvent(ev)
	ev.PreventDefault()
	st := d.state

	switch ev.Type {
	case scene.EventPointerDown:
		if st.Dragging || target(ev) != d.controlled {
			return nil
		}
		// the live offset, not the cached position, so geometry changed
		// behind our back is picked up
		left, top := d.controlled.Offset()
		st.Dragging = true
		st.PointerOffset = Vector{X: ev.ClientX - left, Y: ev.ClientY - top}
		d.log.Debug().
			Float64("offset_x", st.PointerOffset.X).
			Float64("offset_y", st.PointerOffset.Y).
			Msg("drag start")
	case scene.EventPointerMove:
		if !st.Dragging {
			return nil
		}
		st.Position = Point{
			Left: ev.ClientX - st.PointerOffset.X,
			Top:  ev.ClientY - st.PointerOffset.Y,
		}
		d.controlled.SetPosition(scene.PositionAbsolute)
		d.controlled.SetLeft(st.Position.Left)
		d.controlled.SetTop(st.Position.Top)
	case scene.EventPointerUp:
		if st.Dragging {
			d.log.Debug().
				Float64("left", st.Position.Left).
				Float64("top", st.Position.Top).
				Msg("drag end")
		}
		st.Dragging = false
	}
	return nil
}
