package viewer

import (
	"fmt"

	"github.com/example/photoviewer/internal/scene"
)

// Control IDs carried by the panel buttons.
const (
	ControlUp       = "control-up"
	ControlDown     = "control-down"
	ControlLeft     = "control-left"
	ControlRight    = "control-right"
	ControlIncrease = "control-increase"
	ControlReduce   = "control-reduce"
	ControlBack     = "control-back"
)

// Controls lists the panel controls in display order.
var Controls = []string{
	ControlLeft, ControlUp, ControlDown, ControlRight,
	ControlIncrease, ControlReduce, ControlBack,
}

// ReduceWarning is reported when zooming out would shrink the element
// below the minimum width.
const ReduceWarning = "The target is too small to reduce"

// PanelController applies stepped geometry changes for clicks on the
// control container. Clicks are debounced per controller.
type PanelController struct {
	Base
	settings   Settings
	warner     Warner
	debounce   *Debouncer
	controlled *scene.Node
	positioned bool
	actions    map[string]func()
}

var _ Controller = (*PanelController)(nil)

// NewPanelController creates a control-panel controller sharing state.
func NewPanelController(host Host, state *State, opts ...Option) *PanelController {
	o := buildOptions(opts)
	p := &PanelController{
		Base:     NewBase(host, state, o.log.With().Str("controller", "panel").Logger()),
		settings: o.settings,
		warner:   o.warner,
		debounce: NewDebouncer(o.settings.Debounce, o.sched, o.post),
	}
	p.actions = map[string]func(){
		ControlUp:       func() { p.pan(0, -p.settings.PanStep) },
		ControlDown:     func() { p.pan(0, p.settings.PanStep) },
		ControlLeft:     func() { p.pan(-p.settings.PanStep, 0) },
		ControlRight:    func() { p.pan(p.settings.PanStep, 0) },
		ControlIncrease: p.zoomIn,
		ControlReduce:   p.zoomOut,
		ControlBack:     p.reset,
	}
	return p
}

// Enable listens for clicks on the control container.
func (p *PanelController) Enable(container, controlled *scene.Node) error {
	if err := p.ready(container, controlled); err != nil {
		return fmt.Errorf("enable panel: %w", err)
	}
	p.controlled = controlled
	p.host.Bind(container, scene.EventClick, func(ev *scene.Event) {
		if err := p.HandleEvent(ev); err != nil {
			p.log.Error().Err(err).Str("event", ev.Type).Msg("panel event")
		}
	})
	return nil
}

// HandleEvent schedules the click's action, superseding any click still
// waiting out the debounce delay.
func (p *PanelController) HandleEvent(ev *scene.Event) error {
	if p.controlled == nil {
		return fmt.Errorf("panel event: %w", ErrNilElement)
	}
	ev = p.resolveEvent(ev)
	ev.PreventDefault()
	kind := ev.Type
	var id string
	if t := target(ev); t != nil {
		id = t.ID
	}
	p.debounce.Trigger(func() { p.apply(kind, id) })
	return nil
}

// Stop drops a click still waiting to be applied.
func (p *PanelController) Stop() { p.debounce.Stop() }

// Pending reports whether a click is waiting to be applied.
func (p *PanelController) Pending() bool { return p.debounce.Pending() }

func (p *PanelController) apply(kind, id string) {
	if !p.positioned {
		if p.controlled.Style().Position != scene.PositionAbsolute {
			p.controlled.SetPosition(scene.PositionAbsolute)
		}
		p.positioned = true
	}
	if kind != scene.EventClick {
		return
	}
	action, ok := p.actions[id]
	if !ok {
		return
	}
	p.log.Debug().Str("control", id).Msg("panel action")
	action()
}

func (p *PanelController) pan(dx, dy float64) {
	st := p.state
	if dx != 0 {
		st.Position.Left += dx
		p.controlled.SetLeft(st.Position.Left)
	}
	if dy != 0 {
		st.Position.Top += dy
		p.controlled.SetTop(st.Position.Top)
	}
}

func (p *PanelController) zoomIn() {
	st := p.state
	st.Size.Width += p.settings.ZoomStep * st.Scale()
	st.Size.Height += p.settings.ZoomStep
	p.writeSize()
}

func (p *PanelController) zoomOut() {
	st := p.state
	if st.Size.Width < p.settings.MinWidth {
		p.log.Warn().Float64("width", st.Size.Width).Msg("zoom out rejected")
		p.warner.Warn(ReduceWarning)
		return
	}
	st.Size.Width -= p.settings.ZoomStep * st.Scale()
	st.Size.Height -= p.settings.ZoomStep
	p.writeSize()
}

func (p *PanelController) reset() {
	st := p.state
	st.Size = st.OriginalSize()
	st.Position = Point{}
	p.writeSize()
	p.controlled.SetTop(0)
	p.controlled.SetLeft(0)
}

func (p *PanelController) writeSize() {
	p.controlled.SetWidth(p.state.Size.Width)
	p.controlled.SetHeight(p.state.Size.Height)
}
