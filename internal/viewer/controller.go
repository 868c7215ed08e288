package viewer

import (
	"github.com/rs/zerolog"

	"github.com/example/photoviewer/internal/scene"
)

// Binder registers event listeners on scene nodes.
type Binder interface {
	Bind(n *scene.Node, event string, fn scene.Listener)
}

// Measurer reports a node's cumulative layout box.
type Measurer interface {
	Measure(n *scene.Node) scene.Box
}

// EventSource exposes the event currently being dispatched so handlers
// can recover when they are invoked without one.
type EventSource interface {
	Current() *scene.Event
}

// Host bundles the collaborators a controller needs. scene.Document
// satisfies it.
type Host interface {
	Binder
	Measurer
	EventSource
}

// Controller is implemented by the drag and control-panel controllers.
type Controller interface {
	// Enable binds the controller's listeners on surface so that they
	// act on controlled.
	Enable(surface, controlled *scene.Node) error
	// HandleEvent applies a single event.
	HandleEvent(ev *scene.Event) error
}

// Base carries the collaborators shared by every controller. Its own
// Enable and HandleEvent fail with ErrUnsupported so that a controller
// that forgets to provide them fails on first use.
type Base struct {
	host  Host
	state *State
	log   zerolog.Logger
}

var _ Controller = (*Base)(nil)

// NewBase wires host and the shared state together.
func NewBase(host Host, state *State, log zerolog.Logger) Base {
	return Base{host: host, state: state, log: log}
}

// State returns the shared interaction state.
func (b *Base) State() *State { return b.state }

// Enable is not implemented by Base.
func (b *Base) Enable(surface, controlled *scene.Node) error { return ErrUnsupported }

// HandleEvent is not implemented by Base.
func (b *Base) HandleEvent(ev *scene.Event) error { return ErrUnsupported }

// resolveEvent falls back to the event being dispatched and finally to
// an empty event, so handlers never see nil.
func (b *Base) resolveEvent(ev *scene.Event) *scene.Event {
	if ev != nil {
		return ev
	}
	if b.host != nil {
		if cur := b.host.Current(); cur != nil {
			return cur
		}
	}
	return &scene.Event{}
}

// target returns the node the event was aimed at, falling back to the
// node whose listener is running.
func target(ev *scene.Event) *scene.Node {
	if ev.Target != nil {
		return ev.Target
	}
	return ev.CurrentTarget
}

func (b *Base) ready(surface, controlled *scene.Node) error {
	if b.host == nil || b.state == nil || surface == nil || controlled == nil {
		return ErrNilElement
	}
	return nil
}
