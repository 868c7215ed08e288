package app

import (
	"image"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/photoviewer/internal/render"
	"github.com/example/photoviewer/internal/scene"
	"github.com/example/photoviewer/internal/theme"
	"github.com/example/photoviewer/internal/viewer"
)

const messageDuration = 2 * time.Second

var keyControls = map[key.Code]string{
	key.CodeLeftArrow:  viewer.ControlLeft,
	key.CodeRightArrow: viewer.ControlRight,
	key.CodeUpArrow:    viewer.ControlUp,
	key.CodeDownArrow:  viewer.ControlDown,
}

var runeControls = map[rune]string{
	'+': viewer.ControlIncrease,
	'=': viewer.ControlIncrease,
	'-': viewer.ControlReduce,
	'0': viewer.ControlBack,
}

// session owns the scene and translates window input into scene events.
// Every method runs on the event loop goroutine.
type session struct {
	*layout
	viewer *viewer.Viewer
	log    zerolog.Logger
	now    func() time.Time
	// background runs work that must not hold up the event loop.
	background func(func())

	size    image.Point
	hover   *scene.Node
	pressed *scene.Node

	message      string
	messageUntil time.Time
}

// newSession builds the layout for img and enables the controllers on
// it. Rejections are shown in the window and then passed to extra off
// the event loop.
func newSession(size image.Point, img image.Image, log zerolog.Logger, extra viewer.Warner, opts ...viewer.Option) (*session, error) {
	s := &session{
		layout: buildLayout(size, img),
		log:    log,
		now:    time.Now,
		size:   size,

		background: func(fn func()) { go fn() },
	}
	opts = append(opts, viewer.WithLogger(log), viewer.WithWarner(viewer.WarnFunc(func(msg string) {
		s.showMessage(msg)
		if extra != nil {
			s.background(func() { extra.Warn(msg) })
		}
	})))
	v, err := viewer.Enable(s.doc, s.doc.Root(), s.container, s.photo, opts...)
	if err != nil {
		return nil, err
	}
	s.viewer = v
	return s, nil
}

func (s *session) close() { s.viewer.Close() }

func (s *session) resize(size image.Point) {
	s.size = size
	s.layout.resize(size)
}

// showMessage displays msg over the window for a short while.
func (s *session) showMessage(msg string) {
	s.message = msg
	s.messageUntil = s.now().Add(messageDuration)
}

func (s *session) dispatch(kind string, x, y float64) {
	s.doc.Dispatch(&scene.Event{Type: kind, ClientX: x, ClientY: y})
}

// mouse handles a pointer event and reports whether a repaint is needed.
func (s *session) mouse(e mouse.Event) bool {
	x, y := float64(e.X), float64(e.Y)
	switch e.Direction {
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft {
			return false
		}
		s.pressed = s.doc.HitTest(x, y)
		s.dispatch(scene.EventPointerDown, x, y)
		return true
	case mouse.DirRelease:
		if e.Button != mouse.ButtonLeft {
			return false
		}
		s.dispatch(scene.EventPointerUp, x, y)
		if s.pressed != nil && s.doc.HitTest(x, y) == s.pressed {
			s.doc.Dispatch(&scene.Event{Type: scene.EventClick, ClientX: x, ClientY: y, Target: s.pressed})
		}
		s.pressed = nil
		return true
	case mouse.DirNone:
		hover := s.buttonAt(x, y)
		changed := hover != s.hover
		s.hover = hover
		dragging := s.viewer.State.Dragging
		s.dispatch(scene.EventPointerMove, x, y)
		return changed || dragging
	}
	return false
}

func (s *session) buttonAt(x, y float64) *scene.Node {
	n := s.doc.HitTest(x, y)
	if n != nil && n.Class == classControl {
		return n
	}
	return nil
}

// key handles a key event. quit reports that the window should close.
func (s *session) key(e key.Event) (repaint, quit bool) {
	if e.Direction == key.DirRelease {
		return false, false
	}
	if e.Code == key.CodeEscape || e.Rune == 'q' || e.Rune == 'Q' {
		return false, true
	}
	id, ok := keyControls[e.Code]
	if !ok {
		id, ok = runeControls[e.Rune]
	}
	if !ok {
		return false, false
	}
	s.log.Debug().Str("control", id).Msg("key shortcut")
	s.doc.Dispatch(&scene.Event{Type: scene.EventClick, Target: s.buttons[id]})
	return true, false
}

// frame snapshots the current scene for the painter.
func (s *session) frame(th *theme.Theme, shadow render.ShadowOptions) render.Frame {
	f := render.Frame{
		Size:   s.size,
		Theme:  th,
		Shadow: shadow,
		Layers: s.layout.frame(s.hover, s.pressed),
	}
	if s.message != "" && s.now().Before(s.messageUntil) {
		f.Message = s.message
	}
	return f
}
