// Package app runs the viewer window: it owns the shiny event loop, the
// scene and the painter goroutine.
package app

import (
	"context"
	"errors"
	"image"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/photoviewer/internal/display"
	"github.com/example/photoviewer/internal/notify"
	"github.com/example/photoviewer/internal/render"
	"github.com/example/photoviewer/internal/theme"
	"github.com/example/photoviewer/internal/viewer"
)

// ErrNoImage is returned by Run when no image was configured.
var ErrNoImage = errors.New("no image to display")

// AppState holds what the viewer window shows and how it behaves.
type AppState struct {
	Image    image.Image
	Name     string
	Settings viewer.Settings
	Theme    *theme.Theme
	Shadow   render.ShadowOptions
	Monitors []display.Monitor

	notifier *notify.Notifier
	log      zerolog.Logger
	err      error
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithImage sets the displayed image and the name used in the title.
func WithImage(img image.Image, name string) Option {
	return func(a *AppState) { a.Image, a.Name = img, name }
}

// WithSettings overrides the control panel steps and debounce delay.
func WithSettings(s viewer.Settings) Option { return func(a *AppState) { a.Settings = s } }

// WithTheme sets the color palette.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithMonitors provides the monitor layout used to size the window.
func WithMonitors(m []display.Monitor) Option { return func(a *AppState) { a.Monitors = m } }

// WithNotifier routes open and rejection events to desktop notifications.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.notifier = n } }

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option { return func(a *AppState) { a.log = l } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Settings: viewer.DefaultSettings(),
		Theme:    theme.Default(),
		Shadow:   render.DefaultShadowOptions(),
		log:      zerolog.Nop(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// actionEvent carries a debounced panel action back onto the loop.
type actionEvent struct{ fn func() }

// Run opens the window and blocks until it closes.
func (a *AppState) Run() error {
	if a.Image == nil || a.Image.Bounds().Empty() {
		return ErrNoImage
	}
	driver.Main(a.Main)
	return a.err
}

// WindowSize is the initial window size for the configured image.
func (a *AppState) WindowSize() image.Point {
	return display.WindowSize(a.Image.Bounds().Size(), panelHeight, a.Monitors)
}

// Main runs the event loop on s.
func (a *AppState) Main(s screen.Screen) {
	winSize := a.WindowSize()
	title := "Photo Viewer"
	if a.Name != "" {
		title = a.Name + " - " + title
	}
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: winSize.X, Height: winSize.Y, Title: title})
	if err != nil {
		a.err = err
		return
	}
	defer w.Release()

	sess, err := newSession(winSize, a.Image, a.log, a.notifier,
		viewer.WithSettings(a.Settings),
		viewer.WithPost(func(fn func()) { w.Send(actionEvent{fn}) }),
	)
	if err != nil {
		a.err = err
		return
	}
	defer sess.close()
	a.notifier.Open(a.Name, a.Image)
	a.log.Info().Str("image", a.Name).Int("width", winSize.X).Int("height", winSize.Y).Msg("viewer open")

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	cancelPaint := func() {
		paintMu.Lock()
		if paintCancel != nil {
			paintCancel()
		}
		paintMu.Unlock()
	}
	paintCh := make(chan render.Frame, 1)
	defer close(paintCh)
	go func() {
		r := render.NewRenderer()
		for f := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			a.drawFrame(ctx, r, s, w, f)
			paintMu.Lock()
			paintCancel = nil
			paintMu.Unlock()
			cancel()
		}
	}()

	var messageTimer *time.Timer
	defer func() {
		if messageTimer != nil {
			messageTimer.Stop()
		}
	}()

	for {
		switch e := w.NextEvent().(type) {
		case actionEvent:
			shown := sess.messageUntil
			e.fn()
			if sess.messageUntil != shown {
				// repaint once the message expires
				if messageTimer != nil {
					messageTimer.Stop()
				}
				messageTimer = time.AfterFunc(messageDuration, func() { w.Send(paint.Event{}) })
			}
			w.Send(paint.Event{})
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				cancelPaint()
				return
			}
		case size.Event:
			if e.WidthPx > 0 && e.HeightPx > 0 {
				sess.resize(image.Pt(e.WidthPx, e.HeightPx))
			}
			w.Send(paint.Event{})
		case paint.Event:
			cancelPaint()
			f := sess.frame(a.Theme, a.Shadow)
			select {
			case paintCh <- f:
			default:
				select {
				case <-paintCh:
				default:
				}
				paintCh <- f
			}
		case mouse.Event:
			if sess.mouse(e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			repaint, quit := sess.key(e)
			if quit {
				cancelPaint()
				return
			}
			if repaint {
				w.Send(paint.Event{})
			}
		case error:
			a.log.Error().Err(e).Msg("window event")
		}
	}
}

func (a *AppState) drawFrame(ctx context.Context, r *render.Renderer, s screen.Screen, w screen.Window, f render.Frame) {
	if f.Size.X <= 0 || f.Size.Y <= 0 {
		return
	}
	b, err := s.NewBuffer(f.Size)
	if err != nil {
		a.log.Error().Err(err).Msg("new buffer")
		return
	}
	defer b.Release()
	if err := r.Draw(ctx, b.RGBA(), f); err != nil {
		return
	}
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
