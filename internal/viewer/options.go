package viewer

import (
	"time"

	"github.com/rs/zerolog"
)

// Settings holds the step sizes and timings of the control panel.
type Settings struct {
	PanStep  float64
	ZoomStep float64
	MinWidth float64
	Debounce time.Duration
}

// DefaultSettings returns the stock control panel behaviour.
func DefaultSettings() Settings {
	return Settings{
		PanStep:  60,
		ZoomStep: 100,
		MinWidth: 50,
		Debounce: 50 * time.Millisecond,
	}
}

// Warner surfaces a recoverable problem to the user.
type Warner interface {
	Warn(msg string)
}

// WarnFunc adapts a function to Warner.
type WarnFunc func(msg string)

// Warn calls f(msg).
func (f WarnFunc) Warn(msg string) { f(msg) }

type options struct {
	settings Settings
	log      zerolog.Logger
	sched    Scheduler
	post     func(func())
	warner   Warner
}

// Option configures a controller.
type Option func(*options)

// WithSettings overrides DefaultSettings.
func WithSettings(s Settings) Option { return func(o *options) { o.settings = s } }

// WithLogger sets the logger used for controller diagnostics.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.log = l } }

// WithScheduler sets the scheduler behind the panel debouncer.
func WithScheduler(s Scheduler) Option { return func(o *options) { o.sched = s } }

// WithPost sets how debounced panel actions are handed back to the
// event loop.
func WithPost(post func(func())) Option { return func(o *options) { o.post = post } }

// WithWarner sets where zoom rejections are reported.
func WithWarner(w Warner) Option { return func(o *options) { o.warner = w } }

func buildOptions(opts []Option) options {
	o := options{
		settings: DefaultSettings(),
		log:      zerolog.Nop(),
		sched:    SystemScheduler,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.warner == nil {
		o.warner = WarnFunc(func(string) {})
	}
	return o
}
