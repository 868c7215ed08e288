package notify

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/example/photoviewer/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventOpen fires once an image is on screen.
	EventOpen Event = "open"
	// EventReject fires when the viewer refuses to shrink the image further.
	EventReject Event = "reject"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
	Urgency  platform.Urgency
}

// Preferences describes notification behaviour.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "Photo Viewer",
		Events: map[Event]EventPreference{
			EventOpen:   {Template: "Opened %s", Urgency: platform.UrgencyLow},
			EventReject: {Template: "%s", Urgency: platform.UrgencyNormal},
		},
	}
}

// LoadPreferences applies PHOTOVIEWER_NOTIFY_* environment overrides to
// the defaults.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("PHOTOVIEWER_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			p := prefs.Events[event]
			p.Template = v
			prefs.Events[event] = p
		}
	}
	apply("PHOTOVIEWER_NOTIFY_OPEN_TEXT", EventOpen)
	apply("PHOTOVIEWER_NOTIFY_REJECT_TEXT", EventReject)
	return prefs
}

var platformNotify = platform.Notify

// Notifier sends OS-level notifications for enabled events.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	log     zerolog.Logger
}

// New creates a Notifier with every event disabled.
func New(prefs Preferences, log zerolog.Logger) *Notifier {
	cloned := Preferences{Title: prefs.Title, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool), log: log}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	n.enabled[event] = enabled
}

// Open announces a newly displayed image, using it as the icon when a
// preview can be written.
func (n *Notifier) Open(name string, img image.Image) {
	if !n.enabledFor(EventOpen) {
		return
	}
	opts := platform.Options{}
	if img != nil {
		if path, cleanup, err := createPreview(img); err != nil {
			n.log.Debug().Err(err).Msg("notification preview")
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	if name == "" {
		name = "image"
	}
	n.dispatch(EventOpen, filepath.Base(name), opts)
}

// Warn reports a rejected action. It satisfies viewer.Warner.
func (n *Notifier) Warn(msg string) {
	n.dispatch(EventReject, msg, platform.Options{})
}

func (n *Notifier) enabledFor(event Event) bool {
	return n != nil && n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	if !n.enabledFor(event) {
		return
	}
	pref := n.prefs.Events[event]
	template := strings.TrimSpace(pref.Template)
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	opts.Urgency = pref.Urgency
	if err := platformNotify(n.prefs.Title, body, opts); err != nil {
		n.log.Warn().Err(err).Str("event", string(event)).Msg("notification failed")
	}
}

func createPreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "photoviewer-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	return path, func() { _ = os.Remove(path) }, nil
}
