package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/example/photoviewer/internal/theme"
	"github.com/example/photoviewer/internal/viewer"
)

// Notify selects which events raise a desktop notification.
type Notify struct {
	Open   bool
	Reject bool
}

// Config holds the application configuration.
type Config struct {
	Theme  string
	Viewer viewer.Settings
	Notify Notify
	Themes map[string]*theme.Theme
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		Viewer: viewer.DefaultSettings(),
		Notify: Notify{Reject: true},
		Themes: make(map[string]*theme.Theme),
	}
}

// ResolveTheme returns the theme selected by name, preferring inline
// [theme.NAME] sections over the loader.
func (c *Config) ResolveTheme(name string, l *theme.Loader) (*theme.Theme, error) {
	if name == "" {
		name = c.Theme
	}
	if t, ok := c.Themes[name]; ok {
		return t, nil
	}
	if l == nil {
		l = theme.NewLoader()
	}
	return l.Load(name)
}

// String returns the configuration in rc format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n\n", c.Theme)
	}

	sb.WriteString("[viewer]\n")
	fmt.Fprintf(&sb, "pan_step = %s\n", formatFloat(c.Viewer.PanStep))
	fmt.Fprintf(&sb, "zoom_step = %s\n", formatFloat(c.Viewer.ZoomStep))
	fmt.Fprintf(&sb, "min_width = %s\n", formatFloat(c.Viewer.MinWidth))
	fmt.Fprintf(&sb, "debounce = %s\n\n", c.Viewer.Debounce)

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "open = %v\n", c.Notify.Open)
	fmt.Fprintf(&sb, "reject = %v\n", c.Notify.Reject)

	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "\n[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name = %s\n", t.Name)
		for _, key := range theme.Fields() {
			fmt.Fprintf(&sb, "%s = %s\n", key, theme.Hex(t.Get(key)))
		}
	}
	return sb.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
