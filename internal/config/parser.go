package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/example/photoviewer/internal/theme"
)

// Parse reads an rc file: "key = value" (or "key: value") lines grouped
// under [viewer], [notify] and [theme.NAME] sections.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	sc := bufio.NewScanner(r)

	var section string
	var current *theme.Theme
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(line[1 : len(line)-1])
			current = nil
			if name, ok := strings.CutPrefix(section, "theme."); ok {
				current = theme.Default()
				current.Name = name
				cfg.Themes[name] = current
			}
			continue
		}

		key, value, ok := splitPair(line)
		if !ok {
			continue
		}

		var err error
		switch {
		case current != nil:
			err = current.Set(key, value)
		case section == "viewer":
			err = setViewerField(cfg, key, value)
		case section == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		case section == "":
			if strings.EqualFold(key, "theme") {
				cfg.Theme = value
			}
		}
		if err != nil {
			if section == "" {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
			return nil, fmt.Errorf("error in section [%s]: %w", section, err)
		}
	}
	return cfg, sc.Err()
}

func splitPair(line string) (string, string, bool) {
	sep := strings.IndexAny(line, "=:")
	if sep < 0 {
		return "", "", false
	}
	key := strings.TrimSpace(line[:sep])
	value := strings.TrimSpace(line[sep+1:])
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

func setViewerField(cfg *Config, key, value string) error {
	key = strings.ToLower(key)
	if key == "debounce" {
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return fmt.Errorf("invalid duration for key %s: %q", key, value)
		}
		cfg.Viewer.Debounce = d
		return nil
	}

	var dst *float64
	switch key {
	case "pan_step":
		dst = &cfg.Viewer.PanStep
	case "zoom_step":
		dst = &cfg.Viewer.ZoomStep
	case "min_width":
		dst = &cfg.Viewer.MinWidth
	default:
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 {
		return fmt.Errorf("invalid number for key %s: %q", key, value)
	}
	*dst = f
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "open":
		n.Open = b
	case "reject":
		n.Reject = b
	}
	return nil
}
