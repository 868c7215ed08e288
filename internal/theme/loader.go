package theme

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no source provides the requested theme.
var ErrNotFound = errors.New("theme not found")

// Loader resolves theme names against a file path, the embedded themes,
// the user's config directory and finally the system directory.
type Loader struct {
	ConfigDir string
	SystemDir string
}

// NewLoader creates a Loader with the standard photoviewer paths.
func NewLoader() *Loader {
	l := &Loader{SystemDir: "/usr/share/photoviewer/themes"}
	if dir, err := os.UserConfigDir(); err == nil {
		l.ConfigDir = filepath.Join(dir, "photoviewer", "themes")
	}
	return l
}

// Load returns the theme called name. An empty name yields Default.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	if st, err := os.Stat(name); err == nil && !st.IsDir() {
		return parseFile(os.Open(name))
	}

	filename := name
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}
	if f, err := EmbeddedThemes.Open("defaults/" + filename); err == nil {
		return parseFile(f, nil)
	}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		f, err := os.Open(filepath.Join(dir, filename))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return parseFile(f, err)
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Names lists the embedded theme names.
func Names() []string {
	entries, err := fs.ReadDir(EmbeddedThemes, "defaults")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".theme"))
	}
	return names
}

func parseFile(f io.ReadCloser, err error) (*Theme, error) {
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
