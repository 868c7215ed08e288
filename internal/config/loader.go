package config

import (
	"os"
	"path/filepath"
)

// Loader locates and reads the configuration file.
type Loader struct {
	Version      string // "dev" enables the working directory lookup
	OverridePath string
	ConfigDir    string // defaults to os.UserConfigDir()/photoviewer
}

// NewLoader creates a Loader.
func NewLoader(version, overridePath string) *Loader {
	l := &Loader{Version: version, OverridePath: overridePath}
	if dir, err := os.UserConfigDir(); err == nil {
		l.ConfigDir = filepath.Join(dir, "photoviewer")
	}
	return l
}

// Load reads the first configuration file found, or returns defaults
// when there is none.
func (l *Loader) Load() (*Config, error) {
	path := l.Path()
	if path == "" {
		return New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Path returns the configuration file in use, or "" if none exists.
func (l *Loader) Path() string {
	for _, p := range l.candidates() {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}
	return ""
}

// SavePath is where Save writes when no file exists yet.
func (l *Loader) SavePath() string {
	if p := l.Path(); p != "" {
		return p
	}
	if l.OverridePath != "" {
		return l.OverridePath
	}
	return filepath.Join(l.ConfigDir, "config.rc")
}

// Save writes cfg to SavePath, creating the directory if needed.
func (l *Loader) Save(cfg *Config) (string, error) {
	path := l.SavePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	return path, os.WriteFile(path, []byte(cfg.String()), 0o644)
}

func (l *Loader) candidates() []string {
	var out []string
	if l.OverridePath != "" {
		out = append(out, l.OverridePath)
	}
	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			out = append(out, filepath.Join(wd, ".photoviewerrc"))
		}
	}
	if l.ConfigDir != "" {
		out = append(out,
			filepath.Join(l.ConfigDir, "config.rc"),
			filepath.Join(l.ConfigDir, "photoviewer.rc"),
		)
	}
	return out
}
