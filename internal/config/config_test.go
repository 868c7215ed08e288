package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/photoviewer/internal/theme"
	"github.com/example/photoviewer/internal/viewer"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme

[viewer]
pan_step = 30
zoom_step = 40.5
min_width = "80"
debounce = 120ms

[notify]
open = true
reject = false

[theme.my_custom_theme]
CheckerLight = #111111
buttontext: #FFFFFF80
`
	cfg, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "my_custom_theme", cfg.Theme)
	assert.Equal(t, viewer.Settings{PanStep: 30, ZoomStep: 40.5, MinWidth: 80, Debounce: 120 * time.Millisecond}, cfg.Viewer)
	assert.Equal(t, Notify{Open: true, Reject: false}, cfg.Notify)

	th, ok := cfg.Themes["my_custom_theme"]
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0x11, 0x11, 0x11, 0xff}, th.CheckerLight)
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0x80}, th.ButtonText)
	assert.Equal(t, theme.Default().Shadow, th.Shadow)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, viewer.DefaultSettings(), cfg.Viewer)
	assert.True(t, cfg.Notify.Reject)
	assert.False(t, cfg.Notify.Open)
}

func TestParseErrors(t *testing.T) {
	for name, input := range map[string]string{
		"number":   "[viewer]\npan_step = far\n",
		"negative": "[viewer]\nmin_width = -1\n",
		"duration": "[viewer]\ndebounce = soon\n",
		"bool":     "[notify]\nreject = maybe\n",
		"color":    "[theme.x]\nShadow = black\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark

[viewer]
pan_step = 15
debounce = 1s

[notify]
open = true

[theme.custom]
Name = custom
CheckerDark = #000000
MessageText = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	cfg2, err := Parse(strings.NewReader(cfg.String()))
	require.NoError(t, err)
	assert.Equal(t, cfg, cfg2)
}

func TestResolveTheme(t *testing.T) {
	cfg, err := Parse(strings.NewReader("theme = custom\n[theme.custom]\nShadow = #010203\n"))
	require.NoError(t, err)

	th, err := cfg.ResolveTheme("", &theme.Loader{})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, th.Shadow)

	th, err = cfg.ResolveTheme("dark", &theme.Loader{})
	require.NoError(t, err)
	assert.Equal(t, "Dark", th.Name)
}

func TestLoaderPathOrder(t *testing.T) {
	dir := t.TempDir()
	l := &Loader{ConfigDir: dir}
	assert.Equal(t, "", l.Path())
	assert.Equal(t, filepath.Join(dir, "config.rc"), l.SavePath())

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)

	alt := filepath.Join(dir, "photoviewer.rc")
	require.NoError(t, os.WriteFile(alt, []byte("theme = dark\n"), 0o644))
	assert.Equal(t, alt, l.Path())

	override := filepath.Join(dir, "override.rc")
	require.NoError(t, os.WriteFile(override, []byte("theme = default\n"), 0o644))
	l.OverridePath = override
	cfg, err = l.Load()
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Theme)
}

func TestLoaderSave(t *testing.T) {
	dir := t.TempDir()
	l := &Loader{ConfigDir: filepath.Join(dir, "nested")}
	cfg := New()
	cfg.Viewer.PanStep = 10

	path, err := l.Save(cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "config.rc"), path)

	got, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Viewer.PanStep)
}
