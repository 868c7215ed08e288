package main

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/photoviewer/internal/app"
	"github.com/example/photoviewer/internal/display"
)

type cli struct {
	stdout, stderr bytes.Buffer
	r              *root
}

func newCLI(t *testing.T, rc string) *cli {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("PHOTOVIEWER_THEME", "")
	t.Setenv("PHOTOVIEWER_LOG_LEVEL", "")
	t.Setenv("PHOTOVIEWER_CONFIG", "")
	if rc != "" {
		path := filepath.Join(dir, "photoviewer", "config.rc")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(rc), 0o644))
	}
	c := &cli{}
	c.r = newRoot(&c.stdout, &c.stderr)
	return c
}

func stubViewer(t *testing.T) *[]*app.AppState {
	t.Helper()
	var runs []*app.AppState
	origLoad, origClip, origMon, origRun := loadImageFn, readClipboardFn, listMonitorsFn, runViewerFn
	loadImageFn = func(path string) (image.Image, string, error) {
		return image.NewRGBA(image.Rect(0, 0, 30, 20)), "png", nil
	}
	readClipboardFn = func() (image.Image, error) { return image.NewRGBA(image.Rect(0, 0, 5, 5)), nil }
	listMonitorsFn = func() ([]display.Monitor, error) { return nil, errors.New("no display") }
	runViewerFn = func(st *app.AppState) error {
		runs = append(runs, st)
		return nil
	}
	t.Cleanup(func() {
		loadImageFn, readClipboardFn, listMonitorsFn, runViewerFn = origLoad, origClip, origMon, origRun
	})
	return &runs
}

func TestRootUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"bogus"}, {"-h"}, {"-nope", "view"}} {
		err := newCLI(t, "").r.Run(args)
		var uerr *UsageError
		require.ErrorAs(t, err, &uerr, "args %v", args)
		assert.Contains(t, uerr.Error(), "Usage: photoviewer [flags] <command>")
		assert.Contains(t, uerr.Error(), "-log-level")
	}
}

func TestHelpTemplatesRender(t *testing.T) {
	c := newCLI(t, "")
	require.NoError(t, c.r.Run([]string{"version"}))
	view, err := parseViewCmd([]string{"x.png"}, c.r)
	require.NoError(t, err)
	cfg, err := parseConfigCmd(nil, c.r)
	require.NoError(t, err)

	for _, of := range []HelpData{c.r, view, cfg, &themesCmd{root: c.r}, &versionCmd{root: c.r}} {
		help, err := (&UsageError{of: of}).renderHelp()
		require.NoError(t, err, of.Template())
		assert.True(t, strings.HasPrefix(help, "Usage: "+of.Program()), help)
	}
}

func TestViewRequiresSource(t *testing.T) {
	stubViewer(t)
	var uerr *UsageError

	err := newCLI(t, "").r.Run([]string{"view"})
	require.ErrorAs(t, err, &uerr)
	assert.Contains(t, err.Error(), "an image file or -from-clipboard is required")

	err = newCLI(t, "").r.Run([]string{"view", "-from-clipboard", "-file", "a.png"})
	require.ErrorAs(t, err, &uerr)
	assert.Contains(t, err.Error(), "cannot be combined")

	err = newCLI(t, "").r.Run([]string{"view", "-pan-step", "-5", "a.png"})
	require.ErrorAs(t, err, &uerr)
}

func TestViewPassesSettings(t *testing.T) {
	runs := stubViewer(t)
	c := newCLI(t, "theme = dark\n[viewer]\nzoom_step = 20\n")
	require.NoError(t, c.r.Run([]string{"-log-level", "error", "view", "-pan-step", "15", "-debounce", "10ms", "cat.png"}))

	require.Len(t, *runs, 1)
	st := (*runs)[0]
	assert.Equal(t, "cat.png", st.Name)
	assert.Equal(t, 15.0, st.Settings.PanStep)
	assert.Equal(t, 20.0, st.Settings.ZoomStep)
	assert.Equal(t, 50.0, st.Settings.MinWidth)
	assert.Equal(t, 10*time.Millisecond, st.Settings.Debounce)
	assert.Equal(t, "Dark", st.Theme.Name)
	assert.Equal(t, image.Pt(30, 20), st.Image.Bounds().Size())
}

func TestViewFromClipboard(t *testing.T) {
	runs := stubViewer(t)
	require.NoError(t, newCLI(t, "").r.Run([]string{"view", "-from-clipboard"}))
	require.Len(t, *runs, 1)
	assert.Equal(t, "clipboard", (*runs)[0].Name)
}

func TestViewWrapsLoadErrors(t *testing.T) {
	stubViewer(t)
	sentinel := errors.New("boom")
	loadImageFn = func(string) (image.Image, string, error) { return nil, "", sentinel }
	err := newCLI(t, "").r.Run([]string{"view", "a.png"})
	require.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "failed to open image")

	readClipboardFn = func() (image.Image, error) { return nil, sentinel }
	err = newCLI(t, "").r.Run([]string{"view", "-from-clipboard"})
	require.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "failed to read clipboard")
}

func TestViewWrapsRunError(t *testing.T) {
	stubViewer(t)
	runViewerFn = func(*app.AppState) error { return app.ErrNoImage }
	err := newCLI(t, "").r.Run([]string{"view", "a.png"})
	assert.ErrorIs(t, err, app.ErrNoImage)
}

func TestConfigCommands(t *testing.T) {
	c := newCLI(t, "[notify]\nopen = true\n")
	require.NoError(t, c.r.Run([]string{"config", "print"}))
	assert.Contains(t, c.stdout.String(), "[viewer]\npan_step = 60\n")
	assert.Contains(t, c.stdout.String(), "open = true")

	c = newCLI(t, "")
	require.NoError(t, c.r.Run([]string{"config", "path"}))
	assert.Contains(t, c.stdout.String(), "(not created)")

	c = newCLI(t, "")
	require.NoError(t, c.r.Run([]string{"config", "save"}))
	_, err := os.Stat(c.r.configLoader.Path())
	assert.NoError(t, err)

	var uerr *UsageError
	assert.ErrorAs(t, newCLI(t, "").r.Run([]string{"config"}), &uerr)
	assert.ErrorAs(t, newCLI(t, "").r.Run([]string{"config", "burn"}), &uerr)
}

func TestVersionAndThemes(t *testing.T) {
	c := newCLI(t, "")
	require.NoError(t, c.r.Run([]string{"version"}))
	assert.Equal(t, "photoviewer version dev\n", c.stdout.String())

	c = newCLI(t, "[theme.mine]\nShadow = #000000\n")
	require.NoError(t, c.r.Run([]string{"-theme", "dark", "themes"}))
	out := c.stdout.String()
	assert.Contains(t, out, "* dark\n")
	assert.Contains(t, out, "  default\n")
	assert.Contains(t, out, "  mine (config)\n")
}

func TestUnknownThemeFallsBack(t *testing.T) {
	c := newCLI(t, "")
	require.NoError(t, c.r.Run([]string{"-theme", "missing", "version"}))
	assert.Equal(t, "Default", c.r.activeTheme.Name)
	assert.Contains(t, c.stderr.String(), "using default theme")
}

func TestViewHelpListsFormats(t *testing.T) {
	c := newCLI(t, "")
	_, err := parseViewCmd([]string{"-h"}, c.r)
	var uerr *UsageError
	require.ErrorAs(t, err, &uerr)
	assert.Contains(t, uerr.Error(), "png, jpeg, gif, bmp, tiff, webp")
}

func TestComponentLoggers(t *testing.T) {
	stubViewer(t)
	c := newCLI(t, "")
	require.NoError(t, c.r.Run([]string{"-log-level", "debug", "view", "cat.png"}))
	assert.Contains(t, c.stderr.String(), "component=viewer")
	assert.Contains(t, c.stderr.String(), "monitor layout unavailable")
}
