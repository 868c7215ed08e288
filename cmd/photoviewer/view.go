package main

import (
	"flag"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/example/photoviewer/internal/app"
	"github.com/example/photoviewer/internal/clipboard"
	"github.com/example/photoviewer/internal/display"
	"github.com/example/photoviewer/internal/imageio"
	"github.com/example/photoviewer/internal/logging"
	"github.com/example/photoviewer/internal/viewer"
)

var (
	loadImageFn     = imageio.Load
	readClipboardFn = clipboard.ReadImage
	listMonitorsFn  = display.ListMonitors
	runViewerFn     = func(st *app.AppState) error { return st.Run() }
)

type viewCmd struct {
	*root
	fs            *flag.FlagSet
	file          string
	fromClipboard bool
	settings      viewer.Settings
}

func (v *viewCmd) Program() string { return v.subcommand("view") }

func (v *viewCmd) FlagSet() *flag.FlagSet { return v.fs }

func parseViewCmd(args []string, r *root) (*viewCmd, error) {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	c := &viewCmd{root: r, fs: fs, settings: r.config.Viewer}
	fs.StringVar(&c.file, "file", "", "image file to open ("+strings.Join(imageio.Formats, ", ")+")")
	fs.BoolVar(&c.fromClipboard, "from-clipboard", false, "open the image currently on the clipboard")
	fs.Float64Var(&c.settings.PanStep, "pan-step", c.settings.PanStep, "pixels moved per pan click")
	fs.Float64Var(&c.settings.ZoomStep, "zoom-step", c.settings.ZoomStep, "pixels of height added or removed per zoom click")
	fs.Float64Var(&c.settings.MinWidth, "min-width", c.settings.MinWidth, "narrowest width that may still be zoomed out")
	fs.DurationVar(&c.settings.Debounce, "debounce", c.settings.Debounce, "delay before a panel click is applied")
	if err := parseFlags(fs, args, c); err != nil {
		return nil, err
	}
	if c.file == "" && fs.NArg() > 0 {
		c.file = fs.Arg(0)
	}
	switch {
	case c.file == "" && !c.fromClipboard:
		return nil, &UsageError{of: c, msg: "an image file or -from-clipboard is required"}
	case c.file != "" && c.fromClipboard:
		return nil, &UsageError{of: c, msg: "-file and -from-clipboard cannot be combined"}
	case c.settings.PanStep < 0 || c.settings.ZoomStep < 0 || c.settings.MinWidth < 0 || c.settings.Debounce < 0:
		return nil, &UsageError{of: c, msg: "steps, minimum width and debounce must not be negative"}
	}
	return c, nil
}

func (v *viewCmd) load() (image.Image, string, error) {
	if v.fromClipboard {
		img, err := readClipboardFn()
		if err != nil {
			return nil, "", fmt.Errorf("failed to read clipboard: %w", err)
		}
		return img, "clipboard", nil
	}
	img, format, err := loadImageFn(v.file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	v.log().Debug().Str("file", v.file).Str("format", format).Msg("image decoded")
	return img, v.file, nil
}

func (v *viewCmd) Run() error {
	img, name, err := v.load()
	if err != nil {
		return err
	}
	log := *logging.FromContext(logging.WithComponent(v.ctx, "viewer"))

	monitors, err := listMonitorsFn()
	if err != nil {
		log.Debug().Err(err).Msg("monitor layout unavailable")
	}

	start := time.Now()
	st := app.New(
		app.WithImage(img, name),
		app.WithSettings(v.settings),
		app.WithTheme(v.activeTheme),
		app.WithMonitors(monitors),
		app.WithNotifier(v.notifier),
		app.WithLogger(log),
	)
	if err := runViewerFn(st); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	log.Debug().Dur("open_for", time.Since(start)).Msg("viewer closed")
	return nil
}
