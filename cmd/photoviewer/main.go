package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/example/photoviewer/internal/config"
	"github.com/example/photoviewer/internal/logging"
	"github.com/example/photoviewer/internal/notify"
	"github.com/example/photoviewer/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs           *flag.FlagSet
	program      string
	stdout       io.Writer
	stderr       io.Writer
	ctx          context.Context
	config       *config.Config
	configLoader *config.Loader
	notifier     *notify.Notifier
	openAlerts   bool
	rejectAlerts bool
	themeName    string
	logLevel     string
	activeTheme  *theme.Theme
}

func (r *root) Program() string { return r.program }

func (r *root) FlagSet() *flag.FlagSet { return r.fs }

func (r *root) log() *zerolog.Logger { return logging.FromContext(r.ctx) }

func newRoot(stdout, stderr io.Writer) *root {
	path := configPathOverride
	if v := strings.TrimSpace(os.Getenv("PHOTOVIEWER_CONFIG")); v != "" {
		path = v
	}
	loader := config.NewLoader(version, path)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:           flag.NewFlagSet("photoviewer", flag.ContinueOnError),
		program:      "photoviewer",
		stdout:       stdout,
		stderr:       stderr,
		ctx:          context.Background(),
		config:       cfg,
		configLoader: loader,
	}
	r.fs.BoolVar(&r.openAlerts, "notify-open", cfg.Notify.Open, "show a desktop notification when an image opens")
	r.fs.BoolVar(&r.rejectAlerts, "notify-reject", cfg.Notify.Reject, "show a desktop notification when zooming out is refused")
	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use ("+strings.Join(theme.Names(), ", ")+")")
	r.fs.StringVar(&r.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	return r
}

func (r *root) subcommand(name string) string {
	return strings.TrimSpace(r.program + " " + name)
}

func (r *root) printf(format string, args ...any) {
	fmt.Fprintf(r.stdout, format, args...)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func (r *root) Run(args []string) error {
	if err := parseFlags(r.fs, args, r); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}

	level := firstNonEmpty(r.logLevel, os.Getenv("PHOTOVIEWER_LOG_LEVEL"))
	r.ctx = logging.WithContext(r.ctx, logging.New(r.stderr, level))

	r.notifier = notify.New(notify.LoadPreferences(), *logging.FromContext(logging.WithComponent(r.ctx, "notify")))
	r.notifier.Enable(notify.EventOpen, r.openAlerts)
	r.notifier.Enable(notify.EventReject, r.rejectAlerts)

	themeName := firstNonEmpty(r.themeName, os.Getenv("PHOTOVIEWER_THEME"), r.config.Theme)
	t, err := r.config.ResolveTheme(themeName, nil)
	if err != nil {
		if themeName != "default" {
			r.log().Warn().Err(err).Str("theme", themeName).Msg("using default theme")
		}
		t = theme.Default()
	}
	r.activeTheme = t

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var cmd runnable
	switch cmdName {
	case "view":
		cmd, err = parseViewCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "themes":
		cmd = &themesCmd{root: r}
	case "version":
		cmd = &versionCmd{root: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot(os.Stdout, os.Stderr)
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
