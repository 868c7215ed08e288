package main

import (
	"sort"
	"strings"

	"github.com/example/photoviewer/internal/theme"
)

type versionCmd struct{ *root }

func (v *versionCmd) Program() string { return v.subcommand("version") }

func (v *versionCmd) Run() error {
	v.printf("%s version %s", v.program, version)
	if commit != "" {
		v.printf(" (%s", commit)
		if date != "" {
			v.printf(" %s", date)
		}
		v.printf(")")
	}
	v.printf("\n")
	return nil
}

type themesCmd struct{ *root }

func (t *themesCmd) Program() string { return t.subcommand("themes") }

func (t *themesCmd) Run() error {
	for _, name := range theme.Names() {
		mark := " "
		if strings.EqualFold(name, t.activeTheme.Name) {
			mark = "*"
		}
		t.printf("%s %s\n", mark, name)
	}
	custom := make([]string, 0, len(t.config.Themes))
	for name := range t.config.Themes {
		custom = append(custom, name)
	}
	sort.Strings(custom)
	for _, name := range custom {
		t.printf("  %s (config)\n", name)
	}
	return nil
}
