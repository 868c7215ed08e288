package main

import (
	"flag"
	"fmt"
)

type configCmd struct {
	*root
	fs *flag.FlagSet
}

func (c *configCmd) Program() string { return c.subcommand("config") }

func (c *configCmd) FlagSet() *flag.FlagSet { return c.fs }

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	c := &configCmd{root: r, fs: flag.NewFlagSet("config", flag.ContinueOnError)}
	if err := parseFlags(c.fs, args, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c}
	}
	switch args[0] {
	case "print":
		c.printf("%s", c.config.String())
		return nil
	case "path":
		if p := c.configLoader.Path(); p != "" {
			c.printf("%s\n", p)
			return nil
		}
		c.printf("%s (not created)\n", c.configLoader.SavePath())
		return nil
	case "save":
		path, err := c.configLoader.Save(c.config)
		if err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		c.log().Info().Str("path", path).Msg("configuration saved")
		return nil
	default:
		return &UsageError{of: c, msg: fmt.Sprintf("unknown config command: %s", args[0])}
	}
}
