// Copyright 2023 The Gitea Authors. All rights reserved.
// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/KDE/craftmaster/modules/json"
	"github.com/KDE/craftmaster/modules/log"
	"github.com/KDE/craftmaster/services/master"

	"github.com/urfave/cli/v2"
)

// runMaster is replaced in tests, a real run clones craft and starts python
var runMaster = func(ctx context.Context, m *master.Master) error {
	return m.Run(ctx)
}

type AppVersion struct {
	Version string
	Extra   string
}

func appFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose logging of CraftMaster",
		},
		&cli.StringFlag{
			Name:     "config",
			Usage:    "The path to the configuration file",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:  "config-override",
			Usage: "The path to a configuration override, may be given more than once",
		},
		&cli.StringSliceFlag{
			Name:  "variables",
			Usage: "Set values for the [Variables] section in the configuration, as one or more Name=Value",
		},
		&cli.StringSliceFlag{
			Name:  "targets",
			Usage: "Only use a subset of targets, one or more names or glob patterns like 'windows-*'",
		},
		&cli.BoolFlag{
			Name:  "setup",
			Usage: "Regenerate the settings of targets which were set up before",
		},
		&cli.BoolFlag{
			Name:  "print-targets",
			Usage: "Print all available targets",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Print the targets as a JSON array",
		},
		&cli.BoolFlag{
			Name:    "commands",
			Aliases: []string{"c"},
			Usage:   "All following arguments are passed to craft, by default the command from the configuration is used",
		},
	}
}

func NewMainApp(appVer AppVersion) *cli.App {
	app := cli.NewApp()
	app.Name = "craftmaster"
	app.Usage = "Set up and drive multiple Craft build roots from one configuration"
	app.Description = `CraftMaster reads a layered INI configuration, derives the build targets from its sections,
sets up one Craft root per target and runs Craft commands in each of them.`
	app.ArgsUsage = "[-c craft arguments...]"
	app.Version = appVer.Version + appVer.Extra
	app.HideHelpCommand = true
	// values like "Flags=-j4,-l4" must not be split
	app.DisableSliceFlagSeparator = true
	app.Flags = appFlags()
	app.Before = prepareConsoleLoggerLevel
	app.Action = runCraftMaster
	return app
}

func prepareConsoleLoggerLevel(c *cli.Context) error {
	if c.Bool("verbose") {
		log.GetLogger().SetLevel(log.DEBUG)
	}
	return nil
}

func runCraftMaster(c *cli.Context) error {
	var commands []string
	if c.Bool("commands") {
		commands = c.Args().Slice()
	} else if c.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s, craft commands must follow -c", strings.Join(c.Args().Slice(), " "))
	}

	m, err := master.New(master.Options{
		ConfigFiles: append([]string{c.String("config")}, c.StringSlice("config-override")...),
		Variables:   c.StringSlice("variables"),
		Targets:     c.StringSlice("targets"),
		Commands:    commands,
		Setup:       c.Bool("setup"),
		Stdout:      c.App.Writer,
		Stderr:      c.App.ErrWriter,
	})
	if err != nil {
		return err
	}

	if c.Bool("print-targets") {
		return printTargets(c.App.Writer, m.Targets(), c.Bool("json"))
	}
	return runMaster(c.Context, m)
}

func printTargets(w io.Writer, targets []string, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(targets)
	}
	if _, err := fmt.Fprintln(w, "Targets:"); err != nil {
		return err
	}
	for _, t := range targets {
		if _, err := fmt.Fprintf(w, "\t%s\n", t); err != nil {
			return err
		}
	}
	return nil
}

// multiValueFlags take every argument up to the next flag as a value
var multiValueFlags = []string{"variables", "targets"}

func flagName(arg string) (name string, inline bool) {
	name = strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	name, _, inline = strings.Cut(name, "=")
	return name, inline
}

// expandMultiValueFlags repeats a multi value flag for each of its values,
// "--targets a b" becomes "--targets a --targets b"
func expandMultiValueFlags(args []string) []string {
	out := make([]string, 0, len(args))
	current := ""
	expectValue := false
	for i, arg := range args {
		if i == 0 {
			out = append(out, arg)
			continue
		}
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if len(arg) > 1 && arg[0] == '-' && !expectValue {
			name, inline := flagName(arg)
			out = append(out, arg)
			if name == "c" || name == "commands" {
				return append(out, args[i+1:]...)
			}
			current = ""
			if slices.Contains(multiValueFlags, name) {
				current = "--" + name
				expectValue = !inline
			}
			continue
		}
		if current != "" && !expectValue {
			out = append(out, current)
		}
		expectValue = false
		out = append(out, arg)
	}
	return out
}

// splitCommands ends flag parsing at the first -c/--commands, everything after it belongs to craft
func splitCommands(args []string) []string {
	for i, arg := range args {
		if i == 0 {
			continue
		}
		if arg == "--" {
			return args
		}
		if arg == "-c" || arg == "--commands" {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i+1]...)
			out = append(out, "--")
			return append(out, args[i+1:]...)
		}
	}
	return args
}

func RunMainApp(app *cli.App, args ...string) error {
	ctx, cancel := installSignals()
	defer cancel()
	err := app.RunContext(ctx, splitCommands(expandMultiValueFlags(args)))
	if err == nil {
		return nil
	}
	if strings.HasPrefix(err.Error(), "flag provided but not defined:") {
		// the cli package should already have output the error message, so just exit
		cli.OsExiter(1)
		return err
	}
	_, _ = fmt.Fprintf(app.ErrWriter, "Command error: %v\n", err)
	cli.OsExiter(1)
	return err
}
