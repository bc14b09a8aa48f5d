// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package master sets up one craft root per configured target and runs craft in them.
package master

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/KDE/craftmaster/modules/git"
	"github.com/KDE/craftmaster/modules/log"
	"github.com/KDE/craftmaster/modules/process"
	"github.com/KDE/craftmaster/modules/setting"
	"github.com/KDE/craftmaster/modules/target"
	"github.com/KDE/craftmaster/modules/util"
	"github.com/KDE/craftmaster/services/materialize"

	"github.com/kballard/go-shellquote"
)

// DefaultCraftURL is cloned when [General] CraftUrl is not set
const DefaultCraftURL = "https://invent.kde.org/kde/craft.git"

// CloneDir is the directory below Root all craft roots link to
const CloneDir = "craft-clone"

// collaborators, replaced in tests
var (
	cloneRepo    = git.Clone
	checkoutRepo = git.Checkout
	headCommit   = git.HeadCommitID
	linkDir      = util.Link
	runCommand   = process.Run
)

// Options of a CraftMaster run
type Options struct {
	// ConfigFiles are the main configuration followed by its overrides
	ConfigFiles []string
	// Variables are Name=Value overrides for the [Variables] section
	Variables []string
	// Targets limits the run to these targets, glob patterns are allowed
	Targets []string
	// Commands is a single craft command line, it replaces [General] Command
	Commands []string
	// Setup regenerates the settings of roots which were set up before
	Setup bool

	Environment *setting.Environment
	Stdout      io.Writer
	Stderr      io.Writer
}

// Master holds a loaded configuration and the targets selected from it
type Master struct {
	opts         Options
	cfg          *setting.Config
	root         string
	targets      []string
	craftRoots   map[string]string
	materializer *materialize.Materializer
}

// New loads the configuration and resolves the targets to work on
func New(opts Options) (*Master, error) {
	if opts.Environment == nil {
		opts.Environment = setting.CaptureEnvironment()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	vars, err := setting.ParseVariables(opts.Variables)
	if err != nil {
		return nil, err
	}
	cfg, err := setting.Load(setting.LoadOptions{
		Sources:     opts.ConfigFiles,
		Variables:   vars,
		Environment: opts.Environment,
	})
	if err != nil {
		return nil, err
	}

	root, err := cfg.Get(setting.VariablesSection, setting.RootVariable)
	if err != nil {
		return nil, err
	}
	filter, err := cfg.Get(setting.GeneralSection, "TargetFilter", string(target.ModeSuffix))
	if err != nil {
		return nil, err
	}
	mode, err := target.ParseMode(filter)
	if err != nil {
		return nil, err
	}
	available, err := target.NewResolver(mode, opts.Environment.Platform).Targets(cfg)
	if err != nil {
		return nil, err
	}
	targets, err := selectTargets(available, opts.Targets)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, ErrNoTarget
	}

	return &Master{
		opts:         opts,
		cfg:          cfg,
		root:         root,
		targets:      targets,
		craftRoots:   make(map[string]string, len(targets)),
		materializer: materialize.NewMaterializer(),
	}, nil
}

// Targets returns the selected targets in lexicographic order
func (m *Master) Targets() []string {
	return m.targets
}

// Run fetches craft, sets up the root of every target and runs the commands in them
func (m *Master) Run(ctx context.Context) error {
	if err := m.initCraft(ctx); err != nil {
		return err
	}
	if err := m.setRoots(); err != nil {
		return err
	}
	for _, t := range m.targets {
		if err := m.materializer.Materialize(ctx, m.cfg, t, m.craftRoots[t], m.opts.Setup); err != nil {
			return err
		}
	}
	for _, t := range m.targets {
		if err := m.exec(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (m *Master) initCraft(ctx context.Context) error {
	clone := filepath.Join(m.root, CloneDir)

	branch, err := m.cfg.Get(setting.GeneralSection, "Branch", "master")
	if err != nil {
		return err
	}
	forceClone, err := m.cfg.GetBool(setting.GeneralSection, "ForceClone", false)
	if err != nil {
		return err
	}
	shallowClone, err := m.cfg.GetBool(setting.GeneralSection, "ShallowClone", false)
	if err != nil {
		return err
	}
	craftURL, err := m.cfg.Get(setting.GeneralSection, "CraftUrl", DefaultCraftURL)
	if err != nil {
		return err
	}

	exists, err := util.IsExist(clone)
	if err != nil {
		return err
	}
	if forceClone && exists {
		log.Info("Removing %s", clone)
		if err := util.RemoveAll(clone); err != nil {
			return fmt.Errorf("unable to remove %s: %w", clone, err)
		}
		exists = false
	}
	if !exists {
		opts := git.CloneRepoOptions{Branch: branch, Progress: m.opts.Stderr}
		if shallowClone {
			opts.Depth = 1
		}
		if err := cloneRepo(ctx, craftURL, clone, opts); err != nil {
			return err
		}
	}

	revision, err := m.cfg.Get(setting.GeneralSection, "CraftRevision", "")
	if err != nil {
		return err
	}
	if revision != "" {
		if err := checkoutRepo(ctx, clone, revision); err != nil {
			return err
		}
	}
	if commit, err := headCommit(clone); err == nil {
		log.Debug("Craft at %s is on %s", clone, commit)
	}
	return nil
}

func (m *Master) setRoots() error {
	clone := filepath.Join(m.root, CloneDir)
	for _, t := range m.targets {
		rel, err := m.cfg.GetForTarget(t, setting.SettingsSection, "Root", t)
		if err != nil {
			return err
		}
		craftRoot := rel
		if !filepath.IsAbs(craftRoot) {
			craftRoot = filepath.Join(m.root, rel)
		}
		if craftRoot, err = filepath.Abs(craftRoot); err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Join(craftRoot, "etc"), os.ModePerm); err != nil {
			return fmt.Errorf("unable to create the root of %s: %w", t, err)
		}

		isSetup, err := util.IsFile(filepath.Join(craftRoot, "craft", "craftenv.ps1"))
		if err != nil {
			return err
		}
		if !isSetup {
			if err := linkDir(clone, filepath.Join(craftRoot, "craft")); err != nil {
				return fmt.Errorf("unable to link craft into %s: %w", craftRoot, err)
			}
		}
		log.Debug("Root of %s: %s", t, craftRoot)
		m.craftRoots[t] = craftRoot
	}
	return nil
}

func defaultPython() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}

// commandsFor returns the craft command lines to run for t
func (m *Master) commandsFor(t string) ([][]string, error) {
	if len(m.opts.Commands) > 0 {
		return [][]string{m.opts.Commands}, nil
	}
	raw, err := m.cfg.GetSetting("Command", t, "")
	if err != nil {
		return nil, err
	}
	var commands [][]string
	for _, c := range strings.Split(raw, ";") {
		if strings.TrimSpace(c) == "" {
			continue
		}
		args, err := shellquote.Split(c)
		if err != nil {
			return nil, util.NewInvalidArgumentErrorf("invalid command %q: %v", c, err)
		}
		commands = append(commands, args)
	}
	if len(commands) == 0 {
		return nil, ErrNoCommand
	}
	return commands, nil
}

func (m *Master) exec(ctx context.Context, t string) error {
	commands, err := m.commandsFor(t)
	if err != nil {
		return fmt.Errorf("%s: %w", t, err)
	}
	python, err := m.cfg.GetSetting("Python", t, defaultPython())
	if err != nil {
		return err
	}

	craftPy := filepath.Join(m.craftRoots[t], "craft", "bin", "craft.py")
	for _, args := range commands {
		argv := append([]string{"-X", "utf8", "-u", craftPy}, args...)
		log.Info("%s: %s", t, process.CommandLine(python, argv...))
		err := runCommand(ctx, process.RunOpts{
			Dir:    m.opts.Environment.WorkDir,
			Stdout: m.opts.Stdout,
			Stderr: m.opts.Stderr,
		}, python, argv...)
		if err != nil {
			return err
		}
	}
	return nil
}
