// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package master

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/KDE/craftmaster/modules/git"
	"github.com/KDE/craftmaster/modules/process"
	"github.com/KDE/craftmaster/modules/setting"
	"github.com/KDE/craftmaster/modules/target"
	"github.com/KDE/craftmaster/modules/test"
	"github.com/KDE/craftmaster/modules/testlogger"
	"github.com/KDE/craftmaster/modules/util"
	"github.com/KDE/craftmaster/services/materialize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	Name string
	Args []string
}

type fakeCraft struct {
	clones    []git.CloneRepoOptions
	checkouts []string
	commands  []call
	failAt    int
}

// install replaces the collaborators, the clone creates a craft checkout containing the settings template
func (f *fakeCraft) install(t *testing.T) {
	t.Cleanup(test.MockVariableValue(&cloneRepo, func(ctx context.Context, from, to string, opts git.CloneRepoOptions) error {
		f.clones = append(f.clones, opts)
		if err := os.MkdirAll(filepath.Join(to, "bin"), os.ModePerm); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(to, "craftenv.ps1"), nil, 0o644); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(to, "CraftSettings.ini.template"), []byte("[Blueprints]\nLocations =\n"), 0o644)
	}))
	t.Cleanup(test.MockVariableValue(&checkoutRepo, func(ctx context.Context, repoPath, revision string) error {
		f.checkouts = append(f.checkouts, revision)
		return nil
	}))
	t.Cleanup(test.MockVariableValue(&headCommit, func(repoPath string) (string, error) {
		return "0123456789abcdef0123456789abcdef01234567", nil
	}))
	t.Cleanup(test.MockVariableValue(&runCommand, func(ctx context.Context, opts process.RunOpts, cmdName string, args ...string) error {
		f.commands = append(f.commands, call{Name: cmdName, Args: args})
		if f.failAt > 0 && len(f.commands) == f.failAt {
			return &process.Error{Description: cmdName, ExitCode: 1}
		}
		return nil
	}))
}

func testOptions(t *testing.T, config string) (Options, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("craft roots are linked with junctions on Windows")
	}
	dir := t.TempDir()
	root := filepath.Join(dir, "root")
	p := filepath.Join(dir, "craft.ini")
	require.NoError(t, os.WriteFile(p, []byte(strings.ReplaceAll(config, "@ROOT@", root)), 0o644))
	return Options{
		ConfigFiles: []string{p},
		Environment: &setting.Environment{
			Vars:     map[string]string{},
			Platform: "linux",
			AppDir:   filepath.Join(dir, "CraftMaster"),
			WorkDir:  dir,
		},
		Stdout: io.Discard,
		Stderr: io.Discard,
	}, root
}

const testConfig = `
[General]
Branch = stable
ShallowClone = True
Command = --fetch "libs/qt5" ; --package kde/applications/kate
Python = /usr/bin/python3.11

[Variables]
Root = @ROOT@

[GeneralSettings]
Compile/BuildType = Release

[linux-64-gcc]
General/ABI = linux-64-gcc

[linux-64-clang]
General/ABI = linux-64-clang

[linux-64-clang-settings]
Command = --list-file clang.txt

[windows-msvc2019_64-cl]
General/ABI = windows-msvc2019_64-cl

[Settings]
Root = shared

[linux-64-gcc-Settings]
Root = gcc
`

func TestNewTargets(t *testing.T) {
	logs := testlogger.Init(t)
	opts, _ := testOptions(t, testConfig)
	m, err := New(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"linux-64-clang", "linux-64-gcc", "windows-msvc2019_64-cl"}, m.Targets())

	opts.Targets = []string{"linux-*", "linux-64-gcc"}
	m, err = New(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"linux-64-clang", "linux-64-gcc"}, m.Targets())

	opts.Targets = []string{"nope", "linux-64-gcc", "macos-*"}
	_, err = New(opts)
	assert.True(t, IsErrInvalidTarget(err))
	assert.True(t, errors.Is(err, util.ErrInvalidArgument))
	var invalid ErrInvalidTarget
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, []string{"nope", "macos-*"}, invalid.Names)
	assert.True(t, logs.Contains("Target nope is not a valid target"))
	assert.True(t, logs.Contains("Target macos-* is not a valid target"))
}

func TestNewErrors(t *testing.T) {
	opts, _ := testOptions(t, "[General]\n")
	_, err := New(opts)
	assert.ErrorIs(t, err, ErrNoTarget)

	opts, _ = testOptions(t, testConfig)
	opts.Variables = []string{"broken"}
	_, err = New(opts)
	assert.True(t, setting.IsErrInvalidVariable(err))

	opts.Variables = nil
	opts.ConfigFiles = append(opts.ConfigFiles, filepath.Join(t.TempDir(), "missing.ini"))
	_, err = New(opts)
	assert.True(t, setting.IsErrConfigNotFound(err))

	opts, _ = testOptions(t, "[a]\n[b-settings]\n")
	_, err = New(opts)
	assert.True(t, target.IsErrUnresolvedSettingsSection(err))

	opts, _ = testOptions(t, "[General]\nTargetFilter = unknown\n[a]\n")
	_, err = New(opts)
	assert.True(t, errors.Is(err, util.ErrInvalidArgument))
}

func TestPlatformFilter(t *testing.T) {
	opts, _ := testOptions(t, "[General]\nTargetFilter = platform\n"+testConfig[strings.Index(testConfig, "[Variables]"):])
	m, err := New(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"linux-64-clang", "linux-64-gcc"}, m.Targets())
}

func TestRun(t *testing.T) {
	f := &fakeCraft{}
	f.install(t)

	opts, root := testOptions(t, testConfig)
	opts.Targets = []string{"linux-*"}
	m, err := New(opts)
	require.NoError(t, err)
	require.NoError(t, m.Run(context.Background()))

	require.Len(t, f.clones, 1)
	assert.Equal(t, git.CloneRepoOptions{Branch: "stable", Depth: 1, Progress: io.Discard}, f.clones[0])
	assert.Empty(t, f.checkouts)

	gccRoot := filepath.Join(root, "gcc")
	clangRoot := filepath.Join(root, "shared")
	for _, craftRoot := range []string{gccRoot, clangRoot} {
		assert.FileExists(t, filepath.Join(craftRoot, "etc", materialize.CraftSettingsFile))
		assert.FileExists(t, filepath.Join(craftRoot, "etc", materialize.MarkerFile))
		assert.FileExists(t, filepath.Join(craftRoot, "craft", "CraftSettings.ini.template"))
	}
	settings, err := setting.LoadINI(filepath.Join(gccRoot, "etc", materialize.CraftSettingsFile))
	require.NoError(t, err)
	assert.Equal(t, "linux-64-gcc", settings.Section("General").Key("ABI").Value())
	assert.Equal(t, "Release", settings.Section("Compile").Key("BuildType").Value())

	craftPy := func(craftRoot string) string {
		return filepath.Join(craftRoot, "craft", "bin", "craft.py")
	}
	assert.Equal(t, []call{
		{"/usr/bin/python3.11", []string{"-X", "utf8", "-u", craftPy(clangRoot), "--list-file", "clang.txt"}},
		{"/usr/bin/python3.11", []string{"-X", "utf8", "-u", craftPy(gccRoot), "--fetch", "libs/qt5"}},
		{"/usr/bin/python3.11", []string{"-X", "utf8", "-u", craftPy(gccRoot), "--package", "kde/applications/kate"}},
	}, f.commands)

	// a second run keeps the clone, the links and the generated settings
	f.commands = nil
	m, err = New(opts)
	require.NoError(t, err)
	require.NoError(t, m.Run(context.Background()))
	assert.Len(t, f.clones, 1)
	assert.Len(t, f.commands, 3)
}

func TestRunCommandLine(t *testing.T) {
	f := &fakeCraft{}
	f.install(t)

	opts, _ := testOptions(t, testConfig+"\n[General]\nCraftRevision = v1.0\n")
	opts.Targets = []string{"linux-64-gcc"}
	opts.Commands = []string{"--install-deps", "kate"}
	m, err := New(opts)
	require.NoError(t, err)
	require.NoError(t, m.Run(context.Background()))

	assert.Equal(t, []string{"v1.0"}, f.checkouts)
	require.Len(t, f.commands, 1)
	assert.Equal(t, []string{"--install-deps", "kate"}, f.commands[0].Args[4:])
}

func TestRunWithoutCommand(t *testing.T) {
	f := &fakeCraft{}
	f.install(t)

	config := strings.Replace(testConfig, "Command = --fetch \"libs/qt5\" ; --package kde/applications/kate\n", "", 1)
	opts, root := testOptions(t, config)
	opts.Targets = []string{"linux-*"}
	m, err := New(opts)
	require.NoError(t, err)
	err = m.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoCommand)
	assert.Contains(t, err.Error(), "linux-64-gcc")

	// linux-64-clang has its own command and runs first
	require.Len(t, f.commands, 1)
	assert.Equal(t, []string{"--list-file", "clang.txt"}, f.commands[0].Args[4:])
	assert.FileExists(t, filepath.Join(root, "gcc", "etc", materialize.CraftSettingsFile))
}

func TestRunAbortsOnFailure(t *testing.T) {
	f := &fakeCraft{failAt: 1}
	f.install(t)

	opts, _ := testOptions(t, testConfig)
	m, err := New(opts)
	require.NoError(t, err)
	err = m.Run(context.Background())
	assert.True(t, process.IsErrProcess(err))
	assert.Len(t, f.commands, 1)
}

func TestRunForceClone(t *testing.T) {
	f := &fakeCraft{}
	f.install(t)

	opts, root := testOptions(t, testConfig+"\n[General]\nForceClone = true\n")
	stale := filepath.Join(root, CloneDir, "stale")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), os.ModePerm))
	require.NoError(t, os.WriteFile(stale, nil, 0o444))

	opts.Targets = []string{"linux-64-gcc"}
	m, err := New(opts)
	require.NoError(t, err)
	require.NoError(t, m.Run(context.Background()))
	assert.Len(t, f.clones, 1)
	assert.NoFileExists(t, stale)
}

func TestCommandsFor(t *testing.T) {
	opts, _ := testOptions(t, `
[General]
Command = --fetch 'a b'; ; "--list-file" list.txt
[t]
[u]
[u-settings]
Command = --broken "quote
`)
	m, err := New(opts)
	require.NoError(t, err)

	commands, err := m.commandsFor("t")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"--fetch", "a b"}, {"--list-file", "list.txt"}}, commands)

	_, err = m.commandsFor("u")
	assert.True(t, errors.Is(err, util.ErrInvalidArgument))

	m.cfg, err = setting.LoadFromData("[t]\n", nil, opts.Environment)
	require.NoError(t, err)
	_, err = m.commandsFor("t")
	assert.ErrorIs(t, err, ErrNoCommand)
}
