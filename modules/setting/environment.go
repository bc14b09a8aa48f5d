// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Environment is the process state the configuration depends on.
// It is captured once when the configuration is built so that resolution never queries the process again.
type Environment struct {
	// Vars holds the environment variables
	Vars map[string]string
	// Platform is the platform prefix of target names: windows, macos, linux or android
	Platform string
	// AppDir is the directory CraftMaster is installed in
	AppDir string
	// WorkDir is the current working directory
	WorkDir string
}

// CaptureEnvironment snapshots the running process
func CaptureEnvironment() *Environment {
	env := &Environment{
		Vars:     make(map[string]string),
		Platform: PlatformPrefix(runtime.GOOS),
		AppDir:   appDir(),
	}
	for _, kv := range os.Environ() {
		// on Windows hidden per-drive variables look like "=C:=C:\"
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		env.Vars[name] = value
	}
	if wd, err := os.Getwd(); err == nil {
		env.WorkDir = wd
	}
	return env
}

// PlatformPrefix maps a GOOS value to the prefix used by target names
func PlatformPrefix(goos string) string {
	switch goos {
	case "darwin", "ios":
		return "macos"
	default:
		return goos
	}
}

// DefaultRoot is the work directory used when [Variables] Root is not configured
func (e *Environment) DefaultRoot() string {
	return filepath.Dir(e.AppDir)
}

// SortedVarNames returns the environment variable names in lexicographic order
func (e *Environment) SortedVarNames() []string {
	names := make([]string, 0, len(e.Vars))
	for name := range e.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func appDir() string {
	exe, err := os.Executable()
	if err != nil {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
