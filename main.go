// Copyright 2016 The Gitea Authors. All rights reserved.
// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// CraftMaster sets up and drives multiple Craft build roots from one layered configuration.
package main

import (
	"os"
	"runtime"
	"strings"

	"github.com/KDE/craftmaster/cmd"

	"github.com/urfave/cli/v2"
)

// these flags will be set by the build flags
var (
	Version = "development" // program version for this build
	Tags    = ""            // the Golang build tags
)

func main() {
	cli.OsExiter = func(code int) {
		os.Exit(code)
	}
	app := cmd.NewMainApp(cmd.AppVersion{Version: Version, Extra: formatBuiltWith()})
	_ = cmd.RunMainApp(app, os.Args...) // all errors should have been handled by the RunMainApp
}

func formatBuiltWith() string {
	version := runtime.Version()
	if len(Tags) == 0 {
		return " built with " + version
	}
	return " built with " + version + " : " + strings.ReplaceAll(Tags, " ", ", ")
}
