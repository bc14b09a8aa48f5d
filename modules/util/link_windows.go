// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package util

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

func link(src, dest string) error {
	// mklink is a cmd builtin, there is no executable to call directly
	out, err := exec.Command("cmd", "/C", "mklink", "/J", filepath.FromSlash(dest), filepath.FromSlash(src)).CombinedOutput()
	if err != nil {
		return fmt.Errorf("mklink /J %s %s: %w: %s", dest, src, err, strings.TrimSpace(string(out)))
	}
	return nil
}
