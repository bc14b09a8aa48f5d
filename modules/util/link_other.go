// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package util

import "os"

func link(src, dest string) error {
	return os.Symlink(src, dest)
}
