// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

// Link makes dest resolve to the directory src.
// dest must not exist yet. On Windows a directory junction is created,
// which unlike a symlink does not need elevated rights.
func Link(src, dest string) error {
	return link(src, dest)
}
