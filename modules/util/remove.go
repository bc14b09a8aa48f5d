// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Remove removes the named file or (empty) directory.
// A missing file is not an error.
func Remove(name string) error {
	err := os.Remove(name)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// RemoveAll removes path and any children it contains.
// Git object stores are written read-only, so when the removal is refused
// every entry below path is made writable and the removal is retried once.
func RemoveAll(path string) error {
	err := os.RemoveAll(path)
	if err == nil || !errors.Is(err, fs.ErrPermission) {
		return err
	}
	if walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // best effort, the second RemoveAll reports real problems
		}
		return os.Chmod(p, 0o777)
	}); walkErr != nil {
		return walkErr
	}
	return os.RemoveAll(path)
}
