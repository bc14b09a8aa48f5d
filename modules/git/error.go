// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"errors"
	"fmt"
)

// Error describes a failed git operation on a repository
type Error struct {
	Op   string
	Path string
	Err  error
}

func (err *Error) Error() string {
	return fmt.Sprintf("git %s %s: %v", err.Op, err.Path, err.Err)
}

// Unwrap returns the error reported by go-git
func (err *Error) Unwrap() error {
	return err.Err
}

// IsErrGit checks if an error is an *Error
func IsErrGit(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
