// Copyright 2022 The Gitea Authors. All rights reserved.
// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package process

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a wrapped error describing the error results of Process Execution
type Error struct {
	Description string
	ExitCode    int
	Err         error
	CtxErr      error
	Stdout      string
	Stderr      string
}

func (err *Error) Error() string {
	var sb strings.Builder
	if err.ExitCode >= 0 {
		fmt.Fprintf(&sb, "command %s failed with exit code: %d", err.Description, err.ExitCode)
	} else {
		fmt.Fprintf(&sb, "command %s failed: %v", err.Description, err.Err)
	}
	if err.CtxErr != nil {
		fmt.Fprintf(&sb, " (%v)", err.CtxErr)
	}
	if err.Stdout != "" {
		fmt.Fprintf(&sb, " stdout: %s", err.Stdout)
	}
	if err.Stderr != "" {
		fmt.Fprintf(&sb, " stderr: %s", err.Stderr)
	}
	return sb.String()
}

// Unwrap implements the unwrappable implicit interface for go1.13 Unwrap()
func (err *Error) Unwrap() error {
	return err.Err
}

// IsErrProcess checks if an error is an *Error
func IsErrProcess(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
