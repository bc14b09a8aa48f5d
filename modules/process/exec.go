// Copyright 2022 The Gitea Authors. All rights reserved.
// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/KDE/craftmaster/modules/log"
)

// RunOpts describes how a command is run
type RunOpts struct {
	Dir string
	// Stdout and Stderr receive the output of the child, unset streams are captured for the error
	Stdout io.Writer
	Stderr io.Writer
}


// CommandLine formats a command for logs
func CommandLine(cmdName string, args ...string) string {
	return strings.Join(append([]string{cmdName}, args...), " ")
}

// Run runs cmdName with args in opts.Dir and waits for its completion.
// A failure is returned as *Error with the captured output.
func Run(ctx context.Context, opts RunOpts, cmdName string, args ...string) error {
	desc := CommandLine(cmdName, args...)
	log.Debug("Run: %s", desc)

	stdOut := new(bytes.Buffer)
	stdErr := new(bytes.Buffer)

	cmd := exec.CommandContext(ctx, cmdName, args...)
	cmd.Dir = opts.Dir
	cmd.Stdout = stdOut
	if opts.Stdout != nil {
		cmd.Stdout = opts.Stdout
	}
	cmd.Stderr = stdErr
	if opts.Stderr != nil {
		cmd.Stderr = opts.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return &Error{
		Description: desc,
		ExitCode:    exitCode,
		Err:         err,
		CtxErr:      ctx.Err(),
		Stdout:      stdOut.String(),
		Stderr:      stdErr.String(),
	}
}
