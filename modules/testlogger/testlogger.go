// Copyright 2019 The Gitea Authors. All rights reserved.
// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package testlogger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/KDE/craftmaster/modules/log"
)

// Recorder forwards the lines of the default logger to the running test and keeps them for assertions
type Recorder struct {
	mu    sync.RWMutex
	t     testing.TB
	lines []string
}

func (r *Recorder) Write(p []byte) (int, error) {
	// The logger could still try to output logs after the test is finished,
	// so we must ensure that the "t" is still valid.
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(p)
	if n > 0 && p[n-1] == '\n' {
		p = p[:n-1]
	}
	r.lines = append(r.lines, string(p))

	if r.t == nil {
		// if there is no running test, the log message should be outputted to console, to avoid losing important information.
		_, err := fmt.Fprintf(os.Stdout, "??? [TestLogger] %s\n", p)
		return n, err
	}

	defer func() {
		err := recover()
		if err == nil {
			return
		}
		errString, ok := err.(string)
		if !ok || !strings.HasPrefix(errString, "Log in goroutine after ") {
			panic(err)
		}
	}()

	r.t.Log(string(p))
	return n, nil
}

// Lines returns a copy of the recorded lines
func (r *Recorder) Lines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.lines...)
}

// Contains reports whether any recorded line contains s
func (r *Recorder) Contains(s string) bool {
	for _, line := range r.Lines() {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

// Init sends all log output to t at TRACE level until the test ends
func Init(t testing.TB) *Recorder {
	r := &Recorder{t: t}
	old := log.SetDefaultLogger(log.NewWriterLogger(r, log.TRACE, log.Llevelinitial))
	t.Cleanup(func() {
		log.SetDefaultLogger(old)
		r.mu.Lock()
		r.t = nil
		r.mu.Unlock()
	})
	return r
}
