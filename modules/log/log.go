// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"os"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[WriterLogger]

func init() {
	l := NewWriterLogger(os.Stderr, INFO, LconsoleFlags)
	l.Colorize = CanColorStderr
	defaultLogger.Store(l)
}

// GetLogger returns the default logger
func GetLogger() *WriterLogger {
	return defaultLogger.Load()
}

// SetDefaultLogger replaces the default logger and returns the previous one
func SetDefaultLogger(l *WriterLogger) *WriterLogger {
	return defaultLogger.Swap(l)
}

// IsDebug reports whether debug messages are written
func IsDebug() bool {
	return GetLogger().LevelEnabled(DEBUG)
}

func Debug(format string, v ...any) {
	GetLogger().Log(1, DEBUG, format, v...)
}

func Info(format string, v ...any) {
	GetLogger().Log(1, INFO, format, v...)
}

func Warn(format string, v ...any) {
	GetLogger().Log(1, WARN, format, v...)
}

func Error(format string, v ...any) {
	GetLogger().Log(1, ERROR, format, v...)
}
