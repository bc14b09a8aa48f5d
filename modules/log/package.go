// Copyright 2023 The Gitea Authors. All rights reserved.
// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package log provides leveled console logging for CraftMaster.
// Concepts:
//
// * Logger: a Logger provides the leveled logging functions
//
// * WriterLogger: formats an Event according to its Flags and writes it to an io.Writer,
// colorizing the date, caller and level when Colorize is set.
//
// Call graph:
// -> log.Info()
// -> WriterLogger.Log()
// -> WriterLogger.LogEvent() formats the event and writes it under the logger lock
package log
