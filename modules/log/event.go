// Copyright 2019 The Gitea Authors. All rights reserved.
// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import "time"

// Event represents a logging event
type Event struct {
	level    Level
	msg      string
	filename string
	line     int
	time     time.Time
}
