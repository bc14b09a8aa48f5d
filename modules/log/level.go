// Copyright 2019 The Gitea Authors. All rights reserved.
// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

// Level is the severity of a message, a logger drops messages below its own level
type Level int

const (
	UNDEFINED Level = iota
	TRACE
	DEBUG
	INFO
	WARN
	ERROR
	FATAL
	NONE
)

// CRITICAL messages abort the run, they are written at ERROR
const CRITICAL = ERROR

var levelNames = [...]string{
	UNDEFINED: "undefined",
	TRACE:     "trace",
	DEBUG:     "debug",
	INFO:      "info",
	WARN:      "warn",
	ERROR:     "error",
	FATAL:     "fatal",
	NONE:      "none",
}

var levelColors = [...][]ColorAttribute{
	UNDEFINED: {Reset},
	TRACE:     {Bold, FgCyan},
	DEBUG:     {Bold, FgBlue},
	INFO:      {Bold, FgGreen},
	WARN:      {Bold, FgYellow},
	ERROR:     {Bold, FgRed},
	FATAL:     {Bold, BgRed},
	NONE:      {Reset},
}

func (l Level) valid() bool {
	return l >= UNDEFINED && l <= NONE
}

func (l Level) String() string {
	if !l.valid() {
		return "info"
	}
	return levelNames[l]
}

// ColorAttributes returns the SGR codes the level marker is printed with
func (l Level) ColorAttributes() []ColorAttribute {
	if !l.valid() {
		return levelColors[NONE]
	}
	return levelColors[l]
}
