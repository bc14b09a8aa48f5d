// Copyright 2019 The Gitea Authors. All rights reserved.
// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// WriterLogger formats events and writes them to an io.Writer
type WriterLogger struct {
	out io.Writer
	mu  sync.Mutex

	Level    Level  `json:"level"`
	Flags    int    `json:"flags"`
	Prefix   string `json:"prefix"`
	Colorize bool   `json:"colorize"`
}

var _ Logger = &WriterLogger{}

// NewWriterLogger creates a logger writing to out.
// flags == 0 selects LstdFlags, flags == -1 disables all prefixes.
func NewWriterLogger(out io.Writer, level Level, flags int) *WriterLogger {
	switch flags {
	case 0:
		flags = LstdFlags
	case -1:
		flags = 0
	}
	return &WriterLogger{out: out, Level: level, Flags: flags}
}

// SetLevel changes the minimum level of the logger
func (b *WriterLogger) SetLevel(level Level) {
	b.mu.Lock()
	b.Level = level
	b.mu.Unlock()
}

// GetLevel returns the logging level for this logger
func (b *WriterLogger) GetLevel() Level {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Level
}

// LevelEnabled checks if the level is enabled
func (b *WriterLogger) LevelEnabled(level Level) bool {
	return level >= b.GetLevel()
}

// Copy of cheap integer to fixed-width decimal to ascii from logger.
func itoa(buf *[]byte, i, wid int) {
	var b [20]byte
	bp := len(b) - 1
	for i >= 10 || wid > 1 {
		wid--
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		bp--
		i = q
	}
	// i < 10
	b[bp] = byte('0' + i)
	*buf = append(*buf, b[bp:]...)
}

func (b *WriterLogger) createMsg(buf *[]byte, event *Event) {
	*buf = append(*buf, b.Prefix...)
	t := event.time
	if b.Flags&(Ldate|Ltime|Lmicroseconds) != 0 {
		if b.Colorize {
			*buf = append(*buf, fgCyanBytes...)
		}
		if b.Flags&LUTC != 0 {
			t = t.UTC()
		}
		if b.Flags&Ldate != 0 {
			year, month, day := t.Date()
			itoa(buf, year, 4)
			*buf = append(*buf, '/')
			itoa(buf, int(month), 2)
			*buf = append(*buf, '/')
			itoa(buf, day, 2)
			*buf = append(*buf, ' ')
		}
		if b.Flags&(Ltime|Lmicroseconds) != 0 {
			hour, minute, sec := t.Clock()
			itoa(buf, hour, 2)
			*buf = append(*buf, ':')
			itoa(buf, minute, 2)
			*buf = append(*buf, ':')
			itoa(buf, sec, 2)
			if b.Flags&Lmicroseconds != 0 {
				*buf = append(*buf, '.')
				itoa(buf, t.Nanosecond()/1e3, 6)
			}
			*buf = append(*buf, ' ')
		}
		if b.Colorize {
			*buf = append(*buf, resetBytes...)
		}
	}
	if b.Flags&Lshortfile != 0 && event.filename != "" {
		if b.Colorize {
			*buf = append(*buf, fgGreenBytes...)
		}
		*buf = append(*buf, filepath.Base(event.filename)...)
		*buf = append(*buf, ':')
		itoa(buf, event.line, -1)
		if b.Colorize {
			*buf = append(*buf, resetBytes...)
		}
		*buf = append(*buf, ' ')
	}
	if b.Flags&(Llevel|Llevelinitial) != 0 {
		level := strings.ToUpper(event.level.String())
		if b.Colorize {
			*buf = append(*buf, ColorBytes(event.level.ColorAttributes()...)...)
		}
		*buf = append(*buf, '[')
		if b.Flags&Llevelinitial != 0 {
			*buf = append(*buf, level[0])
		} else {
			*buf = append(*buf, level...)
		}
		*buf = append(*buf, ']')
		if b.Colorize {
			*buf = append(*buf, resetBytes...)
		}
		*buf = append(*buf, ' ')
	}
	// Now we need to prevent log spoofing:
	msg := strings.TrimSuffix(event.msg, "\n")
	lines := bytes.Split([]byte(msg), []byte("\n"))
	*buf = append(*buf, lines[0]...)
	for _, line := range lines[1:] {
		*buf = append(*buf, "\n        "...)
		*buf = append(*buf, line...)
	}
	*buf = append(*buf, '\n')
}

// LogEvent logs the event to the internal writer
func (b *WriterLogger) LogEvent(event *Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Level > event.level {
		return nil
	}
	var buf []byte
	b.createMsg(&buf, event)
	_, err := b.out.Write(buf)
	return err
}

// Log formats the message and logs it at the given level, skip is the number of callers to skip for the file name
func (b *WriterLogger) Log(skip int, level Level, format string, v ...any) {
	if !b.LevelEnabled(level) {
		return
	}
	event := &Event{
		level: level,
		time:  time.Now(),
	}
	if b.Flags&Lshortfile != 0 {
		if _, filename, line, ok := runtime.Caller(skip + 1); ok {
			event.filename, event.line = filename, line
		}
	}
	if len(v) == 0 {
		event.msg = format
	} else {
		event.msg = fmt.Sprintf(format, v...)
	}
	_ = b.LogEvent(event)
}

func (b *WriterLogger) Trace(format string, v ...any) {
	b.Log(1, TRACE, format, v...)
}

func (b *WriterLogger) Debug(format string, v ...any) {
	b.Log(1, DEBUG, format, v...)
}

func (b *WriterLogger) Info(format string, v ...any) {
	b.Log(1, INFO, format, v...)
}

func (b *WriterLogger) Warn(format string, v ...any) {
	b.Log(1, WARN, format, v...)
}

func (b *WriterLogger) Error(format string, v ...any) {
	b.Log(1, ERROR, format, v...)
}

func (b *WriterLogger) Critical(format string, v ...any) {
	b.Log(1, CRITICAL, format, v...)
}
