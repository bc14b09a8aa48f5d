// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package testlogger

import (
	"testing"

	"github.com/KDE/craftmaster/modules/log"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	old := log.GetLogger()
	t.Run("capture", func(t *testing.T) {
		r := Init(t)
		assert.True(t, log.IsDebug())
		log.Debug("cloning %s", "craft")
		log.Warn("deprecated")
		assert.Equal(t, []string{"[D] cloning craft", "[W] deprecated"}, r.Lines())
		assert.True(t, r.Contains("cloning"))
		assert.False(t, r.Contains("missing"))
	})
	assert.Same(t, old, log.GetLogger())
}
