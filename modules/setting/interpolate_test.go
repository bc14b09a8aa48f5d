// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	cfg, err := LoadFromData(`
[DEFAULT]
Arch = x86_64

[Variables]
Root = /root
Name = gcc

[linux-gcc]
Paths/Root = ${Variables:Root}/linux-${Variables:Name}
Paths/Bin = ${Paths/Root}/bin
Price = $$5
Machine = ${Arch}
Chain = ${Paths/Bin}:${Variables:Root}
`, nil, testEnvironment())
	require.NoError(t, err)

	cases := map[string]string{
		"Paths/Root": "/root/linux-gcc",
		"Paths/Bin":  "/root/linux-gcc/bin",
		"Price":      "$5",
		"Machine":    "x86_64",
		"Chain":      "/root/linux-gcc/bin:/root",
	}
	for key, expected := range cases {
		v, err := cfg.Get("linux-gcc", key)
		assert.NoError(t, err, key)
		assert.Equal(t, expected, v, key)
	}
}

func TestInterpolateIsLazy(t *testing.T) {
	cfg, err := LoadFromData(`
[Variables]
Root = /root

[linux-gcc]
Paths/Root = ${Variables:Root}/linux-gcc
`, nil, testEnvironment())
	require.NoError(t, err)

	require.NoError(t, cfg.Set(VariablesSection, RootVariable, "/elsewhere"))
	v, err := cfg.Get("linux-gcc", "Paths/Root")
	assert.NoError(t, err)
	assert.Equal(t, "/elsewhere/linux-gcc", v)
}

func TestInterpolateErrors(t *testing.T) {
	cfg, err := LoadFromData(`
[General]
Missing = ${Nope:Key}
MissingLocal = ${Nope}
Cycle1 = ${Cycle2}
Cycle2 = ${Cycle1}
Self = x${Self}
Dangling = price $
BadEscape = $HOME
Unterminated = ${General:Self
TwoColons = ${a:b:c}
`, nil, testEnvironment())
	require.NoError(t, err)

	_, err = cfg.Get(GeneralSection, "Missing")
	assert.True(t, IsErrInterpolation(err))
	assert.True(t, IsErrMissingKey(err))
	var missing ErrMissingKey
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, ErrMissingKey{Section: "Nope", Key: "Key"}, missing)

	_, err = cfg.Get(GeneralSection, "MissingLocal")
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, ErrMissingKey{Section: GeneralSection, Key: "Nope"}, missing)

	for _, key := range []string{"Cycle1", "Self", "Dangling", "BadEscape", "Unterminated", "TwoColons"} {
		_, err = cfg.Get(GeneralSection, key)
		assert.True(t, IsErrInterpolation(err), key)
		assert.False(t, IsErrMissingKey(err), key)
	}

	// the default does not hide a broken value
	_, err = cfg.Get(GeneralSection, "Cycle1", "fallback")
	assert.True(t, IsErrInterpolation(err))

	_, err = cfg.SectionItems(GeneralSection)
	assert.True(t, IsErrInterpolation(err))
}

func TestInterpolateDepth(t *testing.T) {
	data := "[General]\nK00 = end\n"
	for i := 1; i <= MaxInterpolationDepth+1; i++ {
		data += fmt.Sprintf("K%02d = ${K%02d}\n", i, i-1)
	}
	cfg, err := LoadFromData(data, nil, testEnvironment())
	require.NoError(t, err)

	// K10 reaches K00 through ten references, K11 needs eleven
	v, err := cfg.Get(GeneralSection, "K10")
	assert.NoError(t, err)
	assert.Equal(t, "end", v)

	_, err = cfg.Get(GeneralSection, "K11")
	assert.True(t, IsErrInterpolation(err))
}
