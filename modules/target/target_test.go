// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package target

import (
	"errors"
	"testing"

	"github.com/KDE/craftmaster/modules/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sections []string

func (s sections) SectionNames() []string {
	return s
}

func TestSuffixResolver(t *testing.T) {
	doc := sections{
		"General", "GeneralSettings", "Variables", "BlueprintSettings", "Env",
		"windows-msvc2019_64-cl",
		"linux-64-gcc",
		"linux-64-gcc-settings",
		"linux-64-gcc-BlueprintSettings",
		"linux-64-gcc-GeneralSettings",
		"windows-msvc2019_64-cl-Settings",
		"android-arm-clang",
	}
	targets, err := NewResolver(ModeSuffix, "linux").Targets(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"android-arm-clang", "linux-64-gcc", "windows-msvc2019_64-cl"}, targets)

	targets, err = (&SuffixResolver{}).Targets(sections{"General", "Variables"})
	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestSuffixResolverUnresolved(t *testing.T) {
	_, err := (&SuffixResolver{}).Targets(sections{"General", "linux-gcc", "x-settings"})
	require.Error(t, err)
	assert.True(t, IsErrUnresolvedSettingsSection(err))
	assert.True(t, errors.Is(err, util.ErrNotExist))
	var e ErrUnresolvedSettingsSection
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "x", e.Base)
	assert.Equal(t, "x-settings", e.Section)
	assert.Contains(t, err.Error(), "x")

	_, err = (&SuffixResolver{}).Targets(sections{"linux-gcc-BlueprintSettings"})
	assert.True(t, IsErrUnresolvedSettingsSection(err))
}

func TestPlatformResolver(t *testing.T) {
	doc := sections{
		"General", "Variables", "BlueprintSettings",
		"windows-msvc2019_64-cl",
		"windows-msvc2019_64-cl-BlueprintSettings",
		"windows-mingw_64-gcc",
		"linux-64-gcc",
		"linux-64-gcc-Settings",
		"macos-64-clang",
		"macos-missing-GeneralSettings",
		"linux-64-gcc-settings",
		"Settings",
	}

	targets, err := NewResolver(ModePlatform, "windows").Targets(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"windows-mingw_64-gcc", "windows-msvc2019_64-cl"}, targets)

	targets, err = NewResolver(ModePlatform, "linux").Targets(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"linux-64-gcc"}, targets)

	// a dangling settings section of the active platform is fatal
	_, err = NewResolver(ModePlatform, "macos").Targets(doc)
	var e ErrUnresolvedSettingsSection
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "macos-missing", e.Base)
	assert.Equal(t, "macos-missing-GeneralSettings", e.Section)

	targets, err = NewResolver(ModePlatform, "android").Targets(doc)
	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestResolversAreDeterministic(t *testing.T) {
	doc := sections{"c", "a", "b", "a-settings"}
	first, err := (&SuffixResolver{}).Targets(doc)
	require.NoError(t, err)
	second, err := (&SuffixResolver{}).Targets(sections{"b", "a-settings", "c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, first)
	assert.Equal(t, first, second)
}

func TestParseMode(t *testing.T) {
	for in, expected := range map[string]Mode{"": ModeSuffix, "suffix": ModeSuffix, " Platform ": ModePlatform} {
		mode, err := ParseMode(in)
		assert.NoError(t, err)
		assert.Equal(t, expected, mode)
	}
	_, err := ParseMode("os")
	assert.True(t, errors.Is(err, util.ErrInvalidArgument))

	assert.True(t, IsReserved("DEFAULT"))
	assert.False(t, IsReserved("linux-gcc"))
}
