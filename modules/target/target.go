// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package target derives the build targets declared by a configuration document.
package target

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/KDE/craftmaster/modules/util"
)

// Document is the part of a configuration the resolvers look at
type Document interface {
	SectionNames() []string
}

// Reserved are the section names that are never targets
var Reserved = []string{
	"General",
	"GeneralSettings",
	"Variables",
	"BlueprintSettings",
	"Env",
	"Settings",
	"DEFAULT",
}

// IsReserved reports whether name is a reserved section name
func IsReserved(name string) bool {
	return slices.Contains(Reserved, name)
}

// Mode selects the filter strategy
type Mode string

const (
	// ModeSuffix treats every non reserved section as a target and drops settings sections by suffix
	ModeSuffix Mode = "suffix"
	// ModePlatform only keeps the sections of the active platform
	ModePlatform Mode = "platform"
)

// ParseMode reads a filter mode, an empty string means ModeSuffix
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSuffix:
		return ModeSuffix, nil
	case ModePlatform:
		return ModePlatform, nil
	}
	return "", util.NewInvalidArgumentErrorf("unknown target filter %q, expected %q or %q", s, ModeSuffix, ModePlatform)
}

// ErrUnresolvedSettingsSection represents a settings section whose base target does not exist
type ErrUnresolvedSettingsSection struct {
	Section string
	Base    string
}

// IsErrUnresolvedSettingsSection checks if an error is an ErrUnresolvedSettingsSection
func IsErrUnresolvedSettingsSection(err error) bool {
	var e ErrUnresolvedSettingsSection
	return errors.As(err, &e)
}

func (err ErrUnresolvedSettingsSection) Error() string {
	return fmt.Sprintf("unable to find %s in targets (required by [%s])", err.Base, err.Section)
}

func (err ErrUnresolvedSettingsSection) Unwrap() error {
	return util.ErrNotExist
}

// Resolver returns the sorted list of targets of a document
type Resolver interface {
	Targets(doc Document) ([]string, error)
}

// NewResolver returns the resolver of the given mode
func NewResolver(mode Mode, platform string) Resolver {
	if mode == ModePlatform {
		return &PlatformResolver{Platform: platform}
	}
	return &SuffixResolver{}
}

func candidates(doc Document) []string {
	names := doc.SectionNames()
	out := make([]string, 0, len(names))
	for _, name := range names {
		if !IsReserved(name) && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

// cutSuffix strips the first matching suffix and reports whether one matched
func cutSuffix(name string, suffixes []string) (string, bool) {
	for _, suffix := range suffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok {
			return base, true
		}
	}
	return name, false
}

// split separates plain targets from settings sections and checks that every settings section has its target
func split(names, suffixes []string) ([]string, error) {
	targets := make([]string, 0, len(names))
	settings := make([]string, 0)
	for _, name := range names {
		if _, ok := cutSuffix(name, suffixes); ok {
			settings = append(settings, name)
			continue
		}
		targets = append(targets, name)
	}
	sort.Strings(settings)
	for _, section := range settings {
		base, _ := cutSuffix(section, suffixes)
		if !slices.Contains(targets, base) {
			return nil, ErrUnresolvedSettingsSection{Section: section, Base: base}
		}
	}
	sort.Strings(targets)
	return targets, nil
}

var settingsSuffixes = []string{"-BlueprintSettings", "-GeneralSettings", "-Settings", "-settings"}

// SuffixResolver treats every section that is neither reserved nor a settings section as a target
type SuffixResolver struct{}

// Targets implements Resolver
func (r *SuffixResolver) Targets(doc Document) ([]string, error) {
	return split(candidates(doc), settingsSuffixes)
}

// PlatformResolver only considers the sections prefixed with the active platform,
// for example "windows-msvc2019_64-cl" on Windows
type PlatformResolver struct {
	Platform string
}

// Targets implements Resolver
func (r *PlatformResolver) Targets(doc Document) ([]string, error) {
	names := slices.DeleteFunc(candidates(doc), func(name string) bool {
		return r.Platform == "" || !strings.HasPrefix(name, r.Platform)
	})
	return split(names, settingsSuffixes)
}
