// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package materialize writes the per target settings files of a craft root.
package materialize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/KDE/craftmaster/modules/log"
	"github.com/KDE/craftmaster/modules/setting"
	"github.com/KDE/craftmaster/modules/util"

	"github.com/dustin/go-humanize"
	"gopkg.in/ini.v1"
)

// Files below <craft root>/etc
const (
	MarkerFile            = "craftmaster_setup"
	BlueprintSettingsFile = "BlueprintSettings.ini"
	CraftSettingsFile     = "CraftSettings.ini"
	CacheFile             = "cache.pickle"
)

// TemplateFile is the settings template shipped with craft, relative to the craft root
var TemplateFile = filepath.Join("craft", "CraftSettings.ini.template")

// Document is the configuration the settings are generated from
type Document interface {
	HasSection(section string) bool
	SectionItems(section string) ([]setting.KeyValue, error)
	Get(section, key string, def ...string) (string, error)
}

// Materializer generates etc/BlueprintSettings.ini and etc/CraftSettings.ini for a target
type Materializer struct{}

// NewMaterializer creates a materializer
func NewMaterializer() *Materializer {
	return &Materializer{}
}

// Materialize generates the settings of target below craftRoot.
// A root which was set up before is left alone unless regenerate is set.
func (m *Materializer) Materialize(ctx context.Context, doc Document, target, craftRoot string, regenerate bool) error {
	etcDir := filepath.Join(craftRoot, "etc")
	marker := filepath.Join(etcDir, MarkerFile)

	isSetup, err := util.IsExist(marker)
	if err != nil {
		return fmt.Errorf("unable to check %s: %w", marker, err)
	}
	if isSetup && !regenerate {
		log.Debug("Settings of %s are up to date, pass --setup to regenerate them", target)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(etcDir, os.ModePerm); err != nil {
		return fmt.Errorf("unable to create %s: %w", etcDir, err)
	}

	log.Info("Generate settings for %s", target)
	if err := m.writeBlueprintSettings(doc, target, filepath.Join(etcDir, BlueprintSettingsFile)); err != nil {
		return err
	}
	if err := m.writeCraftSettings(doc, target, craftRoot, filepath.Join(etcDir, CraftSettingsFile)); err != nil {
		return err
	}

	if err := util.Remove(filepath.Join(etcDir, CacheFile)); err != nil {
		return fmt.Errorf("unable to invalidate the cache of %s: %w", target, err)
	}
	return util.Touch(marker)
}

func (m *Materializer) writeBlueprintSettings(doc Document, target, path string) error {
	out := setting.NewEmptyINI()
	for _, section := range []string{setting.BlueprintSettingsSection, target + "-" + setting.BlueprintSettingsSection} {
		if err := applyLayer(out, doc, section, BlueprintSeparator); err != nil {
			return err
		}
	}
	return save(out, path)
}

func (m *Materializer) writeCraftSettings(doc Document, target, craftRoot, path string) error {
	template := filepath.Join(craftRoot, TemplateFile)
	isFile, err := util.IsFile(template)
	if err != nil {
		return fmt.Errorf("unable to check %s: %w", template, err)
	}
	if !isFile {
		return ErrTemplateMissing{Path: template}
	}

	if err := m.generateCraftSettings(doc, target, template, path); err != nil {
		text, readErr := os.ReadFile(template)
		if readErr != nil {
			log.Error("Unable to read %s: %v", template, readErr)
		}
		return ErrSettingsGeneration{Template: template, TemplateText: string(text), Err: err}
	}
	return nil
}

func (m *Materializer) generateCraftSettings(doc Document, target, template, path string) error {
	settings, err := setting.LoadINI(template)
	if err != nil {
		return err
	}

	appRoot, err := doc.Get(setting.VariablesSection, setting.AppRootVariable)
	if err != nil {
		return err
	}
	blueprints := settings.Section("Blueprints")
	locations := appRoot + "/blueprints;"
	if k, ok := ownKey(blueprints, "Locations"); ok {
		locations += k.Value()
	}
	if _, err := blueprints.NewKey("Locations", locations); err != nil {
		return err
	}

	if err := applyLayer(settings, doc, setting.GeneralSettingsSection, SettingSeparator); err != nil {
		return err
	}
	if deprecated := target + "-" + setting.GeneralSettingsSection; doc.HasSection(deprecated) {
		log.Warn("%s", setting.DeprecatedWarning{OldSection: deprecated, NewSection: target})
		if err := applyLayer(settings, doc, deprecated, SettingSeparator); err != nil {
			return err
		}
	}
	if err := applyLayer(settings, doc, target, SettingSeparator); err != nil {
		return err
	}
	return save(settings, path)
}

// applyLayer writes the flattened keys of a config section into out, later layers override earlier ones
func applyLayer(out *ini.File, doc Document, section, sep string) error {
	if !doc.HasSection(section) {
		return nil
	}
	items, err := doc.SectionItems(section)
	if err != nil {
		return err
	}
	for _, item := range items {
		key, err := ParseKey(item.Key, sep)
		if err != nil {
			return err
		}
		if strings.ContainsAny(item.Value, "\r\n") {
			return ErrMultilineValue{Key: item.Key}
		}
		if _, err := out.Section(key.Group).NewKey(key.Name, item.Value); err != nil {
			return fmt.Errorf("unable to set [%s] %s: %w", key.Group, key.Name, err)
		}
	}
	return nil
}

func ownKey(sec *ini.Section, name string) (*ini.Key, bool) {
	if !slices.Contains(sec.KeyStrings(), name) {
		return nil, false
	}
	k, err := sec.GetKey(name)
	return k, err == nil
}

func save(f *ini.File, path string) error {
	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("unable to write %s: %w", path, err)
	}
	if log.IsDebug() {
		if fi, err := os.Stat(path); err == nil {
			log.Debug("Wrote %s (%s)", path, humanize.IBytes(uint64(fi.Size())))
		}
	}
	return nil
}
