// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/KDE/craftmaster/modules/log"
	"github.com/KDE/craftmaster/modules/util"

	"gopkg.in/ini.v1"
)

// Section names with a fixed meaning
const (
	GeneralSection           = "General"
	GeneralSettingsSection   = "GeneralSettings"
	VariablesSection         = "Variables"
	BlueprintSettingsSection = "BlueprintSettings"
	EnvSection               = "Env"
	SettingsSection          = "Settings"
)

// Variables seeded by CraftMaster
const (
	RootVariable         = "Root"
	AppRootVariable      = "CraftMasterRoot"
	ConfigFolderVariable = "CraftMasterConfig"
)

func init() {
	ini.PrettyFormat = false
	ini.PrettyEqual = true
}

// KeyValue is one resolved entry of a section
type KeyValue struct {
	Key   string
	Value string
}

// Config is the merged configuration document of one or more INI sources.
// Raw values are kept as written, ${Section:Key} references are resolved on lookup.
type Config struct {
	file    *ini.File
	sources []string
	env     *Environment
}

// LoadOptions describes what Load reads
type LoadOptions struct {
	// Sources are read in order, later sources override the keys of earlier ones
	Sources []string
	// Variables are written to [Variables] after all sources are merged
	Variables *VariableStore
	// Environment defaults to CaptureEnvironment()
	Environment *Environment
}

func iniLoadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		KeyValueDelimiters:         "=",
		KeyValueDelimiterOnWrite:   "=",
		IgnoreInlineComment:        true,
		IgnoreContinuation:         true,
		AllowPythonMultilineValues: true,
		PreserveSurroundedQuote:    true,
	}
}

// NewEmptyINI returns an empty INI document using the same syntax as the configuration
func NewEmptyINI() *ini.File {
	return ini.Empty(iniLoadOptions())
}

// LoadINI reads a single INI file using the same syntax as the configuration, without interpolation
func LoadINI(path string) (*ini.File, error) {
	return ini.LoadSources(iniLoadOptions(), path)
}

// Load reads and merges the configuration sources
func Load(opts LoadOptions) (*Config, error) {
	if len(opts.Sources) == 0 {
		return nil, util.NewInvalidArgumentErrorf("no configuration file given")
	}
	sources := make([]any, 0, len(opts.Sources))
	for _, src := range opts.Sources {
		isFile, err := util.IsFile(src)
		if err != nil {
			return nil, fmt.Errorf("unable to check config file %s: %w", src, err)
		}
		if !isFile {
			return nil, ErrConfigNotFound{Path: src}
		}
		sources = append(sources, src)
	}

	file, err := ini.LoadSources(iniLoadOptions(), sources[0], sources[1:]...)
	if err != nil {
		return nil, fmt.Errorf("unable to load config %s: %w", strings.Join(opts.Sources, ", "), err)
	}
	return newConfig(file, opts.Sources, opts.Variables, opts.Environment)
}

// LoadFromData reads the configuration from an in-memory INI document
func LoadFromData(data string, vars *VariableStore, env *Environment) (*Config, error) {
	file, err := ini.LoadSources(iniLoadOptions(), []byte(data))
	if err != nil {
		return nil, fmt.Errorf("unable to load config from data: %w", err)
	}
	return newConfig(file, nil, vars, env)
}

func newConfig(file *ini.File, sources []string, vars *VariableStore, env *Environment) (*Config, error) {
	if env == nil {
		env = CaptureEnvironment()
	}
	c := &Config{file: file, sources: sources, env: env}

	if !c.HasSection(EnvSection) {
		c.captureEnv()
	}
	if !c.HasSection(VariablesSection) {
		if _, err := c.file.NewSection(VariablesSection); err != nil {
			return nil, err
		}
	}
	for _, v := range vars.Variables() {
		if err := c.Set(VariablesSection, v.Name, v.Value); err != nil {
			return nil, err
		}
	}
	if !c.HasKey(VariablesSection, RootVariable) {
		if err := c.Set(VariablesSection, RootVariable, filepath.ToSlash(env.DefaultRoot())); err != nil {
			return nil, err
		}
	}
	// the anchors describe the running instance, they win over anything the user wrote
	if err := c.Set(VariablesSection, AppRootVariable, filepath.ToSlash(env.AppDir)); err != nil {
		return nil, err
	}
	if err := c.Set(VariablesSection, ConfigFolderVariable, filepath.ToSlash(c.configFolder())); err != nil {
		return nil, err
	}

	dump, err := c.GetBool(GeneralSection, "DumpConfig", false)
	if err != nil {
		return nil, err
	}
	if dump && len(c.sources) > 0 {
		dumpPath := c.sources[0] + ".dump"
		if err := c.Dump(dumpPath); err != nil {
			return nil, fmt.Errorf("unable to dump config to %s: %w", dumpPath, err)
		}
		log.Info("Dumped config to %s", dumpPath)
	}
	return c, nil
}

// captureEnv fills [Env] from the environment snapshot.
// Entries containing '$' are skipped, they would be read as interpolation references.
func (c *Config) captureEnv() {
	sec, err := c.file.NewSection(EnvSection)
	if err != nil {
		return
	}
	for _, name := range c.env.SortedVarNames() {
		value := c.env.Vars[name]
		if strings.Contains(name, "$") || strings.Contains(value, "$") {
			continue
		}
		_, _ = sec.NewKey(name, value)
	}
}

func (c *Config) configFolder() string {
	if len(c.sources) == 0 {
		return c.env.WorkDir
	}
	abs, err := filepath.Abs(c.sources[0])
	if err != nil {
		return filepath.Dir(c.sources[0])
	}
	return filepath.Dir(abs)
}

// SectionNames returns all section names in the order they were first declared
func (c *Config) SectionNames() []string {
	names := c.file.SectionStrings()
	return slices.DeleteFunc(names, func(name string) bool {
		return name == ini.DefaultSection
	})
}

// HasSection reports whether the section exists
func (c *Config) HasSection(section string) bool {
	_, err := c.file.GetSection(section)
	return err == nil
}

// HasKey reports whether the key is visible in the section, either set there or in [DEFAULT]
func (c *Config) HasKey(section, key string) bool {
	_, ok := c.rawValue(section, key)
	return ok
}

// Set writes a raw value, creating the section if needed
func (c *Config) Set(section, key, value string) error {
	sec, err := c.file.GetSection(section)
	if err != nil {
		if sec, err = c.file.NewSection(section); err != nil {
			return err
		}
	}
	if _, err := sec.NewKey(key, value); err != nil {
		return fmt.Errorf("unable to set [%s] %s: %w", section, key, err)
	}
	return nil
}

func ownKey(sec *ini.Section, key string) (*ini.Key, bool) {
	// Section.GetKey also searches parent and default sections, only look at our own keys
	if !slices.Contains(sec.KeyStrings(), key) {
		return nil, false
	}
	k, err := sec.GetKey(key)
	return k, err == nil
}

func (c *Config) rawValue(section, key string) (string, bool) {
	sec, err := c.file.GetSection(section)
	if err != nil {
		return "", false
	}
	if k, ok := ownKey(sec, key); ok {
		return k.Value(), true
	}
	if section == ini.DefaultSection {
		return "", false
	}
	def, err := c.file.GetSection(ini.DefaultSection)
	if err != nil {
		return "", false
	}
	if k, ok := ownKey(def, key); ok {
		return k.Value(), true
	}
	return "", false
}

func (c *Config) resolve(section, key string) (string, error) {
	raw, ok := c.rawValue(section, key)
	if !ok {
		return "", ErrMissingKey{Section: section, Key: key}
	}
	return c.interpolate(section, key, raw, 1)
}

// Get returns the interpolated value of [section] key.
// If the key does not exist the optional default is returned, otherwise an ErrMissingKey.
func (c *Config) Get(section, key string, def ...string) (string, error) {
	if len(def) > 0 && !c.HasKey(section, key) {
		return def[0], nil
	}
	return c.resolve(section, key)
}

// GetForTarget works like Get but first looks up the section "<target>-<section>".
// A value found there wins over everything else, including the default.
func (c *Config) GetForTarget(target, section, key string, def ...string) (string, error) {
	if target != "" {
		if qualified := target + "-" + section; c.HasKey(qualified, key) {
			return c.resolve(qualified, key)
		}
	}
	return c.Get(section, key, def...)
}

// GetSetting returns a [General] value which a "<target>-settings" section may override
func (c *Config) GetSetting(key, target string, def ...string) (string, error) {
	if target != "" {
		if qualified := target + "-settings"; c.HasKey(qualified, key) {
			return c.resolve(qualified, key)
		}
	}
	return c.Get(GeneralSection, key, def...)
}

// GetBool returns the value of [section] key read as a boolean
func (c *Config) GetBool(section, key string, def ...bool) (bool, error) {
	if len(def) > 0 && !c.HasKey(section, key) {
		return def[0], nil
	}
	v, err := c.resolve(section, key)
	if err != nil {
		return false, err
	}
	return ParseBool(section, key, v)
}

// ParseBool reads the canonical boolean tokens, case-insensitive
func ParseBool(section, key, value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "yes", "true", "on":
		return true, nil
	case "0", "no", "false", "off":
		return false, nil
	}
	return false, ErrInvalidBoolean{Section: section, Key: key, Value: value}
}

// SectionItems returns the interpolated entries of a section in declaration order.
// Keys inherited from [DEFAULT] are not included.
func (c *Config) SectionItems(section string) ([]KeyValue, error) {
	sec, err := c.file.GetSection(section)
	if err != nil {
		return nil, ErrMissingKey{Section: section}
	}
	items := make([]KeyValue, 0, len(sec.Keys()))
	for _, k := range sec.Keys() {
		v, err := c.interpolate(section, k.Name(), k.Value(), 1)
		if err != nil {
			return nil, err
		}
		items = append(items, KeyValue{Key: k.Name(), Value: v})
	}
	return items, nil
}
