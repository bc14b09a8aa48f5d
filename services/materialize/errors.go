// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package materialize

import (
	"errors"
	"fmt"

	"github.com/KDE/craftmaster/modules/util"
)

// ErrInvalidBlueprintKey represents a blueprint setting that is not of the form <blueprint>.<name>
type ErrInvalidBlueprintKey struct {
	Key string
}

// IsErrInvalidBlueprintKey checks if an error is an ErrInvalidBlueprintKey
func IsErrInvalidBlueprintKey(err error) bool {
	var e ErrInvalidBlueprintKey
	return errors.As(err, &e)
}

func (err ErrInvalidBlueprintKey) Error() string {
	return fmt.Sprintf("invalid blueprint setting: %s, expected <blueprint>.<name>", err.Key)
}

func (err ErrInvalidBlueprintKey) Unwrap() error {
	return util.ErrInvalidArgument
}

// ErrInvalidSettingKey represents a general setting that is not of the form <section>/<name>
type ErrInvalidSettingKey struct {
	Key string
}

// IsErrInvalidSettingKey checks if an error is an ErrInvalidSettingKey
func IsErrInvalidSettingKey(err error) bool {
	var e ErrInvalidSettingKey
	return errors.As(err, &e)
}

func (err ErrInvalidSettingKey) Error() string {
	return fmt.Sprintf("invalid option: %s, expected <section>/<name>", err.Key)
}

func (err ErrInvalidSettingKey) Unwrap() error {
	return util.ErrInvalidArgument
}

// ErrTemplateMissing represents a target root without a settings template
type ErrTemplateMissing struct {
	Path string
}

// IsErrTemplateMissing checks if an error is an ErrTemplateMissing
func IsErrTemplateMissing(err error) bool {
	var e ErrTemplateMissing
	return errors.As(err, &e)
}

func (err ErrTemplateMissing) Error() string {
	return fmt.Sprintf("%s does not exist", err.Path)
}

func (err ErrTemplateMissing) Unwrap() error {
	return util.ErrNotExist
}

// ErrSettingsGeneration represents a failure while producing the general settings of a target.
// It carries the template text to help finding the offending entry.
type ErrSettingsGeneration struct {
	Template     string
	TemplateText string
	Err          error
}

// IsErrSettingsGeneration checks if an error is an ErrSettingsGeneration
func IsErrSettingsGeneration(err error) bool {
	var e ErrSettingsGeneration
	return errors.As(err, &e)
}

func (err ErrSettingsGeneration) Error() string {
	return fmt.Sprintf("failed to setup settings %s\n%v\n\nTemplate:\n%s", err.Template, err.Err, err.TemplateText)
}

func (err ErrSettingsGeneration) Unwrap() error {
	return err.Err
}

// ErrMultilineValue represents a setting whose value spans several lines, which the settings files cannot hold
type ErrMultilineValue struct {
	Key string
}

// IsErrMultilineValue checks if an error is an ErrMultilineValue
func IsErrMultilineValue(err error) bool {
	var e ErrMultilineValue
	return errors.As(err, &e)
}

func (err ErrMultilineValue) Error() string {
	return fmt.Sprintf("value of %s spans several lines", err.Key)
}

func (err ErrMultilineValue) Unwrap() error {
	return util.ErrInvalidArgument
}
