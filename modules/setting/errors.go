// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"errors"
	"fmt"

	"github.com/KDE/craftmaster/modules/util"
)

// ErrConfigNotFound represents a declared configuration source that does not exist
type ErrConfigNotFound struct {
	Path string
}

// IsErrConfigNotFound checks if an error is an ErrConfigNotFound
func IsErrConfigNotFound(err error) bool {
	var e ErrConfigNotFound
	return errors.As(err, &e)
}

func (err ErrConfigNotFound) Error() string {
	return fmt.Sprintf("config file %s does not exist", err.Path)
}

func (err ErrConfigNotFound) Unwrap() error {
	return util.ErrNotExist
}

// ErrInvalidVariable represents a variable override that is not of the form Name=Value
type ErrInvalidVariable struct {
	Entry string
}

// IsErrInvalidVariable checks if an error is an ErrInvalidVariable
func IsErrInvalidVariable(err error) bool {
	var e ErrInvalidVariable
	return errors.As(err, &e)
}

func (err ErrInvalidVariable) Error() string {
	return fmt.Sprintf("invalid variable: %q, expected Name=Value", err.Entry)
}

func (err ErrInvalidVariable) Unwrap() error {
	return util.ErrInvalidArgument
}

// ErrMissingKey represents a lookup of a key (or a whole section when Key is empty) that does not exist
type ErrMissingKey struct {
	Section string
	Key     string
}

// IsErrMissingKey checks if an error is an ErrMissingKey
func IsErrMissingKey(err error) bool {
	var e ErrMissingKey
	return errors.As(err, &e)
}

func (err ErrMissingKey) Error() string {
	if err.Key == "" {
		return fmt.Sprintf("section [%s] does not exist", err.Section)
	}
	return fmt.Sprintf("key %q does not exist in section [%s]", err.Key, err.Section)
}

func (err ErrMissingKey) Unwrap() error {
	return util.ErrNotExist
}

// ErrInvalidBoolean represents a value that can not be read as a boolean
type ErrInvalidBoolean struct {
	Section string
	Key     string
	Value   string
}

// IsErrInvalidBoolean checks if an error is an ErrInvalidBoolean
func IsErrInvalidBoolean(err error) bool {
	var e ErrInvalidBoolean
	return errors.As(err, &e)
}

func (err ErrInvalidBoolean) Error() string {
	return fmt.Sprintf("[%s] %s: not a boolean: %q", err.Section, err.Key, err.Value)
}

func (err ErrInvalidBoolean) Unwrap() error {
	return util.ErrInvalidArgument
}

// ErrInterpolation represents a failure to substitute the ${Section:Key} references of a value
type ErrInterpolation struct {
	Section string
	Key     string
	Reason  string
	Err     error
}

// IsErrInterpolation checks if an error is an ErrInterpolation
func IsErrInterpolation(err error) bool {
	var e ErrInterpolation
	return errors.As(err, &e)
}

func (err ErrInterpolation) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("failed to interpolate [%s] %s: %v", err.Section, err.Key, err.Err)
	}
	return fmt.Sprintf("failed to interpolate [%s] %s: %s", err.Section, err.Key, err.Reason)
}

func (err ErrInterpolation) Unwrap() error {
	if err.Err != nil {
		return err.Err
	}
	return util.ErrInvalidArgument
}
