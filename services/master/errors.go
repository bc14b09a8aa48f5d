// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package master

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KDE/craftmaster/modules/util"
)

var (
	// ErrNoTarget is returned when the configuration does not declare any target
	ErrNoTarget = util.NewNotExistErrorf("please specify at least one target category")
	// ErrNoCommand is returned when neither the command line nor the configuration names a command
	ErrNoCommand = errors.New("no craft command given and none configured")
)

// ErrInvalidTarget represents requested targets that match none of the configured ones
type ErrInvalidTarget struct {
	Names []string
	Valid []string
}

// IsErrInvalidTarget checks if an error is an ErrInvalidTarget
func IsErrInvalidTarget(err error) bool {
	var e ErrInvalidTarget
	return errors.As(err, &e)
}

func (err ErrInvalidTarget) Error() string {
	return fmt.Sprintf("invalid targets: %s, valid targets are: %s", strings.Join(err.Names, ", "), strings.Join(err.Valid, ", "))
}

func (err ErrInvalidTarget) Unwrap() error {
	return util.ErrInvalidArgument
}
