// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package master

import (
	"slices"
	"sort"
	"strings"

	"github.com/KDE/craftmaster/modules/log"
	"github.com/KDE/craftmaster/modules/util"

	"github.com/gobwas/glob"
)

// selectTargets returns the targets matching any of the requested names or glob patterns.
// Every request that matches nothing is reported before an ErrInvalidTarget is returned.
func selectTargets(available, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return available, nil
	}

	var selected, invalid []string
	for _, req := range requested {
		g, err := glob.Compile(req)
		if err != nil {
			return nil, util.NewInvalidArgumentErrorf("invalid target pattern %q: %v", req, err)
		}
		matched := false
		for _, name := range available {
			if !g.Match(name) {
				continue
			}
			matched = true
			if !slices.Contains(selected, name) {
				selected = append(selected, name)
			}
		}
		if !matched {
			log.Error("Target %s is not a valid target. Valid targets are %s", req, strings.Join(available, ", "))
			invalid = append(invalid, req)
		}
	}
	if len(invalid) > 0 {
		return nil, ErrInvalidTarget{Names: invalid, Valid: available}
	}
	sort.Strings(selected)
	return selected, nil
}
