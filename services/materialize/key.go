// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package materialize

import "strings"

// Separators of the flattened keys
const (
	BlueprintSeparator = "."
	SettingSeparator   = "/"
)

// Key is a flattened configuration key split into the section it is written to and its name there
type Key struct {
	Group string
	Name  string
}

// ParseKey splits key on the first sep.
// Both parts must be non-empty, the error type depends on the separator.
func ParseKey(key, sep string) (Key, error) {
	group, name, ok := strings.Cut(key, sep)
	if !ok || group == "" || name == "" {
		if sep == BlueprintSeparator {
			return Key{}, ErrInvalidBlueprintKey{Key: key}
		}
		return Key{}, ErrInvalidSettingKey{Key: key}
	}
	return Key{Group: group, Name: name}, nil
}
