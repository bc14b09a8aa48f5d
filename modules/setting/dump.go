// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"github.com/KDE/craftmaster/modules/log"
)

// Dump writes the merged and interpolated configuration to path.
// The document itself is not modified, values which fail to interpolate are written raw.
func (c *Config) Dump(path string) error {
	out := NewEmptyINI()
	for _, sec := range c.file.Sections() {
		target, err := out.GetSection(sec.Name())
		if err != nil {
			if target, err = out.NewSection(sec.Name()); err != nil {
				return err
			}
		}
		for _, k := range sec.Keys() {
			v, err := c.interpolate(sec.Name(), k.Name(), k.Value(), 1)
			if err != nil {
				log.Warn("Dump: %v", err)
				v = k.Value()
			}
			if _, err := target.NewKey(k.Name(), v); err != nil {
				return err
			}
		}
	}
	return out.SaveTo(path)
}
