// Copyright 2026 The CraftMaster Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import "fmt"

// DeprecatedWarning describes a section that is still honoured but should be renamed
type DeprecatedWarning struct {
	OldSection string
	NewSection string
}

func (dw DeprecatedWarning) String() string {
	return fmt.Sprintf("Deprecated section `[%s]` present. Please replace it with `[%s]`", dw.OldSection, dw.NewSection)
}
