// Released under an MIT license. See LICENSE.

// Package common defines helpers shared by simple's packages.
package common

import (
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/interface/literal"
	"github.com/simple-lang/simple/internal/type/str"
)

// String returns the display string for a cell. Strings are shown
// without quotes; everything else is shown as a literal.
func String(c cell.T) string {
	if s, ok := c.(*str.T); ok {
		return s.String()
	}

	return literal.String(c)
}
