// Released under an MIT license. See LICENSE.

// Package macro provides the marker that designates a user-defined macro.
package macro

import (
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/type/sym"
)

const name = "macro"

// T (macro) is placed in the syntactic environment by set-macro!. It
// means the runtime value bound to Symbol is a syntax transformer.
type T struct {
	Symbol *sym.T
}

// New creates a macro marker for s.
func New(s *sym.T) *T {
	return &T{Symbol: s}
}

// Equal returns true if c is a macro marker for the same symbol.
func (m *T) Equal(c cell.T) bool {
	t, ok := c.(*T)
	return ok && t.Symbol == m.Symbol
}

// Literal returns the literal representation of the macro marker m.
func (m *T) Literal() string {
	return "#<macro " + m.Symbol.String() + ">"
}

// Name returns the type name for the macro marker m.
func (m *T) Name() string {
	return name
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}
