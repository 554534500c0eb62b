// Released under an MIT license. See LICENSE.

// Package nothing provides simple's #nil and #void values.
package nothing

import (
	"github.com/simple-lang/simple/internal/interface/cell"
)

// T (nothing) is the type of the two absent values.
type T struct {
	literal string
}

//nolint:gochecknoglobals
var (
	// Nil is the value written #nil.
	Nil = &T{"#nil"}

	// Void is the value written #void. It is the result of forms that
	// produce no meaningful value.
	Void = &T{"#void"}
)

// Equal returns true if c is the same absent value as n.
func (n *T) Equal(c cell.T) bool {
	t, ok := c.(*T)
	return ok && t == n
}

// Literal returns the literal representation of n.
func (n *T) Literal() string {
	return n.literal
}

// Name returns the type name for n.
func (n *T) Name() string {
	return n.literal[1:]
}

// String returns the text of n.
func (n *T) String() string {
	return n.literal
}

// Is returns true if c is #nil or #void.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}
