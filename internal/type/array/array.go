// Released under an MIT license. See LICENSE.

// Package array provides simple's fixed-size vector type.
package array

import (
	"strings"

	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/interface/literal"
)

const name = "array"

// T (array) is an ordered, fixed-size sequence written [e1 e2 ...].
// Elements can be replaced with aset but the length never changes.
type T struct {
	Elements []cell.T
}

// New creates a new array holding elements.
func New(elements ...cell.T) *T {
	return &T{Elements: elements}
}

// Equal returns true if c is an array with elements equal to a's.
func (a *T) Equal(c cell.T) bool {
	b, ok := c.(*T)
	if !ok || len(a.Elements) != len(b.Elements) {
		return false
	}

	if a == b {
		return true
	}

	for i, e := range a.Elements {
		if !e.Equal(b.Elements[i]) {
			return false
		}
	}

	return true
}

// Literal returns the literal representation of the array a.
func (a *T) Literal() string {
	s := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		s[i] = literal.String(e)
	}

	return "[" + strings.Join(s, " ") + "]"
}

// Name returns the type name for the array a.
func (a *T) Name() string {
	return name
}

// String returns the text of the array a.
func (a *T) String() string {
	return a.Literal()
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not an " + name)
}
