// Released under an MIT license. See LICENSE.

// Package integer provides simple's integer type.
package integer

import (
	"strconv"

	"github.com/simple-lang/simple/internal/interface/cell"
)

const name = "integer"

// T (integer) wraps Go's int64 type.
type T int64

// New creates a new integer cell.
func New(v int64) *T {
	i := T(v)
	return &i
}

// Equal returns true if c is an integer with the same value as i.
func (i *T) Equal(c cell.T) bool {
	return Is(c) && *i == *To(c)
}

// Int returns the value of the integer i.
func (i *T) Int() int64 {
	return int64(*i)
}

// Literal returns the literal representation of the integer i.
func (i *T) Literal() string {
	return strconv.FormatInt(int64(*i), 10)
}

// Name returns the type name for the integer i.
func (i *T) Name() string {
	return name
}

// String returns the text of the integer i.
func (i *T) String() string {
	return i.Literal()
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
