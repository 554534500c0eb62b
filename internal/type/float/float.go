// Released under an MIT license. See LICENSE.

// Package float provides simple's floating point type.
package float

import (
	"strconv"
	"strings"

	"github.com/simple-lang/simple/internal/interface/cell"
)

const name = "float"

// T (float) wraps Go's float64 type.
type T float64

// New creates a new float cell.
func New(v float64) *T {
	f := T(v)
	return &f
}

// Equal returns true if c is a float with the same value as f.
func (f *T) Equal(c cell.T) bool {
	return Is(c) && *f == *To(c)
}

// Float returns the value of the float f.
func (f *T) Float() float64 {
	return float64(*f)
}

// Literal returns the literal representation of the float f.
// Integral values keep a trailing ".0" so they read back as floats.
func (f *T) Literal() string {
	s := strconv.FormatFloat(float64(*f), 'g', -1, 64)

	if strings.ContainsAny(s, ".eIN") {
		return s
	}

	return s + ".0"
}

// Name returns the type name for the float f.
func (f *T) Name() string {
	return name
}

// String returns the text of the float f.
func (f *T) String() string {
	return f.Literal()
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

	panic("not a " + name)
}
