// Released under an MIT license. See LICENSE.

// Package str provides simple's string type.
package str

import (
	"strings"

	"github.com/simple-lang/simple/internal/interface/cell"
)

const name = "string"

// Only the escapes the reader accepts are written. Everything else,
// control characters included, is written as is.
//
//nolint:gochecknoglobals
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\b", `\b`,
	"\f", `\f`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\v", `\v`,
)

// T (string) wraps Go's string type.
type T string

// New creates a new string cell.
func New(v string) *T {
	s := T(v)
	return &s
}

// The string type is a cell.

// Equal returns true if the cell c wraps the same string.
func (s *T) Equal(c cell.T) bool {
	return Is(c) && s.String() == To(c).String()
}

// Name returns the name of the string type.
func (s *T) Name() string {
	return name
}

// The string type has a literal representation.

// Literal returns the literal representation of the string s.
func (s *T) Literal() string {
	return `"` + escaper.Replace(string(*s)) + `"`
}

// The string type is a stringer.

// String returns the text of the string s.
func (s *T) String() string {
	return string(*s)
}

// The two functions below could be generated for each type.

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
