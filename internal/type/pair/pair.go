// Released under an MIT license. See LICENSE.

// Package pair provides simple's cons cell type.
//
// Pairs are immutable. Consing onto a list shares the existing list as
// the tail of the new pair so any suffix of a list can be safely aliased.
package pair

import (
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/interface/literal"
	"github.com/simple-lang/simple/internal/type/loc"
)

const name = "list"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list.
	Null cell.T
)

// T (pair) is a cons cell.
type T struct {
	car cell.T
	cdr cell.T
}

// Plus is a pair but with contextual information.
type Plus struct {
	*T
	source loc.T
}

// The pair type is a cell.

// Equal returns true if c is a list with elements that are equal to p's.
func (p *T) Equal(c cell.T) bool {
	if !Is(c) {
		return false
	}

	var l cell.T = p
	for l != Null && c != Null {
		if l == c {
			return true
		}

		if !Is(c) || !Car(l).Equal(Car(c)) {
			return false
		}

		l, c = Cdr(l), Cdr(c)
	}

	return l == c
}

// Name returns the name for a pair type.
func (p *T) Name() string {
	return name
}

// The pair type has a literal representation.

// Literal returns the literal representation of the pair p.
func (p *T) Literal() string {
	s := "("

	var l cell.T = p
	for l != Null {
		s += literal.String(Car(l))

		l = Cdr(l)
		if l != Null {
			s += " "
		}
	}

	return s + ")"
}

// The pair type is a stringer.

// String returns the text representation of the pair p.
func (p *T) String() string {
	return p.Literal()
}

// Source returns the lexical location for a pair plus.
func (p *Plus) Source() *loc.T {
	return &p.source
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// The car of Null is Null. If c is not a pair, this function will panic.
func Car(c cell.T) cell.T {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// The cdr of Null is Null. If c is not a pair, this function will panic.
func Cdr(c cell.T) cell.T {
	return To(c).cdr
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cadr(c cell.T) cell.T {
	return To(To(c).cdr).car
}

// Cddr returns the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cddr(c cell.T) cell.T {
	return To(To(c).cdr).cdr
}

// Caddr returns the car of the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Caddr(c cell.T) cell.T {
	return To(To(To(c).cdr).cdr).car
}

// Cons conses h and t together to form a new pair.
// If a source location is provided that contextual information is added.
func Cons(h, t cell.T, source ...loc.T) cell.T {
	if !Is(t) {
		panic("the tail of a list must be a list, not a " + t.Name())
	}

	p := &T{car: h, cdr: t}

	length := len(source)
	if length == 0 {
		return p
	}

	if length > 1 {
		panic("cons can't have more than one source")
	}

	return &Plus{T: p, source: source[0]}
}

// Is returns true if c is a pair or pair plus.
func Is(c cell.T) bool {
	switch c.(type) {
	case *T, *Plus:
		return true
	}
	return false
}

// IsNull returns true if c is the Null cell.
func IsNull(c cell.T) bool {
	return c == Null
}

// Source returns the lexical location attached to c, if any.
func Source(c cell.T) *loc.T {
	if p, ok := c.(*Plus); ok {
		return p.Source()
	}

	return nil
}

// To returns a pair if c is a pair or pair plus; Otherwise it panics.
func To(c cell.T) *T {
	switch t := c.(type) {
	case *T:
		return t
	case *Plus:
		return t.T
	}

	panic("not a " + name)
}

//nolint:gochecknoinits
func init() {
	pair := &T{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.T(pair)
}
