// Released under an MIT license. See LICENSE.

// Package dict provides simple's mutable mapping type.
package dict

import (
	"strings"

	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/interface/literal"
)

const name = "dict"

// T (dict) maps keys to values. Keys are compared by their literal
// representation so the string "a", the symbol a and the keyword :a
// are distinct keys.
type T struct {
	keys   []string
	values map[string]entry
}

type entry struct {
	k cell.T
	v cell.T
}

// New creates an empty dict.
func New() *T {
	return &T{values: map[string]entry{}}
}

// Equal returns true if c is the same dict as d.
func (d *T) Equal(c cell.T) bool {
	t, ok := c.(*T)
	return ok && t == d
}

// Get returns the value associated with k and whether it was present.
func (d *T) Get(k cell.T) (cell.T, bool) {
	e, ok := d.values[literal.String(k)]
	return e.v, ok
}

// Len returns the number of entries in d.
func (d *T) Len() int {
	return len(d.keys)
}

// Literal returns the literal representation of the dict d.
func (d *T) Literal() string {
	s := make([]string, 0, len(d.keys))
	for _, k := range d.keys {
		e := d.values[k]
		s = append(s, literal.String(e.k)+" "+literal.String(e.v))
	}

	return "#<dict" + prefix(strings.Join(s, " ")) + ">"
}

// Name returns the type name for the dict d.
func (d *T) Name() string {
	return name
}

// Set associates k with v. New keys are kept in insertion order.
func (d *T) Set(k, v cell.T) {
	s := literal.String(k)
	if _, ok := d.values[s]; !ok {
		d.keys = append(d.keys, s)
	}

	d.values[s] = entry{k, v}
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

func prefix(s string) string {
	if s == "" {
		return s
	}

	return " " + s
}
