// Released under an MIT license. See LICENSE.

// Package keyword provides simple's keyword cell type.
package keyword

import (
	"sync"

	"github.com/simple-lang/simple/internal/interface/cell"
)

const name = "keyword"

// T (keyword) is a self-evaluating name. Keywords are interned in a
// table separate from symbols.
type T struct {
	name string
}

// New returns the interned keyword for v, creating it if necessary.
// The name v does not include the leading colon.
func New(v string) *T {
	kwl.Lock()
	defer kwl.Unlock()

	if k, ok := kw[v]; ok {
		return k
	}

	k := &T{name: v}
	kw[v] = k

	return k
}

// Equal returns true if c is the same keyword as k.
func (k *T) Equal(c cell.T) bool {
	t, ok := c.(*T)
	return ok && t == k
}

// Name returns the type name for the keyword k.
func (k *T) Name() string {
	return name
}

// Literal returns the literal representation of the keyword k.
func (k *T) Literal() string {
	return ":" + k.name
}

// String returns the name of the keyword k without the leading colon.
func (k *T) String() string {
	return k.name
}

//nolint:gochecknoglobals
var (
	kw  = map[string]*T{}
	kwl = &sync.Mutex{}
)

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
