// Released under an MIT license. See LICENSE.

// Package sym provides simple's symbol cell type.
package sym

import (
	"strconv"
	"sync"

	"github.com/simple-lang/simple/internal/interface/cell"
)

const name = "symbol"

// T (symbol) is an identifier. Symbols created with New are interned so
// two symbols with the same name are the same *T.
type T struct {
	name string
}

// New returns the interned symbol for v, creating it if necessary.
func New(v string) *T {
	if p, ok := symtry(v); ok {
		return p
	}

	syml.Lock()
	defer syml.Unlock()

	if p, ok := sym[v]; ok {
		return p
	}

	p := &T{name: v}
	sym[v] = p

	return p
}

// Gensym returns a fresh symbol that is not interned. It is named
// prefix followed by an underscore and a unique number.
func Gensym(prefix string) *T {
	syml.Lock()
	defer syml.Unlock()

	next++

	return &T{name: prefix + "_" + strconv.FormatUint(next, 10)}
}

// The symbol type is a cell.

// Equal returns true if c is the same symbol as s.
func (s *T) Equal(c cell.T) bool {
	t, ok := c.(*T)
	return ok && t == s
}

// Name returns the type name for the symbol s.
func (s *T) Name() string {
	return name
}

// The symbol type has a literal representation.

// Literal returns the literal representation of the symbol s.
func (s *T) Literal() string {
	return s.name
}

// The symbol type is a stringer.

// String returns the text of the symbol s.
func (s *T) String() string {
	return s.name
}

//nolint:gochecknoglobals
var (
	next uint64
	sym  = map[string]*T{}
	syml = &sync.RWMutex{}
)

func symtry(v string) (p *T, ok bool) {
	syml.RLock()
	defer syml.RUnlock()
	p, ok = sym[v]
	return
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
