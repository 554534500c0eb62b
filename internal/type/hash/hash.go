// Released under an MIT license. See LICENSE.

// Package hash provides simple's symbol to value mapping type.
package hash

import (
	"sort"

	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/interface/reference"
	"github.com/simple-lang/simple/internal/type/slot"
	"github.com/simple-lang/simple/internal/type/sym"
)

// T (hash) maps symbols to values.
type T struct {
	m map[*sym.T]reference.T
}

// New creates a new hash.
func New() *T {
	return &T{m: map[*sym.T]reference.T{}}
}

// Get retrieves the reference associated with the symbol k in the hash h.
func (h *T) Get(k *sym.T) reference.T {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Names returns the sorted names of every symbol in the hash h.
func (h *T) Names() []string {
	names := make([]string, 0, len(h.m))
	for k := range h.m {
		names = append(names, k.String())
	}

	sort.Strings(names)

	return names
}

// Set associates the symbol k with the cell v in the hash h.
// An existing association is replaced by a fresh slot.
func (h *T) Set(k *sym.T, v cell.T) {
	h.m[k] = slot.New(v)
}

// Size returns the number of entries in the hash h.
func (h *T) Size() int {
	return len(h.m)
}
