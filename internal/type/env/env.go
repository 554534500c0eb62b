// Released under an MIT license. See LICENSE.

// Package env provides simple's chained lexical environment type.
//
// The same representation serves as the syntactic environment used by
// the expander and as the value environment used by the evaluator.
package env

import (
	"strings"

	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/interface/reference"
	"github.com/simple-lang/simple/internal/type/hash"
	"github.com/simple-lang/simple/internal/type/sym"
)

const name = "environment"

// T (env) is a frame mapping symbols to values and a link to the
// enclosing frame. Frames are never removed from a chain.
type T struct {
	previous *T
	*frame
}

// We alias hash.T to frame so that when embedded it is easy to refer to
// it by name. Embedding frame also lets us access its methods directly.
type frame = hash.T

// New creates a new env whose lookups fall through to previous.
// A nil previous creates a global environment.
func New(previous *T) *T {
	return &T{
		previous: previous,
		frame:    hash.New(),
	}
}

// Bind associates k with v in the innermost frame of e.
func (e *T) Bind(k *sym.T, v cell.T) {
	e.frame.Set(k, v)
}

// Complete returns the names bound anywhere in e that start with prefix.
func (e *T) Complete(prefix string) []string {
	seen := map[string]bool{}
	names := []string{}

	for f := e; f != nil; f = f.previous {
		for _, n := range f.Names() {
			if seen[n] || !strings.HasPrefix(n, prefix) {
				continue
			}

			seen[n] = true
			names = append(names, n)
		}
	}

	return names
}

// Enclosing returns the enclosing env.
func (e *T) Enclosing() *T {
	return e.previous
}

// Equal returns true if c is the same env as e.
func (e *T) Equal(c cell.T) bool {
	return Is(c) && e == To(c)
}

// Extend creates a new empty frame whose lookups fall through to e.
func (e *T) Extend() *T {
	return New(e)
}

// Get returns the value of k in the nearest frame that binds it.
// The second result is false if no frame binds k.
func (e *T) Get(k *sym.T) (cell.T, bool) {
	r := e.Lookup(k)
	if r == nil {
		return nil, false
	}

	return r.Get(), true
}

// Global returns the outermost frame of e.
func (e *T) Global() *T {
	for e.previous != nil {
		e = e.previous
	}

	return e
}

// Lookup retrieves the reference associated with k in the nearest frame.
func (e *T) Lookup(k *sym.T) reference.T {
	for f := e; f != nil; f = f.previous {
		if r := f.frame.Get(k); r != nil {
			return r
		}
	}

	return nil
}

// Name returns the type name for the env e.
func (e *T) Name() string {
	return name
}

// Set changes the value of k in the nearest frame that already binds it.
// It never creates a binding and returns false if no frame binds k.
func (e *T) Set(k *sym.T, v cell.T) bool {
	r := e.Lookup(k)
	if r == nil {
		return false
	}

	r.Set(v)

	return true
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

	panic("not an " + name)
}
