// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all simple terms.
package cell

// T (cell) is a term. Programs and the data they manipulate are both cells.
type T interface {
	Equal(c T) bool
	Name() string
}
