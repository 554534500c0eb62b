// Released under an MIT license. See LICENSE.

package expander

import (
	"github.com/simple-lang/simple/internal/engine/kernel"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/type/array"
	"github.com/simple-lang/simple/internal/type/list"
	"github.com/simple-lang/simple/internal/type/pair"
	"github.com/simple-lang/simple/internal/type/sym"
)

// quasiquote treats a list as a sequence of elements to concatenate.
// Anything else is rewritten as a single element.
func quasiquote(term cell.T) cell.T {
	if pair.Is(term) && !unquoted(term) {
		return concat(term)
	}

	return element(term)
}

// element returns code for a list whose elements are spliced into place.
func element(term cell.T) cell.T {
	switch {
	case is(term, kernel.Unquote):
		return list.New(kernel.List, pair.Cadr(term))
	case is(term, kernel.UnquoteSplicing):
		return pair.Cadr(term)
	case array.Is(term):
		return list.New(kernel.Array, concat(list.FromSlice(array.To(term).Elements)))
	case pair.Is(term):
		return list.New(kernel.List, concat(term))
	case sym.Is(term):
		return list.New(kernel.List, list.New(kernel.Quote, term))
	}

	return list.New(kernel.List, term)
}

func concat(l cell.T) cell.T {
	return list.Prepend(list.Map(l, element), kernel.Concat)
}

func is(term cell.T, head *sym.T) bool {
	return pair.Is(term) && term != pair.Null && pair.Car(term) == head && list.Length(term) == 2
}

func unquoted(term cell.T) bool {
	return is(term, kernel.Unquote) || is(term, kernel.UnquoteSplicing)
}
