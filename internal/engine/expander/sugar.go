// Released under an MIT license. See LICENSE.

package expander

import (
	"github.com/simple-lang/simple/internal/common/fault"
	"github.com/simple-lang/simple/internal/engine/kernel"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/type/env"
	"github.com/simple-lang/simple/internal/type/list"
	"github.com/simple-lang/simple/internal/type/nothing"
	"github.com/simple-lang/simple/internal/type/pair"
)

// (define (name params...) body...) => (define* name (fn* params rest (do body...)))
// (define name value) => (define* name value)
func define(x *T, term cell.T, e *env.T) cell.T {
	args := operands(term, 1)

	if head := args[0]; pair.Is(head) && head != pair.Null {
		name := symbol(pair.Car(head), term)
		params, rest := parameters(pair.Cdr(head), term)
		fn := located(term, kernel.FnStar, params, rest, sequence(args[1:]))

		return located(term, kernel.DefineStar, name, fn)
	}

	if len(args) != 2 {
		fault.Raisef(ErrMalformed, term, nil, "define expects a name and a value")
	}

	return located(term, kernel.DefineStar, symbol(args[0], term), x.macroexpand(args[1], e))
}

// (fn (params...) body...) => (fn* params rest (do body...))
func fn(_ *T, term cell.T, _ *env.T) cell.T {
	args := operands(term, 1)

	params, rest := parameters(args[0], term)

	return located(term, kernel.FnStar, params, rest, sequence(args[1:]))
}

// (let ((n v)...) body...) => ((fn* (n...) #nil (do body...)) v...)
func let(x *T, term cell.T, e *env.T) cell.T {
	args := operands(term, 1)

	names, values := bindings(args[0], term)
	for i, v := range values {
		values[i] = x.macroexpand(v, e)
	}

	fn := located(term, kernel.FnStar, list.FromSlice(names), nothing.Nil, sequence(args[1:]))

	return list.Locate(list.Prepend(list.FromSlice(values), fn), pair.Source(term))
}

// (let* () body...) => (do body...)
// (let* ((n v) more...) body...) => ((fn* (n) #nil (let* (more...) body...)) v)
func letStar(x *T, term cell.T, e *env.T) cell.T {
	args := operands(term, 1)

	names, values := bindings(args[0], term)
	if len(names) == 0 {
		return list.Locate(sequence(args[1:]), pair.Source(term))
	}

	more := make([]cell.T, 0, len(names)-1)
	for i := 1; i < len(names); i++ {
		more = append(more, list.New(names[i], values[i]))
	}

	inner := list.Prepend(list.FromSlice(args[1:]), kernel.LetStar, list.FromSlice(more))
	fn := located(term, kernel.FnStar, list.New(names[0]), nothing.Nil, inner)

	return located(term, fn, x.macroexpand(values[0], e))
}

func quasiquoteForm(_ *T, term cell.T, _ *env.T) cell.T {
	args := operands(term, 1)
	if len(args) != 1 {
		fault.Raisef(ErrMalformed, term, nil, "quasiquote expects 1 operand")
	}

	return quasiquote(args[0])
}

// Helper functions.

// bindings accepts both ((n1 v1) (n2 v2)...) and (n1 v1 n2 v2...).
func bindings(c, term cell.T) ([]cell.T, []cell.T) {
	if !pair.Is(c) {
		fault.Raisef(ErrMalformed, term, nil, "bindings must be a list")
	}

	groups := list.ToSlice(c)
	if len(groups) > 0 && !pair.Is(groups[0]) {
		groups = list.ToSlice(list.Partition(2, c))
	}

	names := make([]cell.T, len(groups))
	values := make([]cell.T, len(groups))

	for i, g := range groups {
		if !pair.Is(g) || list.Length(g) != 2 {
			fault.Raisef(ErrMalformed, term, nil, "each binding needs a name and a value")
		}

		names[i] = symbol(pair.Car(g), term)
		values[i] = pair.Cadr(g)
	}

	return names, values
}

func located(term cell.T, elements ...cell.T) cell.T {
	return list.Locate(list.New(elements...), pair.Source(term))
}

// operands returns the elements of term after its head, requiring at least n.
func operands(term cell.T, n int) []cell.T {
	args := list.ToSlice(pair.Cdr(term))
	if len(args) < n {
		fault.Raisef(ErrMalformed, term, nil, "%s expects at least %d operand(s)", pair.Car(term), n)
	}

	return args
}

// parameters splits a parameter list at the rest sentinel. Exactly one
// symbol must follow the sentinel. The rest parameter is #nil if absent.
func parameters(c, term cell.T) (cell.T, cell.T) {
	if !pair.Is(c) {
		fault.Raisef(ErrMalformed, term, nil, "parameters must be a list")
	}

	params := list.ToSlice(c)

	for i, p := range params {
		if symbol(p, term) != kernel.Rest {
			continue
		}

		if len(params) != i+2 {
			fault.Raisef(ErrMalformed, term, nil, "expected one rest parameter after %s", kernel.Rest)
		}

		return list.FromSlice(params[:i]), symbol(params[i+1], term)
	}

	return c, nothing.Nil
}

func sequence(terms []cell.T) cell.T {
	return list.Prepend(list.FromSlice(terms), kernel.Do)
}
