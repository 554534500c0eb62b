// Released under an MIT license. See LICENSE.

// Package expander rewrites simple terms into kernel terms.
//
// A syntactic environment maps symbols to their compile-time meaning:
// a *Form for each kernel special form, a *Transformer for built-in
// sugar, or a *macro.T marker naming a runtime binding that should be
// applied as a transformer. Any other binding, including a parameter
// bound to itself, is not syntax.
package expander

import (
	"errors"
	"regexp"
	"strings"

	"github.com/simple-lang/simple/internal/common/fault"
	"github.com/simple-lang/simple/internal/engine/kernel"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/type/array"
	"github.com/simple-lang/simple/internal/type/env"
	"github.com/simple-lang/simple/internal/type/list"
	"github.com/simple-lang/simple/internal/type/macro"
	"github.com/simple-lang/simple/internal/type/pair"
	"github.com/simple-lang/simple/internal/type/str"
	"github.com/simple-lang/simple/internal/type/sym"
)

// Expansion errors.
var (
	ErrInvalidSpecialForm = errors.New("invalid special form")
	ErrMalformed          = errors.New("malformed expression")
	ErrUnboundMacro       = errors.New("macro has no transformer")
)

//nolint:gochecknoglobals
var dotted = regexp.MustCompile(`^[^.]+(\.[^.]+)+$`)

// Runtime gives the expander access to the evaluator's value environment.
// Apply panics with an error if the call fails.
type Runtime interface {
	Apply(fn cell.T, args ...cell.T) cell.T
	Value(s *sym.T) (cell.T, bool)
}

// T (expander) expands terms. Expansions that reach a macro marker call
// back into the runtime.
type T struct {
	runtime Runtime
}

type expander = T

// New creates an expander. The runtime may be nil if no macros will be used.
func New(rt Runtime) *T {
	return &T{runtime: rt}
}

// Environment creates a global syntactic environment holding the kernel
// special forms and the built-in transformers.
func Environment() *env.T {
	e := env.New(nil)

	for _, s := range kernel.Forms() {
		e.Bind(s, &Form{Symbol: s})
	}

	for s, fn := range transformers() {
		e.Bind(s, &Transformer{Symbol: s, fn: fn})
	}

	return e
}

// Expand fully expands term in the syntactic environment e.
func (x *expander) Expand(term cell.T, e *env.T) (c cell.T, err error) {
	defer fault.Recover(&err)

	return x.expand(term, e), nil
}

// Macroexpand expands term only while its head names a transformer or macro.
func (x *expander) Macroexpand(term cell.T, e *env.T) (c cell.T, err error) {
	defer fault.Recover(&err)

	return x.macroexpand(term, e), nil
}

// Quasiquote returns the code that reconstructs term when evaluated.
func Quasiquote(term cell.T) (c cell.T, err error) {
	defer fault.Recover(&err)

	return quasiquote(term), nil
}

func (x *expander) expand(term cell.T, e *env.T) cell.T {
	term = x.macroexpand(term, e)

	if a, ok := term.(*array.T); ok {
		elements := make([]cell.T, len(a.Elements))
		for i, c := range a.Elements {
			elements[i] = x.expand(c, e)
		}

		return array.New(elements...)
	}

	if s, ok := term.(*sym.T); ok && dotted.MatchString(s.String()) {
		return accessor(s)
	}

	if !pair.Is(term) || term == pair.Null {
		return term
	}

	if f, ok := denotation(term, e).(*Form); ok {
		return list.Locate(x.form(f, term, e), pair.Source(term))
	}

	return list.Locate(x.each(term, e), pair.Source(term))
}

func (x *expander) each(l cell.T, e *env.T) cell.T {
	return list.Map(l, func(c cell.T) cell.T {
		return x.expand(c, e)
	})
}

func (x *expander) form(f *Form, term cell.T, e *env.T) cell.T {
	args := list.ToSlice(pair.Cdr(term))

	switch f.Symbol {
	case kernel.Do:
		return pair.Cons(kernel.Do, x.each(pair.Cdr(term), e))

	case kernel.If:
		if len(args) < 2 || len(args) > 3 {
			fault.Raisef(ErrMalformed, term, nil, "if expects 2 or 3 operands")
		}

		for i, c := range args {
			args[i] = x.expand(c, e)
		}

		return list.Prepend(list.FromSlice(args), kernel.If)

	case kernel.FnStar:
		if len(args) < 2 {
			fault.Raisef(ErrMalformed, term, nil, "fn* expects parameters and a rest parameter")
		}

		if !pair.Is(args[0]) {
			fault.Raisef(ErrMalformed, term, nil, "fn* parameters must be a list")
		}

		inner := e.Extend()
		for _, p := range list.ToSlice(args[0]) {
			inner.Bind(symbol(p, term), p)
		}

		if s, ok := args[1].(*sym.T); ok {
			inner.Bind(s, s)
		}

		return list.New(kernel.FnStar, args[0], args[1], x.expand(body(args[2:]), inner))

	case kernel.Quote, kernel.SetMacro:
		if len(args) != 1 {
			fault.Raisef(ErrMalformed, term, nil, "%s expects 1 operand", f.Symbol)
		}

		return term

	case kernel.Throw:
		if len(args) != 1 {
			fault.Raisef(ErrMalformed, term, nil, "throw expects 1 operand")
		}

		return list.New(kernel.Throw, x.expand(args[0], e))

	case kernel.DefineStar, kernel.SetBang:
		if len(args) != 2 {
			fault.Raisef(ErrMalformed, term, nil, "%s expects a name and a value", f.Symbol)
		}

		return list.New(f.Symbol, symbol(args[0], term), x.expand(args[1], e))
	}

	fault.Raisef(ErrInvalidSpecialForm, term, nil, "%s", f.Symbol)

	return nil
}

func (x *expander) macroexpand(term cell.T, e *env.T) cell.T {
	for {
		switch d := denotation(term, e).(type) {
		case *Transformer:
			term = d.fn(x, term, e)

		case *macro.T:
			if x.runtime == nil {
				fault.Raise(ErrUnboundMacro, term, nil)
			}

			fn, ok := x.runtime.Value(d.Symbol)
			if !ok {
				fault.Raise(ErrUnboundMacro, term, nil)
			}

			term = x.runtime.Apply(fn, term, e)

		default:
			return term
		}
	}
}

// Helper functions.

func accessor(s *sym.T) cell.T {
	segments := strings.Split(s.String(), ".")

	var c cell.T = sym.New(segments[0])
	for _, field := range segments[1:] {
		c = list.New(kernel.Aget, c, str.New(field))
	}

	return c
}

// body returns a single term for a sequence of body terms.
func body(terms []cell.T) cell.T {
	if len(terms) == 1 {
		return terms[0]
	}

	return list.Prepend(list.FromSlice(terms), kernel.Do)
}

func denotation(term cell.T, e *env.T) cell.T {
	if !pair.Is(term) || term == pair.Null {
		return nil
	}

	s, ok := pair.Car(term).(*sym.T)
	if !ok {
		return nil
	}

	d, _ := e.Get(s)

	return d
}

func symbol(c, term cell.T) *sym.T {
	s, ok := c.(*sym.T)
	if !ok {
		fault.Raisef(ErrMalformed, term, nil, "expected a symbol")
	}

	return s
}
