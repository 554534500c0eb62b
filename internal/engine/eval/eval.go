// Released under an MIT license. See LICENSE.

// Package eval evaluates expanded simple terms.
//
// The evaluator is a loop over the current term and environment. Tail
// positions (the last form of a do, both branches of an if, and the body
// of a closure) replace the loop state instead of recursing, so tail
// calls run in constant host stack.
package eval

import (
	"errors"

	"github.com/simple-lang/simple/internal/common/fault"
	"github.com/simple-lang/simple/internal/engine/kernel"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/interface/literal"
	"github.com/simple-lang/simple/internal/type/array"
	"github.com/simple-lang/simple/internal/type/boolean"
	"github.com/simple-lang/simple/internal/type/env"
	"github.com/simple-lang/simple/internal/type/keyword"
	"github.com/simple-lang/simple/internal/type/list"
	"github.com/simple-lang/simple/internal/type/loc"
	"github.com/simple-lang/simple/internal/type/macro"
	"github.com/simple-lang/simple/internal/type/nothing"
	"github.com/simple-lang/simple/internal/type/pair"
	"github.com/simple-lang/simple/internal/type/sym"
)

// Evaluation errors.
var (
	ErrArityShortfall    = errors.New("too few arguments")
	ErrMalformed         = errors.New("malformed kernel form")
	ErrNotCallable       = errors.New("not callable")
	ErrUnboundAssignment = errors.New("assignment to unbound symbol")
	ErrUnboundSymbol     = errors.New("unbound symbol")
)

// T (eval) holds the state shared by every evaluation.
type T struct {
	globals *env.T
	macros  *env.T
	where   *loc.T // Innermost located form being evaluated.
}

type evaluator = T

// New creates an evaluator. Values is the global value environment.
// Macros is the process-wide syntactic environment that set-macro!
// writes to.
func New(values, macros *env.T) *T {
	return &T{globals: values, macros: macros}
}

// Globals returns the global value environment.
func (m *evaluator) Globals() *env.T {
	return m.globals
}

// Macros returns the syntactic environment written by set-macro!.
func (m *evaluator) Macros() *env.T {
	return m.macros
}

// Eval evaluates the expanded term in e.
func (m *evaluator) Eval(term cell.T, e *env.T) (cell.T, error) {
	return m.EvalAt(term, e, nil)
}

// EvalAt evaluates the expanded term in e. Failures in parts of term
// that carry no location of their own are reported at where. A nil
// where keeps the location of the enclosing evaluation.
func (m *evaluator) EvalAt(term cell.T, e *env.T, where *loc.T) (c cell.T, err error) {
	outer := m.where
	defer func() {
		m.where = outer
	}()

	defer fault.Recover(&err)

	if where != nil {
		m.where = where
	}

	return m.eval(term, e), nil
}

// Apply calls fn with args. Failures panic.
func (m *evaluator) Apply(fn cell.T, args ...cell.T) cell.T {
	switch f := fn.(type) {
	case *Native:
		return m.call(f, args, nil)
	case *Closure:
		return m.eval(f.Body, f.bind(args, nil))
	}

	m.raisef(ErrNotCallable, nil, "%s", literal.String(fn))

	return nil
}

// Value returns the global value bound to s.
func (m *evaluator) Value(s *sym.T) (cell.T, bool) {
	return m.globals.Get(s)
}

func (m *evaluator) eval(term cell.T, e *env.T) cell.T {
	outer := m.where
	c := m.loop(term, e)
	m.where = outer

	return c
}

//nolint:cyclop,funlen
func (m *evaluator) loop(term cell.T, e *env.T) cell.T {
	for {
		switch t := term.(type) {
		case *keyword.T:
			return t
		case *sym.T:
			v, ok := e.Get(t)
			if !ok {
				m.raise(ErrUnboundSymbol, t)
			}

			return v
		case *array.T:
			elements := make([]cell.T, len(t.Elements))
			for i, c := range t.Elements {
				elements[i] = m.eval(c, e)
			}

			return array.New(elements...)
		}

		if !pair.Is(term) || term == pair.Null {
			return term
		}

		if s := pair.Source(term); s != nil {
			m.where = s
		}

		switch pair.Car(term) {
		case kernel.DefineStar:
			s := m.symbol(m.operand(term, 0), term)

			v := m.eval(m.operand(term, 1), e)
			if c, ok := v.(*Closure); ok {
				c.SetLabel(s.String())
			}

			e.Bind(s, v)

			return v

		case kernel.Do:
			body := pair.Cdr(term)
			if body == pair.Null {
				return nothing.Nil
			}

			for ; pair.Cdr(body) != pair.Null; body = pair.Cdr(body) {
				m.eval(pair.Car(body), e)
			}

			term = pair.Car(body)

		case kernel.If:
			branches := pair.Cddr(term)
			if branches == pair.Null {
				m.raisef(ErrMalformed, term, "if expects a test and a branch")
			}

			if !Truthy(m.eval(m.operand(term, 0), e)) {
				branches = pair.Cdr(branches)
				if branches == pair.Null {
					return nothing.Nil
				}
			}

			term = pair.Car(branches)

		case kernel.FnStar:
			return m.closure(term, e)

		case kernel.Quote:
			return m.operand(term, 0)

		case kernel.SetBang:
			s := m.symbol(m.operand(term, 0), term)

			if !e.Set(s, m.eval(m.operand(term, 1), e)) {
				m.raisef(ErrUnboundAssignment, term, "%s", s)
			}

			return nothing.Void

		case kernel.SetMacro:
			s := m.symbol(m.operand(term, 0), term)

			m.macros.Bind(s, macro.New(s))

			return nothing.Nil

		case kernel.Throw:
			v := m.eval(m.operand(term, 0), e)

			panic(fault.New(&Thrown{Payload: v}, nil, m.source(term)))

		default:
			fn := m.eval(pair.Car(term), e)

			args := make([]cell.T, 0, list.Length(term)-1)
			for l := pair.Cdr(term); l != pair.Null; l = pair.Cdr(l) {
				args = append(args, m.eval(pair.Car(l), e))
			}

			switch f := fn.(type) {
			case *Native:
				return m.call(f, args, term)
			case *Closure:
				e = f.bind(args, term)
				term = f.Body
			default:
				m.raisef(ErrNotCallable, term, "%s", literal.String(fn))
			}
		}
	}
}

// call applies a host function. Host failures are reported at the call.
func (m *evaluator) call(f *Native, args []cell.T, term cell.T) cell.T {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		err := fault.From(r)

		var located *fault.T
		if !errors.As(err, &located) {
			err = fault.New(err, term, m.source(term))
		}

		panic(err)
	}()

	return f.Fn(args...)
}

func (m *evaluator) closure(term cell.T, e *env.T) *Closure {
	s := list.ToSlice(term)
	if len(s) != 4 {
		m.raisef(ErrMalformed, term, "fn* expects parameters, a rest parameter and a body")
	}

	if !pair.Is(s[1]) {
		m.raisef(ErrMalformed, term, "fn* parameters must be a list")
	}

	params := []*sym.T{}
	for _, p := range list.ToSlice(s[1]) {
		params = append(params, m.symbol(p, term))
	}

	var rest *sym.T
	if s[2] != nothing.Nil {
		rest = m.symbol(s[2], term)
	}

	return &Closure{
		Body:   s[3],
		Env:    e,
		Params: params,
		Rest:   rest,
	}
}

func (m *evaluator) operand(term cell.T, n int64) cell.T {
	if list.Length(term) <= n+1 {
		m.raisef(ErrMalformed, term, "%s expects more operands", pair.Car(term))
	}

	return pair.Car(list.Tail(term, n+1, nil))
}

func (m *evaluator) raise(err error, term cell.T) {
	fault.Raise(err, term, m.source(term))
}

func (m *evaluator) raisef(err error, term cell.T, format string, args ...interface{}) {
	fault.Raisef(err, term, m.source(term), format, args...)
}

func (m *evaluator) source(term cell.T) *loc.T {
	if s := pair.Source(term); s != nil {
		return s
	}

	return m.where
}

func (m *evaluator) symbol(c, term cell.T) *sym.T {
	s, ok := c.(*sym.T)
	if !ok {
		m.raisef(ErrMalformed, term, "expected a symbol, got %s", literal.String(c))
	}

	return s
}

// Truthy returns false for #nil, #void and #f. Every other value is true.
func Truthy(c cell.T) bool {
	return c != nothing.Nil && c != nothing.Void && c != boolean.False
}
