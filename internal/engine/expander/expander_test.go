// Released under an MIT license. See LICENSE.

package expander

import (
	"errors"
	"testing"

	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/interface/literal"
	"github.com/simple-lang/simple/internal/reader"
	"github.com/simple-lang/simple/internal/type/env"
	"github.com/simple-lang/simple/internal/type/list"
	"github.com/simple-lang/simple/internal/type/macro"
	"github.com/simple-lang/simple/internal/type/pair"
	"github.com/simple-lang/simple/internal/type/sym"
)

// runtime is a stand-in for the evaluator.
type runtime map[*sym.T]*native

type native struct {
	fn func(term cell.T) cell.T
}

func (n *native) Equal(c cell.T) bool { return c == cell.T(n) }
func (n *native) Name() string        { return "native" }

func (r runtime) Apply(fn cell.T, args ...cell.T) cell.T {
	return fn.(*native).fn(args[0])
}

func (r runtime) Value(s *sym.T) (cell.T, bool) {
	n, ok := r[s]
	if !ok {
		return nil, false
	}

	return n, true
}

func read(t *testing.T, text string) cell.T {
	t.Helper()

	c, err := reader.New(text, "test").Read()
	if err != nil {
		t.Fatalf("reading %q: %v", text, err)
	}

	return c
}

func expand(t *testing.T, x *T, e *env.T, text string) cell.T {
	t.Helper()

	c, err := x.Expand(read(t, text), e)
	if err != nil {
		t.Fatalf("expanding %q: %v", text, err)
	}

	return c
}

func TestExpand(t *testing.T) {
	x := New(nil)
	e := Environment()

	for _, tc := range []struct {
		text     string
		expected string
	}{
		{"(let ((x 1) (y 2)) (+ x y))", "((fn* (x y) #nil (do (+ x y))) 1 2)"},
		{"(let (x 1 y 2) (+ x y))", "((fn* (x y) #nil (do (+ x y))) 1 2)"},
		{"(let () 1 2)", "((fn* () #nil (do 1 2)))"},
		{"(let ((x (let () 1))) x)", "((fn* (x) #nil (do x)) ((fn* () #nil (do 1))))"},
		{"(let* () 1)", "(do 1)"},
		{"(let* ((x 1) (y x)) y)", "((fn* (x) #nil ((fn* (y) #nil (do y)) x)) 1)"},
		{"(let* (x 1 y x) y)", "((fn* (x) #nil ((fn* (y) #nil (do y)) x)) 1)"},
		{"(fn (a b : more) a)", "(fn* (a b) more (do a))"},
		{"(fn () 1 2)", "(fn* () #nil (do 1 2))"},
		{"(define (f x) x)", "(define* f (fn* (x) #nil (do x)))"},
		{"(define (f : xs) xs)", "(define* f (fn* () xs (do xs)))"},
		{"(define y (let () 1))", "(define* y ((fn* () #nil (do 1))))"},
		{"(if a b)", "(if a b)"},
		{"(if (let () 1) b c)", "(if ((fn* () #nil (do 1))) b c)"},
		{"(do (let () 1) 2)", "(do ((fn* () #nil (do 1))) 2)"},
		{"(quote (let () 1))", "(quote (let () 1))"},
		{"(set! x (let () 1))", "(set! x ((fn* () #nil (do 1))))"},
		{"(set-macro! let)", "(set-macro! let)"},
		{"(throw (let () 1))", "(throw ((fn* () #nil (do 1))))"},
		{"[(let () 1) 2]", "[((fn* () #nil (do 1))) 2]"},
		{"(fn* (x) #nil x y)", "(fn* (x) #nil (do x y))"},
		{"(fn* (let) #nil (let 1 2))", "(fn* (let) #nil (let 1 2))"},
		{"(fn* () #nil)", "(fn* () #nil (do))"},
		{"()", "()"},
		{"a.b.c", `(aget (aget a "b") "c")`},
		{"(f x.y)", `(f (aget x "y"))`},
		{"'x.y", "(quote x.y)"},
		{"(a .. b)", "(a .. b)"},
	} {
		if got := literal.String(expand(t, x, e, tc.text)); got != tc.expected {
			t.Errorf("%s: expected %s, got %s", tc.text, tc.expected, got)
		}
	}
}

func TestQuasiquote(t *testing.T) {
	x := New(nil)
	e := Environment()

	for _, tc := range []struct {
		text     string
		expected string
	}{
		{"`(1 ~(+ 1 1) ~@(list 3 4))", "(concat (list 1) (list (+ 1 1)) (list 3 4))"},
		{"`(a (b) ())", "(concat (list (quote a)) (list (concat (list (quote b)))) (list (concat)))"},
		{"`(a [b ~c])", "(concat (list (quote a)) (->array (concat (list (quote b)) (list c))))"},
		{"`[1 ~@xs]", "(->array (concat (list 1) xs))"},
		{"`()", "(concat)"},
		{"`x", "(list (quote x))"},
		{"`5", "(list 5)"},
		{"`\"s\"", "(list \"s\")"},
		{"`~x", "(list x)"},
		{"`~@xs", "xs"},
	} {
		if got := literal.String(expand(t, x, e, tc.text)); got != tc.expected {
			t.Errorf("%s: expected %s, got %s", tc.text, tc.expected, got)
		}
	}
}

func TestIdempotent(t *testing.T) {
	x := New(nil)
	e := Environment()

	for _, text := range []string{
		"(let ((x 1) (y 2)) (+ x y))",
		"(let* ((x 1) (y x)) (if x y))",
		"(define (f a : b) (do a b))",
		"`(1 [~x] ~@y)",
		"(fn (a) a.b.c)",
		"(throw (fn () 1))",
	} {
		once := expand(t, x, e, text)

		twice, err := x.Expand(once, e)
		if err != nil {
			t.Fatalf("%s: %v", text, err)
		}

		if !twice.Equal(once) {
			t.Errorf("%s: expanded %s, then %s", text, literal.String(once), literal.String(twice))
		}
	}
}

func TestMacroexpandOnlyHead(t *testing.T) {
	x := New(nil)
	e := Environment()

	c, err := x.Macroexpand(read(t, "(f (let () 1))"), e)
	if err != nil {
		t.Fatal(err)
	}

	if got := literal.String(c); got != "(f (let () 1))" {
		t.Fatalf("unexpected expansion %s", got)
	}

	c, err = x.Macroexpand(read(t, "(let () (let () 1))"), e)
	if err != nil {
		t.Fatal(err)
	}

	if got := literal.String(c); got != "((fn* () #nil (do (let () 1))))" {
		t.Fatalf("unexpected expansion %s", got)
	}
}

func TestMacroMarker(t *testing.T) {
	swap := sym.New("swap")
	unless := sym.New("unless")

	rt := runtime{
		// (swap a b) => (b a)
		swap: &native{func(term cell.T) cell.T {
			return list.New(pair.Caddr(term), pair.Cadr(term))
		}},
		// (unless c body) => (if c #nil (let () body))
		unless: &native{func(term cell.T) cell.T {
			return list.New(
				sym.New("if"), pair.Cadr(term), sym.New("#nil"),
				list.New(sym.New("let"), pair.Null, pair.Caddr(term)),
			)
		}},
	}

	x := New(rt)
	e := Environment()

	e.Bind(swap, macro.New(swap))
	e.Bind(unless, macro.New(unless))

	if got := literal.String(expand(t, x, e, "(swap 1 f)")); got != "(f 1)" {
		t.Errorf("unexpected expansion %s", got)
	}

	if got := literal.String(expand(t, x, e, "(unless c (swap x g))")); got != "(if c #nil ((fn* () #nil (do (g x)))))" {
		t.Errorf("unexpected expansion %s", got)
	}

	// A parameter named like a macro is not a macro inside the function.
	if got := literal.String(expand(t, x, e, "(fn (swap) (swap 1 2))")); got != "(fn* (swap) #nil (do (swap 1 2)))" {
		t.Errorf("unexpected expansion %s", got)
	}

	missing := sym.New("missing")
	e.Bind(missing, macro.New(missing))

	if _, err := x.Expand(read(t, "(missing)"), e); !errors.Is(err, ErrUnboundMacro) {
		t.Errorf("expected %v, got %v", ErrUnboundMacro, err)
	}
}

func TestSourceKept(t *testing.T) {
	x := New(nil)
	e := Environment()

	c := expand(t, x, e, "\n(let ((x 1)) (f x))")

	src := pair.Source(c)
	if src == nil || src.Line != 2 {
		t.Fatalf("expected a source on line 2, got %v", src)
	}

	call := pair.Cadr(pair.Caddr(pair.Cdr(pair.Car(c))))

	src = pair.Source(call)
	if src == nil || src.Char != 14 {
		t.Fatalf("expected the call to keep its source, got %v", src)
	}
}

func TestMalformed(t *testing.T) {
	x := New(nil)
	e := Environment()

	for _, text := range []string{
		"(let 5)",
		"(let)",
		"(let ((x)) x)",
		"(let ((1 2)) 3)",
		"(fn (a :) a)",
		"(fn (a : b c) a)",
		"(fn x x)",
		"(define)",
		"(define x)",
		"(if 1)",
		"(if 1 2 3 4)",
		"(quote)",
		"(set! 1 2)",
		"(fn* x #nil 1)",
	} {
		if _, err := x.Expand(read(t, text), e); !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected %v, got %v", text, ErrMalformed, err)
		}
	}
}

func TestInvalidSpecialForm(t *testing.T) {
	x := New(nil)
	e := Environment()

	bogus := sym.New("bogus")
	e.Bind(bogus, &Form{Symbol: bogus})

	if _, err := x.Expand(read(t, "(bogus 1)"), e); !errors.Is(err, ErrInvalidSpecialForm) {
		t.Fatalf("expected %v, got %v", ErrInvalidSpecialForm, err)
	}
}
