// Released under an MIT license. See LICENSE.

package engine

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simple-lang/simple/internal/engine/commands"
	"github.com/simple-lang/simple/internal/engine/eval"
	"github.com/simple-lang/simple/internal/engine/expander"
	"github.com/simple-lang/simple/internal/interface/literal"
	"github.com/simple-lang/simple/internal/printer"
	"github.com/simple-lang/simple/internal/reader"
)

func engine(t *testing.T) (*T, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}

	e, err := New(printer.New(out, &bytes.Buffer{}))
	if err != nil {
		t.Fatalf("starting: %v", err)
	}

	return e, out
}

func run(t *testing.T, e *T, text string) string {
	t.Helper()

	c, err := e.Run(text, "test")
	if err != nil {
		t.Fatalf("%s: %v", text, err)
	}

	return literal.String(c)
}

func TestPrograms(t *testing.T) {
	for _, tc := range []struct {
		text     string
		expected string
	}{
		{"(let ((x 1) (y 2)) (+ x y))", "3"},
		{"(let (x 1 y 2) (* x y))", "2"},
		{"(let* ((x 1) (y (+ x 1))) y)", "2"},
		{"`(1 ~(+ 1 1) ~@(list 3 4))", "(1 2 3 4)"},
		{"(define xs [2 3]) `(1 ~@xs [~(first xs)])", "(1 2 3 2)"},
		{"`(1 [2 3])", "(1 2 3)"},
		{"`foo", "(foo)"},
		{"`5", "(5)"},
		{"`[a ~(+ 1 2)]", "[a 3]"},
		{"(define (f a : more) (list a more)) (f 1 2 3)", "(1 (2 3))"},
		{"(define (fact n) (if (<= n 1) 1 (* n (fact (dec n))))) (fact 10)", "3628800"},
		{"(define x 1) (define (g) x) (let ((x 2)) (g))", "1"},
		{"(define x 1) (set! x (+ x 1)) x", "2"},
		{"(when #t 1 2)", "2"},
		{"(when #f 1)", "#nil"},
		{"(unless #f 3)", "3"},
		{"(and 1 2 3)", "3"},
		{"(and 1 #f 3)", "#f"},
		{"(and)", "#t"},
		{"(or #f #nil 4)", "4"},
		{"(or)", "#f"},
		{"(define v 5) (or #f v)", "5"},
		{"(cond #f 1 (== 1 1) 2 :else 3)", "2"},
		{"(cond #f 1)", "#nil"},
		{"(map inc '(1 2 3))", "(2 3 4)"},
		{"(map (fn (x) (* x x)) [1 2 3])", "(1 4 9)"},
		{"(apply + 1 2 '(3 4))", "10"},
		{"(zip '(1 2 3) '[a b])", "((1 a) (2 b))"},
		{"(interleave '(1 2) '(a b))", "(1 a 2 b)"},
		{"(partition 2 '(1 2 3))", "((1 2) (3))"},
		{"(reverse [1 2 3])", "(3 2 1)"},
		{"(concat '(1) [2] #nil '(3))", "(1 2 3)"},
		{"(->array '(1 2))", "[1 2]"},
		{"(length [1 2 3])", "3"},
		{"(+ 1 2.5)", "3.5"},
		{"(/ 7 2)", "3"},
		{"(/ 7.0 2)", "3.5"},
		{"(mod 7 3)", "1"},
		{"(- 5)", "-5"},
		{"(< 1 2 3)", "#t"},
		{"(>= 3 3 4)", "#f"},
		{`(str "a" 1 :k 'b)`, `"a1:kb"`},
		{`(str/join ", " [1 "b"])`, `"1, b"`},
		{`(str/match "*.simple" "boot.simple")`, "#t"},
		{"(= '(1 [2]) '(1 [2]))", "#t"},
		{"(== '(1) '(1))", "#f"},
		{"(== 1 1)", "#t"},
		{"(define d (dict :a 1 \"b\" 2)) (list (aget d :a) d.b (aget d :c))", "(1 2 #nil)"},
		{"(define a [1 2]) (aset a 0 5) a", "[5 2]"},
		{"(define d (dict)) (aset d \"x\" (dict \"y\" 7)) d.x.y", "7"},
		{"(symbol? (gensym \"t\"))", "#t"},
		{"(keyword? (keyword \"a\"))", "#t"},
		{"(not #nil)", "#t"},
		{"(define (k) 1) k", "#<fn k>"},
		{"(show \"a\" 'b)", `"\"a\" b"`},
		{"(prstr \"a\" 'b)", `"\"a\" b"`},
		{"(printstr \"a\" 'b 1)", `"a b 1"`},
		{"(printstr)", `""`},
		{"(with-output-string (fn () (print \"hi\") (prn 1)))", `"hi1\n"`},
		{"(eval '(+ 1 2))", "3"},
		{"(expander/expand '(let () 1))", "((fn* () #nil (do 1)))"},
		{"(expander/macroexpand '(when a b))", "(if a (do b))"},
		{"(expander/quasiquote '(a ~b))", "(concat (list (quote a)) (list b))"},
	} {
		e, _ := engine(t)

		if got := run(t, e, tc.text); got != tc.expected {
			t.Errorf("%s: expected %s, got %s", tc.text, tc.expected, got)
		}
	}
}

func TestUserMacro(t *testing.T) {
	e, _ := engine(t)

	run(t, e, "(define (swap form env) `(~(first (rest (rest form))) ~(first (rest form))))")
	run(t, e, "(set-macro! swap)")

	if got := run(t, e, "(swap 2 inc)"); got != "3" {
		t.Fatalf("expected 3, got %s", got)
	}

	// A parameter shadows the macro inside its function.
	if got := run(t, e, "((fn (swap) (swap 4)) inc)"); got != "5" {
		t.Fatalf("expected 5, got %s", got)
	}
}

func TestIdempotentExpansion(t *testing.T) {
	e, _ := engine(t)

	for _, text := range []string{
		"(let ((x 1) (y 2)) (or x y))",
		"(cond a 1 :else (when b 2))",
		"(define (f : xs) `(~@xs ~(and xs 1)))",
	} {
		term, err := reader.New(text, "test").Read()
		if err != nil {
			t.Fatal(err)
		}

		once, err := e.Expand(term)
		if err != nil {
			t.Fatal(err)
		}

		twice, err := e.Expand(once)
		if err != nil {
			t.Fatal(err)
		}

		if !twice.Equal(once) {
			t.Errorf("%s: expanded %s, then %s", text, literal.String(once), literal.String(twice))
		}
	}
}

func TestOutput(t *testing.T) {
	e, out := engine(t)

	run(t, e, `(prn "a" 1) (println "a" 1) (pr :k) (print "!")`)

	if got, expected := out.String(), "\"a\" 1\na 1\n:k!"; got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct {
		text     string
		expected error
	}{
		{"nope", eval.ErrUnboundSymbol},
		{"(set! nope 1)", eval.ErrUnboundAssignment},
		{"(1 2 3)", eval.ErrNotCallable},
		{"((fn (a b) a) 1)", eval.ErrArityShortfall},
		{"(let 5)", expander.ErrMalformed},
		{"(mod 1 0)", commands.ErrDivisionByZero},
		{"(mod 1.5 1)", commands.ErrNotANumber},
	} {
		e, _ := engine(t)

		if _, err := e.Run(tc.text, "test"); !errors.Is(err, tc.expected) {
			t.Errorf("%s: expected %v, got %v", tc.text, tc.expected, err)
		}
	}

	e, _ := engine(t)

	_, err := e.Run("(throw (list 1 2))", "test")

	var thrown *eval.Thrown
	if !errors.As(err, &thrown) || literal.String(thrown.Payload) != "(1 2)" {
		t.Fatalf("expected (1 2) to be thrown, got %v", err)
	}
}

func TestUnlocatedErrors(t *testing.T) {
	for _, tc := range []struct {
		text     string
		expected string
	}{
		{"nope", "test:1:1: unbound symbol: nope"},
		{"\n  a.b", "test:2:3: unbound symbol: a"},
	} {
		e, _ := engine(t)

		_, err := e.Run(tc.text, "test")
		if err == nil {
			t.Fatalf("%q: expected an error", tc.text)
		}

		if got := err.Error(); got != tc.expected {
			t.Errorf("%q: expected %q, got %q", tc.text, tc.expected, got)
		}
	}
}

func TestFailureKeepsEnvironment(t *testing.T) {
	e, _ := engine(t)

	run(t, e, "(define x 1)")

	if _, err := e.Run("(define x (nope))", "test"); err == nil {
		t.Fatal("expected an error")
	}

	if got := run(t, e, "x"); got != "1" {
		t.Fatalf("expected x to still be 1, got %s", got)
	}
}

func TestTailCalls(t *testing.T) {
	e, _ := engine(t)

	got := run(t, e, `
		(define (count n) (if (== n 0) 'done (count (- n 1))))
		(count 1000000)
	`)
	if got != "done" {
		t.Fatalf("expected done, got %s", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	write := func(name, text string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	write("a.simple", "(define n (+ n 1))")
	write("b.simple", "(define m 10)")

	e, _ := engine(t)

	run(t, e, "(define n 0)")

	pattern := filepath.Join(dir, "*.simple")
	if err := e.Load(pattern, false); err != nil {
		t.Fatal(err)
	}

	if err := e.Load(pattern, false); err != nil {
		t.Fatal(err)
	}

	if got := run(t, e, "(list n m)"); got != "(1 10)" {
		t.Fatalf("expected files to load once, got %s", got)
	}

	run(t, e, `(load-file "`+filepath.Join(dir, "a.simple")+`" #t)`)

	if got := run(t, e, "n"); got != "2" {
		t.Fatalf("expected a forced reload, got %s", got)
	}

	err := e.Load(filepath.Join(dir, "*.missing"), false)
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected %v, got %v", ErrNoMatch, err)
	}
}

func TestLoadReportsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.simple")

	if err := os.WriteFile(path, []byte("\n(nope)"), 0o600); err != nil {
		t.Fatal(err)
	}

	e, _ := engine(t)

	err := e.Load(path, false)
	if err == nil || !strings.HasPrefix(err.Error(), path+":2:1: ") {
		t.Fatalf("expected the error to name %s:2:1, got %v", path, err)
	}
}

func TestComplete(t *testing.T) {
	e, _ := engine(t)

	found := false

	for _, name := range e.Complete("with-") {
		if name == "with-output-string" {
			found = true
		}
	}

	if !found {
		t.Fatal("expected with-output-string to be completed")
	}
}

func TestWithoutPrelude(t *testing.T) {
	e, err := New(printer.New(&bytes.Buffer{}, &bytes.Buffer{}), WithoutPrelude())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := e.Run("(when #t 1)", "test"); !errors.Is(err, eval.ErrUnboundSymbol) {
		t.Fatalf("expected when to be unbound, got %v", err)
	}
}
