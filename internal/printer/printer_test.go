// Released under an MIT license. See LICENSE.

package printer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/simple-lang/simple/internal/common/fault"
	"github.com/simple-lang/simple/internal/type/integer"
	"github.com/simple-lang/simple/internal/type/list"
	"github.com/simple-lang/simple/internal/type/loc"
	"github.com/simple-lang/simple/internal/type/str"
	"github.com/simple-lang/simple/internal/type/sym"
)

func TestOutput(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(out, &bytes.Buffer{})

	s := str.New("a b")
	l := list.New(sym.New("x"), integer.New(1))

	p.Pr(s, l)
	p.Print(s, l)
	p.Prn(s)
	p.Println(s)

	expected := `"a b" (x 1)a b (x 1)"a b"` + "\na b\n"
	if got := out.String(); got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestCapture(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(out, &bytes.Buffer{})

	captured := p.Capture(func() {
		p.Print(str.New("inner"))

		nested := p.Capture(func() {
			p.Print(str.New("nested"))
		})

		p.Print(str.New(nested))
	})

	p.Print(str.New("outer"))

	if captured != "innernested" {
		t.Fatalf("unexpected capture %q", captured)
	}

	if got := out.String(); got != "outer" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestDiagnostics(t *testing.T) {
	diagnostics := &bytes.Buffer{}
	p := New(&bytes.Buffer{}, diagnostics)

	p.Warn(str.New("w"))
	p.Notify(integer.New(2))

	err := fault.New(errors.New("boom"), sym.New("x"), &loc.T{Name: "f", Line: 2, Char: 3})
	p.Fault(err)

	expected := "\"w\"\n2\nf:2:3: boom: x\n"
	if got := diagnostics.String(); got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}
