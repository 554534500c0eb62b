// Released under an MIT license. See LICENSE.

// Package kernel names the symbols shared by the reader, expander and evaluator.
package kernel

import (
	"github.com/simple-lang/simple/internal/type/sym"
)

// Kernel special forms. These are the only list heads the evaluator
// treats specially once expansion is complete.
//
//nolint:gochecknoglobals
var (
	DefineStar = sym.New("define*")
	Do         = sym.New("do")
	FnStar     = sym.New("fn*")
	If         = sym.New("if")
	Quote      = sym.New("quote")
	SetBang    = sym.New("set!")
	SetMacro   = sym.New("set-macro!")
	Throw      = sym.New("throw")
)

// Surface sugar rewritten by the expander.
//
//nolint:gochecknoglobals
var (
	Define          = sym.New("define")
	Fn              = sym.New("fn")
	Let             = sym.New("let")
	LetStar         = sym.New("let*")
	Quasiquote      = sym.New("quasiquote")
	Unquote         = sym.New("unquote")
	UnquoteSplicing = sym.New("unquote-splicing")
)

// Host bindings that expanded code refers to.
//
//nolint:gochecknoglobals
var (
	Aget   = sym.New("aget")
	Array  = sym.New("->array")
	Concat = sym.New("concat")
	List   = sym.New("list")
	Rest   = sym.New(":")
)

// Forms returns the kernel special forms.
func Forms() []*sym.T {
	return []*sym.T{
		DefineStar, Do, FnStar, If, Quote, SetBang, SetMacro, Throw,
	}
}
