// Released under an MIT license. See LICENSE.

package expander

import (
	"github.com/simple-lang/simple/internal/engine/kernel"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/type/env"
	"github.com/simple-lang/simple/internal/type/sym"
)

const (
	formName        = "special-form"
	transformerName = "transformer"
)

// Form is the denotation of a kernel special form.
type Form struct {
	Symbol *sym.T
}

// Equal returns true if c is the same special form.
func (f *Form) Equal(c cell.T) bool {
	o, ok := c.(*Form)

	return ok && o.Symbol == f.Symbol
}

// Literal returns the literal representation of the form f.
func (f *Form) Literal() string {
	return "#<" + formName + " " + f.Symbol.String() + ">"
}

// Name returns the type name for the form f.
func (f *Form) Name() string {
	return formName
}

// Transformer is the denotation of built-in syntax. Its function
// rewrites a term headed by Symbol into a simpler term.
type Transformer struct {
	Symbol *sym.T

	fn rewrite
}

type rewrite func(x *T, term cell.T, e *env.T) cell.T

// Equal returns true if c is the same transformer.
func (t *Transformer) Equal(c cell.T) bool {
	o, ok := c.(*Transformer)

	return ok && o.Symbol == t.Symbol
}

// Literal returns the literal representation of the transformer t.
func (t *Transformer) Literal() string {
	return "#<" + transformerName + " " + t.Symbol.String() + ">"
}

// Name returns the type name for the transformer t.
func (t *Transformer) Name() string {
	return transformerName
}

func transformers() map[*sym.T]rewrite {
	return map[*sym.T]rewrite{
		kernel.Define:     define,
		kernel.Fn:         fn,
		kernel.Let:        let,
		kernel.LetStar:    letStar,
		kernel.Quasiquote: quasiquoteForm,
	}
}
