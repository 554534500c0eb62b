// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/simple-lang/simple/internal/common"
	"github.com/simple-lang/simple/internal/common/validate"
	"github.com/simple-lang/simple/internal/engine/eval"
	"github.com/simple-lang/simple/internal/engine/expander"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/type/nothing"
)

// Meta returns the functions that expose the interpreter itself.
func Meta(h Host) map[string]Function {
	return map[string]Function{
		"eval":                 unary(h.Evaluate),
		"expander/expand":      unary(h.Expand),
		"expander/macroexpand": unary(h.Macroexpand),
		"expander/quasiquote":  unary(expander.Quasiquote),
		"load-file": func(args ...cell.T) cell.T {
			v := validate.Fixed(args, 1, 2)

			force := len(v) == 2 && eval.Truthy(v[1])
			if err := h.Load(common.String(v[0]), force); err != nil {
				panic(err)
			}

			return nothing.Nil
		},
	}
}

func unary(fn func(cell.T) (cell.T, error)) Function {
	return func(args ...cell.T) cell.T {
		v := validate.Fixed(args, 1, 1)

		c, err := fn(v[0])
		if err != nil {
			panic(err)
		}

		return c
	}
}
