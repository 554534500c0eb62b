// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/simple-lang/simple/internal/common/validate"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/printer"
	"github.com/simple-lang/simple/internal/type/nothing"
	"github.com/simple-lang/simple/internal/type/str"
)

// text returns a function that returns what fn would write.
func text(fn func(...cell.T) string) Function {
	return func(args ...cell.T) cell.T {
		return str.New(fn(args...))
	}
}

// Output returns the functions that write to the printer p.
func Output(h Host, p *printer.T) map[string]Function {
	written := func(fn func(...cell.T)) Function {
		return func(args ...cell.T) cell.T {
			fn(args...)

			return nothing.Nil
		}
	}

	return map[string]Function{
		"notify":   written(p.Notify),
		"pr":       written(p.Pr),
		"print":    written(p.Print),
		"println":  written(p.Println),
		"prn":      written(p.Prn),
		"warn":     written(p.Warn),
		"printstr": text(printer.Display),
		"prstr":    text(printer.Show),
		"show":     text(printer.Show),
		"with-output-string": func(args ...cell.T) cell.T {
			v := validate.Fixed(args, 1, 1)

			return str.New(p.Capture(func() {
				h.Apply(v[0])
			}))
		},
	}
}
