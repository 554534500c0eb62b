// Released under an MIT license. See LICENSE.

// Package commands provides the host functions bound in simple's
// global environment.
package commands

import (
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/printer"
)

// Function is the signature shared by every host function.
type Function = func(args ...cell.T) cell.T

// Host is the interpreter as seen by the meta functions.
type Host interface {
	Apply(fn cell.T, args ...cell.T) cell.T
	Evaluate(term cell.T) (cell.T, error)
	Expand(term cell.T) (cell.T, error)
	Load(pattern string, force bool) error
	Macroexpand(term cell.T) (cell.T, error)
}

// Functions returns every host function by name.
func Functions(h Host, p *printer.T) map[string]Function {
	all := map[string]Function{}

	for _, group := range []map[string]Function{
		Arithmetic(),
		Dicts(),
		Lists(h),
		Meta(h),
		Output(h, p),
		Relational(),
		Strings(),
		Symbols(),
	} {
		for k, v := range group {
			all[k] = v
		}
	}

	return all
}
