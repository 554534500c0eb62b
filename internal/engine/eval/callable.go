// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/simple-lang/simple/internal/common"
	"github.com/simple-lang/simple/internal/common/fault"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/type/env"
	"github.com/simple-lang/simple/internal/type/list"
	"github.com/simple-lang/simple/internal/type/sym"
)

const (
	closureName = "closure"
	nativeName  = "native"
)

// Closure is a function created by evaluating fn*.
type Closure struct {
	Body   cell.T
	Env    *env.T
	Params []*sym.T
	Rest   *sym.T // Nil if there is no rest parameter.

	label string
}

// Equal returns true if c is the same closure.
func (c *Closure) Equal(o cell.T) bool {
	return o == cell.T(c)
}

// Label returns the name the closure was first defined with, if any.
func (c *Closure) Label() string {
	return c.label
}

// Literal returns the literal representation of the closure c.
func (c *Closure) Literal() string {
	if c.label == "" {
		return "#<fn>"
	}

	return "#<fn " + c.label + ">"
}

// Name returns the type name for the closure c.
func (c *Closure) Name() string {
	return closureName
}

// SetLabel names c for diagnostics. Only the first name sticks.
func (c *Closure) SetLabel(s string) {
	if c.label == "" {
		c.label = s
	}
}

// bind creates the frame for a call to c. Arguments beyond the
// positional parameters are collected by the rest parameter or ignored.
func (c *Closure) bind(args []cell.T, call cell.T) *env.T {
	if len(args) < len(c.Params) {
		fault.Raisef(
			ErrArityShortfall, call, nil,
			"%s expects %d argument(s), got %d", c.Literal(), len(c.Params), len(args),
		)
	}

	e := c.Env.Extend()

	for i, p := range c.Params {
		e.Bind(p, args[i])
	}

	if c.Rest != nil {
		e.Bind(c.Rest, list.FromSlice(args[len(c.Params):]))
	}

	return e
}

// Native is a function provided by the host.
type Native struct {
	Fn    func(args ...cell.T) cell.T
	Label string
}

// NewNative creates a host function named label.
func NewNative(label string, fn func(args ...cell.T) cell.T) *Native {
	return &Native{Fn: fn, Label: label}
}

// Equal returns true if c is the same native.
func (n *Native) Equal(c cell.T) bool {
	return c == cell.T(n)
}

// Literal returns the literal representation of the native n.
func (n *Native) Literal() string {
	return "#<native " + n.Label + ">"
}

// Name returns the type name for the native n.
func (n *Native) Name() string {
	return nativeName
}

// Thrown is the error raised by throw.
type Thrown struct {
	Payload cell.T
}

func (t *Thrown) Error() string {
	return "uncaught throw: " + common.String(t.Payload)
}
