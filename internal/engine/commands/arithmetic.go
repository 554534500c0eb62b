// Released under an MIT license. See LICENSE.

package commands

import (
	"errors"
	"fmt"

	"github.com/simple-lang/simple/internal/common/validate"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/interface/literal"
	"github.com/simple-lang/simple/internal/type/float"
	"github.com/simple-lang/simple/internal/type/integer"
)

// Arithmetic errors.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrNotANumber     = errors.New("not a number")
)

// Arithmetic returns the arithmetic functions. Results are integers
// unless an argument is a float.
func Arithmetic() map[string]Function {
	return map[string]Function{
		"+":   add,
		"-":   sub,
		"*":   mul,
		"/":   div,
		"mod": mod,
	}
}

type operator struct {
	f func(a, b float64) float64
	i func(a, b int64) int64
}

func add(args ...cell.T) cell.T {
	return fold(integer.New(0), args, operator{
		f: func(a, b float64) float64 { return a + b },
		i: func(a, b int64) int64 { return a + b },
	})
}

func div(args ...cell.T) cell.T {
	v, args := validate.Variadic(args, 1, 1)
	if len(args) == 0 {
		args = v
		v = []cell.T{integer.New(1)}
	}

	return fold(v[0], args, operator{
		f: func(a, b float64) float64 { return a / b },
		i: func(a, b int64) int64 {
			if b == 0 {
				panic(ErrDivisionByZero)
			}

			return a / b
		},
	})
}

func mod(args ...cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)
	for _, c := range v {
		if !integer.Is(c) {
			panic(fmt.Errorf("%w: %s", ErrNotANumber, literal.String(c)))
		}
	}

	dividend := integer.To(v[0]).Int()

	divisor := integer.To(v[1]).Int()
	if divisor == 0 {
		panic(ErrDivisionByZero)
	}

	return integer.New(dividend % divisor)
}

func mul(args ...cell.T) cell.T {
	return fold(integer.New(1), args, operator{
		f: func(a, b float64) float64 { return a * b },
		i: func(a, b int64) int64 { return a * b },
	})
}

func sub(args ...cell.T) cell.T {
	v, args := validate.Variadic(args, 1, 1)
	if len(args) == 0 {
		args = v
		v = []cell.T{integer.New(0)}
	}

	return fold(v[0], args, operator{
		f: func(a, b float64) float64 { return a - b },
		i: func(a, b int64) int64 { return a - b },
	})
}

// Helper functions.

func fold(acc cell.T, args []cell.T, op operator) cell.T {
	number(acc)

	for _, c := range args {
		number(c)

		if float.Is(acc) || float.Is(c) {
			acc = float.New(op.f(toFloat(acc), toFloat(c)))
		} else {
			acc = integer.New(op.i(integer.To(acc).Int(), integer.To(c).Int()))
		}
	}

	return acc
}

func number(c cell.T) {
	if !integer.Is(c) && !float.Is(c) {
		panic(fmt.Errorf("%w: %s", ErrNotANumber, literal.String(c)))
	}
}

func toFloat(c cell.T) float64 {
	if i, ok := c.(*integer.T); ok {
		return float64(i.Int())
	}

	return float.To(c).Float()
}
