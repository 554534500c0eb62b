// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/simple-lang/simple/internal/common/validate"
	"github.com/simple-lang/simple/internal/engine/eval"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/interface/literal"
	"github.com/simple-lang/simple/internal/type/array"
	"github.com/simple-lang/simple/internal/type/boolean"
	"github.com/simple-lang/simple/internal/type/dict"
	"github.com/simple-lang/simple/internal/type/integer"
	"github.com/simple-lang/simple/internal/type/pair"
	"github.com/simple-lang/simple/internal/type/str"
)

// Relational returns the comparison functions.
func Relational() map[string]Function {
	return map[string]Function{
		"<":   ordered(func(n int) bool { return n < 0 }),
		"<=":  ordered(func(n int) bool { return n <= 0 }),
		">":   ordered(func(n int) bool { return n > 0 }),
		">=":  ordered(func(n int) bool { return n >= 0 }),
		"=":   equal,
		"==":  identical,
		"not": not,
	}
}

// compare returns -1, 0 or 1. Numbers compare with numbers and strings
// with strings.
func compare(a, b cell.T) int {
	if str.Is(a) && str.Is(b) {
		x, y := str.To(a).String(), str.To(b).String()

		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}

		return 0
	}

	number(a)
	number(b)

	if integer.Is(a) && integer.Is(b) {
		x, y := integer.To(a).Int(), integer.To(b).Int()

		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}

		return 0
	}

	x, y := toFloat(a), toFloat(b)

	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	case x == y:
		return 0
	}

	panic(fmt.Errorf("%w: cannot compare %s and %s", ErrNotANumber, literal.String(a), literal.String(b)))
}

func equal(args ...cell.T) cell.T {
	validate.Variadic(args, 1, 1)

	for i := 1; i < len(args); i++ {
		if !args[i-1].Equal(args[i]) {
			return boolean.False
		}
	}

	return boolean.True
}

// identical compares lists, arrays, dicts and functions by identity.
// Everything else is compared by value.
func identical(args ...cell.T) cell.T {
	validate.Variadic(args, 1, 1)

	for i := 1; i < len(args); i++ {
		a, b := args[i-1], args[i]

		if pair.Is(a) || array.Is(a) || dict.Is(a) {
			if a != b {
				return boolean.False
			}
		} else if !a.Equal(b) {
			return boolean.False
		}
	}

	return boolean.True
}

func not(args ...cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(!eval.Truthy(v[0]))
}

func ordered(ok func(int) bool) Function {
	return func(args ...cell.T) cell.T {
		validate.Variadic(args, 1, 1)

		for i := 1; i < len(args); i++ {
			if !ok(compare(args[i-1], args[i])) {
				return boolean.False
			}
		}

		return boolean.True
	}
}
