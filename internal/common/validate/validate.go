// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to host functions.
package validate

import (
	"errors"
	"fmt"

	"github.com/simple-lang/simple/internal/interface/cell"
)

// ErrArgumentCount is raised when a host function is passed too few or too many arguments.
var ErrArgumentCount = errors.New("wrong number of arguments")

// Variadic splits args into at least min and at most max leading
// arguments and whatever follows them.
func Variadic(args []cell.T, min, max int) ([]cell.T, []cell.T) {
	if len(args) < min {
		panic(fmt.Errorf("%w: expected %s, passed %d", ErrArgumentCount, Count(min, "argument", "s"), len(args)))
	}

	if len(args) > max {
		return args[:max], args[max:]
	}

	return args, nil
}

// Fixed checks that there are between min and max args.
func Fixed(args []cell.T, min, max int) []cell.T {
	expected, rest := Variadic(args, min, max)
	if len(rest) != 0 {
		panic(fmt.Errorf("%w: expected %s, passed %d", ErrArgumentCount, Count(max, "argument", "s"), len(args)))
	}

	return expected
}

// Count returns n followed by label, pluralized with p unless n is 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
