// Released under an MIT license. See LICENSE.

package commands

import (
	"errors"
	"fmt"

	"github.com/simple-lang/simple/internal/common/validate"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/interface/literal"
	"github.com/simple-lang/simple/internal/type/array"
	"github.com/simple-lang/simple/internal/type/boolean"
	"github.com/simple-lang/simple/internal/type/integer"
	"github.com/simple-lang/simple/internal/type/list"
	"github.com/simple-lang/simple/internal/type/nothing"
	"github.com/simple-lang/simple/internal/type/pair"
)

// ErrNotASequence is raised when a list or array was expected.
var ErrNotASequence = errors.New("not a sequence")

// Lists returns the list and array functions. Functions that accept a
// sequence take a list, an array or #nil.
func Lists(h Host) map[string]Function {
	return map[string]Function{
		"->array":    toArray,
		"->list":     toList,
		"apply":      apply(h),
		"array":      makeArray,
		"array?":     is(array.Is),
		"butlast":    butlast,
		"concat":     concat,
		"cons":       cons,
		"empty?":     empty,
		"first":      first,
		"for-each":   forEach(h),
		"interleave": interleave,
		"last":       last,
		"length":     length,
		"list":       makeList,
		"list?":      is(pair.Is),
		"map":        mapList(h),
		"partition":  partition,
		"rest":       rest,
		"reverse":    reverse,
		"zip":        zip,
	}
}

func apply(h Host) Function {
	return func(args ...cell.T) cell.T {
		v, args := validate.Variadic(args, 2, 1)

		n := len(args) - 1
		spread := append(append([]cell.T{}, args[:n]...), elements(args[n])...)

		return h.Apply(v[0], spread...)
	}
}

func butlast(args ...cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return list.Butlast(sequence(v[0]))
}

func concat(args ...cell.T) cell.T {
	lists := make([]cell.T, len(args))
	for i, c := range args {
		lists[i] = sequence(c)
	}

	return list.Concat(lists...)
}

func cons(args ...cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	return pair.Cons(v[0], sequence(v[1]))
}

func empty(args ...cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(len(elements(v[0])) == 0)
}

func first(args ...cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	s := elements(v[0])
	if len(s) == 0 {
		return nothing.Nil
	}

	return s[0]
}

func forEach(h Host) Function {
	return func(args ...cell.T) cell.T {
		v := validate.Fixed(args, 2, 2)

		for _, c := range elements(v[1]) {
			h.Apply(v[0], c)
		}

		return nothing.Nil
	}
}

func interleave(args ...cell.T) cell.T {
	out := []cell.T{}

	for _, group := range columns(args) {
		out = append(out, group...)
	}

	return list.FromSlice(out)
}

func is(fn func(cell.T) bool) Function {
	return func(args ...cell.T) cell.T {
		v := validate.Fixed(args, 1, 1)

		return boolean.Bool(fn(v[0]))
	}
}

func last(args ...cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	s := elements(v[0])
	if len(s) == 0 {
		return nothing.Nil
	}

	return s[len(s)-1]
}

func length(args ...cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return integer.New(int64(len(elements(v[0]))))
}

func makeArray(args ...cell.T) cell.T {
	return array.New(append([]cell.T{}, args...)...)
}

func makeList(args ...cell.T) cell.T {
	return list.FromSlice(args)
}

func mapList(h Host) Function {
	return func(args ...cell.T) cell.T {
		v := validate.Fixed(args, 2, 2)

		s := elements(v[1])
		out := make([]cell.T, len(s))

		for i, c := range s {
			out[i] = h.Apply(v[0], c)
		}

		return list.FromSlice(out)
	}
}

func partition(args ...cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	n := integer.To(v[0]).Int()
	if n <= 0 {
		panic(fmt.Errorf("partition size must be positive, got %d", n))
	}

	return list.Partition(int(n), sequence(v[1]))
}

func rest(args ...cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	l := sequence(v[0])
	if l == pair.Null {
		return l
	}

	return pair.Cdr(l)
}

func reverse(args ...cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return list.Reverse(sequence(v[0]))
}

func toArray(args ...cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return array.New(elements(v[0])...)
}

func toList(args ...cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return sequence(v[0])
}

func zip(args ...cell.T) cell.T {
	groups := columns(args)

	out := make([]cell.T, len(groups))
	for i, group := range groups {
		out[i] = list.FromSlice(group)
	}

	return list.FromSlice(out)
}

// Helper functions.

// columns returns the i-th element of every sequence, for every i up
// to the length of the shortest sequence.
func columns(seqs []cell.T) [][]cell.T {
	if len(seqs) == 0 {
		return nil
	}

	rows := make([][]cell.T, len(seqs))
	shortest := -1

	for i, c := range seqs {
		rows[i] = elements(c)
		if shortest < 0 || len(rows[i]) < shortest {
			shortest = len(rows[i])
		}
	}

	out := make([][]cell.T, shortest)
	for i := range out {
		out[i] = make([]cell.T, len(rows))
		for j, row := range rows {
			out[i][j] = row[i]
		}
	}

	return out
}

// elements returns a new slice holding the elements of the sequence c.
func elements(c cell.T) []cell.T {
	switch {
	case pair.Is(c):
		return list.ToSlice(c)
	case array.Is(c):
		return append([]cell.T{}, array.To(c).Elements...)
	case c == nothing.Nil:
		return nil
	}

	panic(fmt.Errorf("%w: %s", ErrNotASequence, literal.String(c)))
}

// sequence returns the sequence c as a list. Lists are returned as is.
func sequence(c cell.T) cell.T {
	if pair.Is(c) {
		return c
	}

	return list.FromSlice(elements(c))
}
