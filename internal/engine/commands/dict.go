// Released under an MIT license. See LICENSE.

package commands

import (
	"errors"
	"fmt"

	"github.com/simple-lang/simple/internal/common/validate"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/interface/literal"
	"github.com/simple-lang/simple/internal/type/array"
	"github.com/simple-lang/simple/internal/type/dict"
	"github.com/simple-lang/simple/internal/type/integer"
	"github.com/simple-lang/simple/internal/type/list"
	"github.com/simple-lang/simple/internal/type/nothing"
	"github.com/simple-lang/simple/internal/type/pair"
)

// Errors raised by element access.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotIndexable    = errors.New("not indexable")
)

// Dicts returns the dict and element access functions.
func Dicts() map[string]Function {
	return map[string]Function{
		"aget": aget,
		"aset": aset,
		"dict": makeDict,
	}
}

// aget returns the value for a key of a dict or an index of a sequence.
// Missing keys and indices are #nil.
func aget(args ...cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	switch c := v[0].(type) {
	case *dict.T:
		if value, ok := c.Get(v[1]); ok {
			return value
		}

		return nothing.Nil
	case *array.T:
		i := integer.To(v[1]).Int()
		if i < 0 || i >= int64(len(c.Elements)) {
			return nothing.Nil
		}

		return c.Elements[i]
	}

	if pair.Is(v[0]) {
		i := integer.To(v[1]).Int()
		if i < 0 || i >= list.Length(v[0]) {
			return nothing.Nil
		}

		return pair.Car(list.Tail(v[0], i, nil))
	}

	panic(fmt.Errorf("%w: %s", ErrNotIndexable, literal.String(v[0])))
}

// aset changes a dict entry or an array element and returns the value.
func aset(args ...cell.T) cell.T {
	v := validate.Fixed(args, 3, 3)

	switch c := v[0].(type) {
	case *dict.T:
		c.Set(v[1], v[2])
	case *array.T:
		i := integer.To(v[1]).Int()
		if i < 0 || i >= int64(len(c.Elements)) {
			panic(fmt.Errorf("%w: %d", ErrIndexOutOfRange, i))
		}

		c.Elements[i] = v[2]
	default:
		panic(fmt.Errorf("%w: %s", ErrNotIndexable, literal.String(v[0])))
	}

	return v[2]
}

func makeDict(args ...cell.T) cell.T {
	if len(args)%2 != 0 {
		panic(fmt.Errorf("%w: dict expects keys and values, passed %d", validate.ErrArgumentCount, len(args)))
	}

	d := dict.New()
	for i := 0; i < len(args); i += 2 {
		d.Set(args[i], args[i+1])
	}

	return d
}
