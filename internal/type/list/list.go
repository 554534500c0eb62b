// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
//
// None of these functions modify their arguments. Results that end with
// an existing list share it rather than copying it.
package list

import (
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/type/loc"
	"github.com/simple-lang/simple/internal/type/pair"
)

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.T) cell.T {
	return FromSlice(elements)
}

// FromSlice creates a new list from the slice s.
func FromSlice(s []cell.T) cell.T {
	l := pair.Null

	for i := len(s) - 1; i >= 0; i-- {
		l = pair.Cons(s[i], l)
	}

	return l
}

// ToSlice returns the elements of list as a slice.
// A non-pair value where a pair is expected will cause a panic.
func ToSlice(list cell.T) []cell.T {
	s := make([]cell.T, 0, Length(list))

	for ; list != pair.Null; list = pair.Cdr(list) {
		s = append(s, pair.Car(list))
	}

	return s
}

// Concat creates a new list with every element from every list in lists.
// The last list is shared, not copied.
func Concat(lists ...cell.T) cell.T {
	if len(lists) == 0 {
		return pair.Null
	}

	last := len(lists) - 1
	prefix := []cell.T{}

	for _, l := range lists[:last] {
		for ; l != pair.Null; l = pair.Cdr(l) {
			prefix = append(prefix, pair.Car(l))
		}
	}

	return Prepend(lists[last], prefix...)
}

// Prepend conses each element in elements, in order, onto the front of list.
func Prepend(list cell.T, elements ...cell.T) cell.T {
	for i := len(elements) - 1; i >= 0; i-- {
		list = pair.Cons(elements[i], list)
	}

	return list
}

// Length returns the number of elements in list.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Length(list cell.T) int64 {
	var length int64

	for list != nil && list != pair.Null {
		length++

		list = pair.Cdr(list)
	}

	return length
}

// Last returns the last element of list or Null if list is empty.
func Last(list cell.T) cell.T {
	last := pair.Null

	for ; list != pair.Null; list = pair.Cdr(list) {
		last = pair.Car(list)
	}

	return last
}

// Butlast returns a new list with every element of list except the last.
func Butlast(list cell.T) cell.T {
	s := ToSlice(list)
	if len(s) == 0 {
		return pair.Null
	}

	return FromSlice(s[:len(s)-1])
}

// Locate returns list with source attached to its first pair.
// If source is nil or list is Null, list is returned unchanged.
func Locate(list cell.T, source *loc.T) cell.T {
	if source == nil || list == pair.Null {
		return list
	}

	return pair.Cons(pair.Car(list), pair.Cdr(list), *source)
}

// Map creates a new list by applying fn to each element of list.
func Map(list cell.T, fn func(cell.T) cell.T) cell.T {
	s := ToSlice(list)
	for i, c := range s {
		s[i] = fn(c)
	}

	return FromSlice(s)
}

// Partition splits list into a list of lists of n elements each.
// The last sublist may be shorter than n.
func Partition(n int, list cell.T) cell.T {
	if n <= 0 {
		panic("partition size must be positive")
	}

	s := ToSlice(list)
	out := make([]cell.T, 0, (len(s)+n-1)/n)

	for i := 0; i < len(s); i += n {
		end := i + n
		if end > len(s) {
			end = len(s)
		}

		out = append(out, FromSlice(s[i:end]))
	}

	return FromSlice(out)
}

// Reverse creates a new list with the elements of list in reverse order.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Reverse(list cell.T) cell.T {
	reversed := pair.Null

	for list != nil && list != pair.Null {
		reversed = pair.Cons(pair.Car(list), reversed)

		list = pair.Cdr(list)
	}

	return reversed
}

// Tail returns the sublist of list starting at element index.
// If index is out of range and dflt is provided it is returned.
// Otherwise, this function panics.
func Tail(list cell.T, index int64, dflt cell.T) cell.T {
	length := Length(list)

	msg := ""
	if index < 0 {
		msg = "index before first element"
	} else if index > length {
		msg = "index after last element"
	}

	if msg != "" {
		if dflt == nil {
			panic(msg)
		}

		return dflt
	}

	for index > 0 {
		list = pair.Cdr(list)

		index--
	}

	return list
}
