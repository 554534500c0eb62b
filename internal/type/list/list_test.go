// Released under an MIT license. See LICENSE.

package list

import (
	"testing"

	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/interface/literal"
	"github.com/simple-lang/simple/internal/type/integer"
	"github.com/simple-lang/simple/internal/type/loc"
	"github.com/simple-lang/simple/internal/type/pair"
)

func ints(ns ...int64) cell.T {
	s := make([]cell.T, len(ns))
	for i, n := range ns {
		s[i] = integer.New(n)
	}

	return FromSlice(s)
}

func TestConsSharesTail(t *testing.T) {
	l := ints(2, 3)
	c := pair.Cons(integer.New(1), l)

	if pair.Cdr(c) != l {
		t.Fatal("cons copied its tail")
	}
}

func TestConcat(t *testing.T) {
	a := ints(1, 2)
	b := ints(3, 4)

	c := Concat(a, pair.Null, b)
	if got := literal.String(c); got != "(1 2 3 4)" {
		t.Fatalf("expected (1 2 3 4), got %s", got)
	}

	if got := literal.String(a); got != "(1 2)" {
		t.Fatalf("concat modified its argument: %s", got)
	}

	if Concat() != pair.Null {
		t.Fatal("concat of nothing should be the empty list")
	}
}

func TestPartition(t *testing.T) {
	for _, tc := range []struct {
		n        int
		list     cell.T
		expected string
	}{
		{2, ints(1, 2, 3, 4), "((1 2) (3 4))"},
		{2, ints(1, 2, 3), "((1 2) (3))"},
		{3, pair.Null, "()"},
	} {
		if got := literal.String(Partition(tc.n, tc.list)); got != tc.expected {
			t.Errorf("partition %d: expected %s, got %s", tc.n, tc.expected, got)
		}
	}
}

func TestSliceRoundTrip(t *testing.T) {
	l := ints(1, 2, 3)

	if !FromSlice(ToSlice(l)).Equal(l) {
		t.Fatal("list did not survive conversion to and from a slice")
	}

	if Length(l) != 3 {
		t.Fatalf("expected length 3, got %d", Length(l))
	}
}

func TestLastButlastReverse(t *testing.T) {
	l := ints(1, 2, 3)

	if !Last(l).Equal(integer.New(3)) {
		t.Fatalf("unexpected last %s", literal.String(Last(l)))
	}

	if got := literal.String(Butlast(l)); got != "(1 2)" {
		t.Fatalf("unexpected butlast %s", got)
	}

	if got := literal.String(Reverse(l)); got != "(3 2 1)" {
		t.Fatalf("unexpected reverse %s", got)
	}
}

func TestLocate(t *testing.T) {
	l := ints(1, 2)
	src := &loc.T{Name: "test", Line: 3, Char: 7}

	located := Locate(l, src)
	if pair.Source(located) == nil || pair.Source(located).Line != 3 {
		t.Fatal("source was not attached")
	}

	if pair.Cdr(located) != pair.Cdr(l) {
		t.Fatal("locate copied the tail")
	}

	if !located.Equal(l) {
		t.Fatal("located list should equal the original")
	}
}
