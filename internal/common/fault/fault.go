// Released under an MIT license. See LICENSE.

// Package fault provides the error type raised while reading, expanding,
// or evaluating simple code.
//
// Code inside the reader, expander and evaluator raises faults with
// Raise. Each public entry point recovers them with Recover.
package fault

import (
	"errors"
	"fmt"

	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/interface/literal"
	"github.com/simple-lang/simple/internal/type/loc"
	"github.com/simple-lang/simple/internal/type/pair"
)

// T (fault) wraps an error with the term that caused it and, when
// known, where that term came from.
type T struct {
	Err    error
	Source *loc.T
	Term   cell.T
}

// New creates a new fault. If source is nil the term's own location is used.
func New(err error, term cell.T, source *loc.T) *T {
	if source == nil && term != nil {
		source = pair.Source(term)
	}

	return &T{Err: err, Source: source, Term: term}
}

// Error returns the fault's message prefixed with its location.
func (f *T) Error() string {
	s := f.Err.Error()

	if f.Term != nil {
		s += ": " + literal.String(f.Term)
	}

	if f.Source != nil {
		s = f.Source.String() + ": " + s
	}

	return s
}

// Unwrap returns the underlying error.
func (f *T) Unwrap() error {
	return f.Err
}

// Raise panics with a fault for err and term.
func Raise(err error, term cell.T, source *loc.T) {
	panic(New(err, term, source))
}

// Raisef panics with a fault wrapping sentinel with a formatted detail.
func Raisef(sentinel error, term cell.T, source *loc.T, format string, args ...interface{}) {
	err := fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, args...)...)
	panic(New(err, term, source))
}

// Recover converts a panic into an error stored in *errp. It must be
// deferred directly, as in defer fault.Recover(&err). Panics that are not errors
// are wrapped so that host failures never escape as panics.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}

	*errp = From(r)
}

// From converts a recovered value to an error.
func From(r interface{}) error {
	switch r := r.(type) {
	case error:
		return r
	case string:
		return errors.New(r)
	case fmt.Stringer:
		return errors.New(r.String())
	default:
		return fmt.Errorf("unexpected error: %v", r)
	}
}
