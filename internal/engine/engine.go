// Released under an MIT license. See LICENSE.

// Package engine interleaves reading, expanding and evaluating simple code.
//
// Each top-level form is expanded and then evaluated before the next
// form is read, so a macro defined by one form is available to the
// forms that follow it.
package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/michaelmacinnis/adapted"
	"github.com/simple-lang/simple/internal/engine/boot"
	"github.com/simple-lang/simple/internal/engine/commands"
	"github.com/simple-lang/simple/internal/engine/eval"
	"github.com/simple-lang/simple/internal/engine/expander"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/printer"
	"github.com/simple-lang/simple/internal/reader"
	"github.com/simple-lang/simple/internal/type/env"
	"github.com/simple-lang/simple/internal/type/loc"
	"github.com/simple-lang/simple/internal/type/nothing"
	"github.com/simple-lang/simple/internal/type/sym"
)

// ErrNoMatch is returned when a file pattern matches nothing.
var ErrNoMatch = errors.New("no files match")

// T (engine) is a facade in front of the machinery for evaluating simple code.
type T struct {
	evaluator *eval.T
	expander  *expander.T
	loaded    map[string]bool
}

// Option configures an engine.
type Option func(*options)

type options struct {
	prelude bool
}

// WithoutPrelude skips the prelude of standard macros.
func WithoutPrelude() Option {
	return func(o *options) {
		o.prelude = false
	}
}

// New creates a new engine that writes output with p.
func New(p *printer.T, opts ...Option) (*T, error) {
	o := &options{prelude: true}
	for _, opt := range opts {
		opt(o)
	}

	m := eval.New(env.New(nil), expander.Environment())

	e := &T{
		evaluator: m,
		expander:  expander.New(m),
		loaded:    map[string]bool{},
	}

	for name, fn := range commands.Functions(e, p) {
		m.Globals().Bind(sym.New(name), eval.NewNative(name, fn))
	}

	if o.prelude {
		if _, err := e.Run(boot.Script(), "boot"); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Apply calls fn with args. Failures panic.
func (e *T) Apply(fn cell.T, args ...cell.T) cell.T {
	return e.evaluator.Apply(fn, args...)
}

// Complete returns the global names that start with prefix.
func (e *T) Complete(prefix string) []string {
	return e.evaluator.Globals().Complete(prefix)
}

// Evaluate expands and then evaluates term in the global environment.
func (e *T) Evaluate(term cell.T) (cell.T, error) {
	return e.EvaluateAt(term, nil)
}

// EvaluateAt is Evaluate with failures that have no better location
// reported at where.
func (e *T) EvaluateAt(term cell.T, where *loc.T) (cell.T, error) {
	c, err := e.Expand(term)
	if err != nil {
		return nil, err
	}

	return e.evaluator.EvalAt(c, e.evaluator.Globals(), where)
}

// Expand fully expands term.
func (e *T) Expand(term cell.T) (cell.T, error) {
	return e.expander.Expand(term, e.evaluator.Macros())
}

// Load runs every file that matches pattern. A file that has already
// been loaded is skipped unless force is true.
func (e *T) Load(pattern string, force bool) error {
	paths, err := adapted.Glob(pattern)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		return fmt.Errorf("%w: %s", ErrNoMatch, pattern)
	}

	for _, path := range paths {
		key, err := filepath.Abs(path)
		if err != nil {
			key = path
		}

		if e.loaded[key] && !force {
			continue
		}

		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		e.loaded[key] = true

		if _, err := e.Run(string(b), path); err != nil {
			return err
		}
	}

	return nil
}

// Macroexpand expands term while its head is a macro.
func (e *T) Macroexpand(term cell.T) (cell.T, error) {
	return e.expander.Macroexpand(term, e.evaluator.Macros())
}

// Run evaluates each form in text in order and returns the last value.
// It stops at the first error. The label names text in diagnostics.
func (e *T) Run(text, label string) (cell.T, error) {
	r := reader.New(text, label)

	var c cell.T = nothing.Void

	for {
		term, err := r.Read()
		if errors.Is(err, io.EOF) {
			return c, nil
		} else if err != nil {
			return nil, err
		}

		c, err = e.EvaluateAt(term, r.Source())
		if err != nil {
			return nil, err
		}
	}
}
