// Released under an MIT license. See LICENSE.

// Package reader converts simple source text into terms.
package reader

import (
	"errors"
	"io"

	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/reader/lexer"
	"github.com/simple-lang/simple/internal/reader/parser"
	"github.com/simple-lang/simple/internal/type/loc"
)

// T (reader) encapsulates the simple lexer and parser.
type T struct {
	p *parser.T
	s *lexer.T
}

type reader = T

// New creates a new reader for text. The label names the source of the
// text in diagnostics. A reader cannot be rewound; create a new one to
// read the same text again.
func New(text, label string) *T {
	s := lexer.New(label)
	s.Scan(text)
	s.Close()

	return &T{
		p: parser.New(s.Token),
		s: s,
	}
}

// Read returns the next term. It returns io.EOF once the text is exhausted.
// Any other error is fatal for the reader.
func (r *reader) Read() (cell.T, error) {
	return r.p.Parse()
}

// Source returns where the term last returned by Read started.
func (r *reader) Source() *loc.T {
	return r.p.Source()
}

// ReadAll returns every remaining term.
func (r *reader) ReadAll() ([]cell.T, error) {
	terms := []cell.T{}

	for {
		c, err := r.Read()
		if errors.Is(err, io.EOF) {
			return terms, nil
		} else if err != nil {
			return terms, err
		}

		terms = append(terms, c)
	}
}
