// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the simple language.
package parser

import (
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/simple-lang/simple/internal/common/fault"
	"github.com/simple-lang/simple/internal/engine/kernel"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/reader/token"
	"github.com/simple-lang/simple/internal/type/array"
	"github.com/simple-lang/simple/internal/type/boolean"
	"github.com/simple-lang/simple/internal/type/float"
	"github.com/simple-lang/simple/internal/type/integer"
	"github.com/simple-lang/simple/internal/type/keyword"
	"github.com/simple-lang/simple/internal/type/list"
	"github.com/simple-lang/simple/internal/type/loc"
	"github.com/simple-lang/simple/internal/type/nothing"
	"github.com/simple-lang/simple/internal/type/str"
	"github.com/simple-lang/simple/internal/type/sym"
)

// Read errors.
var (
	ErrInvalidEscape      = errors.New("invalid escape")
	ErrInvalidNumber      = errors.New("invalid number")
	ErrUnclosedOpen       = errors.New("unclosed opening")
	ErrUnmatchedClose     = errors.New("unmatched closing")
	ErrUnterminatedString = errors.New("unterminated string")
)

//nolint:gochecknoglobals
var (
	binary   = regexp.MustCompile(`^[-+]?0[bB][01]+$`)
	decimal  = regexp.MustCompile(`^[-+]?(0|[1-9][0-9]*)$`)
	hex      = regexp.MustCompile(`^[-+]?0[xX][0-9a-fA-F]+$`)
	fraction = regexp.MustCompile(`^[-+]?(0|[1-9][0-9]*)\.[0-9]+$`)

	escapes = "tnbfrv\"\\"

	prefixes = map[token.Class]*sym.T{
		'\'':         kernel.Quote,
		'`':          kernel.Quasiquote,
		'~':          kernel.Unquote,
		token.Splice: kernel.UnquoteSplicing,
	}
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	depth int             // Number of open sequences.
	item  func() *token.T // Function to call to get another token.
	start *loc.T          // Where the last expression started.
	token *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Depth returns the number of sequences opened but not yet closed.
func (p *T) Depth() int {
	return p.depth
}

// Source returns the location of the first token of the last expression.
func (p *T) Source() *loc.T {
	return p.start
}

// Parse consumes tokens until one complete expression has been read.
// It returns io.EOF if there are no more tokens.
func (p *T) Parse() (c cell.T, err error) {
	defer fault.Recover(&err)

	p.depth = 0

	t := p.peek()
	if t == nil {
		return nil, io.EOF
	}

	p.start = t.Source()

	return p.expression(), nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// T state functions.

// <expression> ::= <atom> | <string> | <sequence> | <prefix> <expression> .
func (p *T) expression() cell.T {
	t := p.consume()

	switch t.Class() {
	case '(':
		return p.sequence(t, ')', func(s []cell.T) cell.T {
			return list.Locate(list.FromSlice(s), t.Source())
		})
	case '[':
		return p.sequence(t, ']', func(s []cell.T) cell.T {
			return array.New(s...)
		})
	case ')', ']':
		fault.Raise(ErrUnmatchedClose, nil, t.Source())
	case '\'', '`', '~', token.Splice:
		if p.peek() == nil {
			fault.Raisef(ErrUnclosedOpen, nil, t.Source(), "%s", t.Value())
		}

		c := list.New(prefixes[t.Class()], p.expression())

		return list.Locate(c, t.Source())
	case token.String:
		return str.New(unescape(t))
	case token.Error:
		fault.Raise(ErrUnterminatedString, nil, t.Source())
	}

	return atom(t)
}

// <sequence> ::= <open> <expression>* <close> .
func (p *T) sequence(open *token.T, closing token.Class, build func([]cell.T) cell.T) cell.T {
	p.depth++

	s := []cell.T{}

	for {
		t := p.peek()

		switch {
		case t == nil:
			fault.Raisef(ErrUnclosedOpen, nil, open.Source(), "%s", open.Value())
		case t.Is(closing):
			p.consume()
			p.depth--

			return build(s)
		}

		s = append(s, p.expression())
	}
}

// Helper functions.

func atom(t *token.T) cell.T {
	s := t.Value()

	switch s {
	case "#t":
		return boolean.True
	case "#f":
		return boolean.False
	case "#nil":
		return nothing.Nil
	case "#void":
		return nothing.Void
	}

	switch {
	case fraction.MatchString(s):
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			fault.Raisef(ErrInvalidNumber, nil, t.Source(), "%s", s)
		}

		return float.New(f)
	case hex.MatchString(s), binary.MatchString(s), decimal.MatchString(s):
		i, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			fault.Raisef(ErrInvalidNumber, nil, t.Source(), "%s", s)
		}

		return integer.New(i)
	case len(s) > 1 && s[0] == ':':
		return keyword.New(s[1:])
	}

	return sym.New(s)
}

func unescape(t *token.T) string {
	v := t.Value()
	v = v[1 : len(v)-1]

	for i := 0; i < len(v); i++ {
		if v[i] != '\\' {
			continue
		}

		i++

		if !strings.ContainsRune(escapes, rune(v[i])) {
			fault.Raisef(ErrInvalidEscape, nil, t.Source(), `\%c`, v[i])
		}
	}

	s, err := adapted.ActualBytes(v)
	if err != nil {
		fault.Raisef(ErrInvalidEscape, nil, t.Source(), "%v", err)
	}

	return s
}
