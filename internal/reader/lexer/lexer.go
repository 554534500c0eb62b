// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the simple language.
//
// The simple lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide
// for more information.
//
// Text is supplied in buffers. A token that runs off the end of the
// current buffer is continued when the next buffer arrives, so a reader
// can feed the lexer one line at a time. Once Close is called, running
// out of text ends any pending token.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/simple-lang/simple/internal/reader/token"
	"github.com/simple-lang/simple/internal/type/loc"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	final bool     // No buffers will follow the queued buffers.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	state action   // Current action.

	cursor loc.T // Location of the current byte.
	source loc.T // Location of the current token's first byte.

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		tokens: make(chan *token.T, 2),
	}

	l.cursor = l.source
	l.state = skipWhitespace

	return l
}

// Close indicates that no more text will be scanned.
func (l *T) Close() {
	l.final = true
}

// Pending returns true if the lexer is in the middle of a token.
func (l *T) Pending() bool {
	return l.first < l.index
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		select {
		case t := <-l.tokens:
			return t
		default:
		}

		l.gather()

		state := l.state(l)
		if state != nil {
			l.state = state

			continue
		}

		// Out of text. The current state is kept so scanning can resume.
		select {
		case t := <-l.tokens:
			return t
		default:
			return nil
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.cursor.Line++
		l.cursor.Char = 1
	} else {
		l.cursor.Char++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens <- token.New(c, v, l.source)
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	// Prepend leftover to new bytes.
	l.bytes = l.bytes[l.first:] + strings.Join(l.queue, "")
	l.index -= l.first
	l.first = 0
	l.queue = nil
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}
	return token.Class(r), w
}

func (l *T) skip() {
	l.source = l.cursor
	l.first = l.index
}

// T states.

func afterTilde(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		if !l.final {
			return nil
		}
	case '@':
		l.accept(r, w)
		l.emit(token.Splice, l.Text())

		return skipWhitespace
	}

	l.emit('~', l.Text())

	return skipWhitespace
}

func scanEscape(l *T) action {
	r, w := l.peek()
	if r == eof {
		return unterminated(l)
	}

	l.accept(r, w)

	return scanString
}

func scanString(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return unterminated(l)
		case '"':
			l.accept(r, w)
			l.emit(token.String, l.Text())

			return skipWhitespace
		case '\\':
			l.accept(r, w)

			return scanEscape
		}

		l.accept(r, w)
	}
}

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()

		if r == eof {
			if !l.final {
				return nil
			}

			l.emit(token.Symbol, l.Text())

			return skipWhitespace
		}

		if terminal(r) {
			l.emit(token.Symbol, l.Text())

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			l.skip()

			return nil
		case '\n':
			l.accept(r, w)
			l.skip()

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		if r == eof {
			return nil
		}

		if unicode.IsSpace(rune(r)) {
			l.accept(r, w)
			l.skip()

			continue
		}

		switch r {
		case ';':
			l.accept(r, w)

			return skipComment
		case '(', ')', '[', ']', '\'', '`':
			l.accept(r, w)
			l.emit(r, l.Text())

			return skipWhitespace
		case '~':
			l.accept(r, w)

			return afterTilde
		case '"':
			l.accept(r, w)

			return scanString
		}

		return scanSymbol
	}
}

// Helper functions.

func terminal(r token.Class) bool {
	return unicode.IsSpace(rune(r)) || strings.ContainsRune("()[];\"'~`", rune(r))
}

func unterminated(l *T) action {
	if !l.final {
		return nil
	}

	l.emit(token.Error, l.Text())

	return skipWhitespace
}
