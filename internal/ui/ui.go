// Released under an MIT license. See LICENSE.

// Package ui provides an interactive REPL for the simple language.
package ui

import (
	"errors"
	"io"
	"io/fs"
	"strings"

	"github.com/peterh/liner"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/printer"
	"github.com/simple-lang/simple/internal/reader/lexer"
	"github.com/simple-lang/simple/internal/reader/parser"
	"github.com/simple-lang/simple/internal/reader/token"
	"github.com/simple-lang/simple/internal/system/history"
	"github.com/simple-lang/simple/internal/type/loc"
)

// Prompts.
const (
	Continue = "...> "
	Ready    = "simple> "
)

// Evaluator is the interface for things that want to process parsed terms.
type Evaluator interface {
	Complete(prefix string) []string
	EvaluateAt(term cell.T, where *loc.T) (cell.T, error)
}

// Run reads terms from the terminal and evaluates them until end of file.
// Results are printed with p and failures reported without stopping.
func Run(e Evaluator, p *printer.T) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	if err := history.Load(cli.ReadHistory); err != nil && !errors.Is(err, fs.ErrNotExist) {
		p.Fault(err)
	}

	defer func() {
		if err := history.Save(cli.WriteHistory); err != nil {
			p.Fault(err)
		}
	}()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(Completer(e))

start:
	restart := false

	l := lexer.New("repl")

	var r *parser.T

	r = parser.New(func() *token.T {
		for {
			t := l.Token()
			if t != nil {
				return t
			}

			if err := uncooked.ApplyMode(); err != nil {
				p.Fault(err)
			}

			prompt := Ready
			if r.Depth() > 0 || l.Pending() {
				prompt = Continue
			}

			line, err := cli.Prompt(prompt)

			if err := cooked.ApplyMode(); err != nil {
				p.Fault(err)
			}

			switch {
			case err == nil:
				if strings.TrimSpace(line) != "" {
					cli.AppendHistory(line)
				}
			case errors.Is(err, liner.ErrPromptAborted):
				restart = true

				return nil
			default:
				return nil
			}

			l.Scan(line + "\n")
		}
	})

	for {
		c, err := r.Parse()

		switch {
		case restart:
			goto start
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			// The rest of the input is discarded.
			p.Fault(err)

			goto start
		}

		v, err := e.EvaluateAt(c, r.Source())
		if err != nil {
			p.Fault(err)

			continue
		}

		p.Prn(v)
	}
}

// Completer returns a liner word completer for the names known to e.
func Completer(e Evaluator) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		head, tail := line[:pos], line[pos:]

		start := strings.LastIndexAny(head, " \t\n()[];\"'`~") + 1
		prefix := head[start:]

		if prefix == "" {
			return head, nil, tail
		}

		return head[:start], e.Complete(prefix), tail
	}
}
