// Released under an MIT license. See LICENSE.

/*
Simple is a small Lisp. Source text is read into terms, macro-expanded
and then evaluated with proper tail calls:

	(define (count n) (if (== n 0) 'done (count (- n 1))))
	(count 1000000)

Run simple with no arguments for a REPL, or pass files to load.
*/
package main

import (
	"io"
	"os"

	"github.com/simple-lang/simple/internal/engine"
	"github.com/simple-lang/simple/internal/printer"
	"github.com/simple-lang/simple/internal/system/options"
	"github.com/simple-lang/simple/internal/ui"
)

func main() {
	options.Parse()

	os.Exit(run(os.Stdin, printer.New(os.Stdout, os.Stderr)))
}

func run(stdin io.Reader, p *printer.T) int {
	var opts []engine.Option
	if !options.Prelude() {
		opts = append(opts, engine.WithoutPrelude())
	}

	e, err := engine.New(p, opts...)
	if err != nil {
		p.Fault(err)

		return 1
	}

	if s := options.Expression(); s != "" {
		c, err := e.Run(s, "eval")
		if err != nil {
			p.Fault(err)

			return 1
		}

		p.Prn(c)

		return 0
	}

	for _, pattern := range options.Files() {
		if err := e.Load(pattern, false); err != nil {
			p.Fault(err)

			return 1
		}
	}

	if options.Stdin() {
		b, err := io.ReadAll(stdin)
		if err != nil {
			p.Fault(err)

			return 1
		}

		if _, err := e.Run(string(b), "stdin"); err != nil {
			p.Fault(err)

			return 1
		}
	}

	if options.Interactive() {
		if err := ui.Run(e, p); err != nil {
			p.Fault(err)

			return 1
		}
	}

	return 0
}
