// Released under an MIT license. See LICENSE.

// Package options parses simple's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by -v.
const Version = "simple 0.1.0"

//nolint:gochecknoglobals
var (
	expression  string
	files       []string
	interactive bool
	prelude     bool
	stdin       bool
	usage       = `simple

Usage:
  simple [-i] [-q] [FILE...]
  simple [-q] -e EXPR
  simple -h
  simple -v

Arguments:
  FILE  Path or pattern of a file to load.

Options:
  -e, --eval=EXPR    Evaluate EXPR and print the result.
  -i, --interactive  Start the REPL after loading files.
  -q, --quick        Skip the prelude of standard macros.
  -h, --help         Display this help.
  -v, --version      Print simple version.

With no FILE, simple starts the REPL if stdin is a TTY. Otherwise, it
reads a script from stdin.
`
)

// Expression returns the expression passed with -e, if any.
func Expression() string {
	return expression
}

// Files returns the file patterns to load.
func Files() []string {
	return files
}

// Interactive returns true if the REPL should start.
func Interactive() bool {
	return interactive
}

// Parse parses the command line. It exits after printing help or the version.
func Parse() {
	p := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	err := parse(p, os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}
}

// Prelude returns false if the prelude should be skipped.
func Prelude() bool {
	return prelude
}

// Stdin returns true if a script should be read from stdin.
func Stdin() bool {
	return stdin
}

func parse(p *docopt.Parser, argv []string, tty bool) error {
	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	expression, _ = opts.String("--eval")

	files, _ = opts["FILE"].([]string)

	quick, _ := opts.Bool("--quick")
	prelude = !quick

	interactive, _ = opts.Bool("--interactive")
	stdin = false

	if expression == "" && len(files) == 0 {
		interactive = interactive || tty
		stdin = !interactive
	}

	return nil
}
