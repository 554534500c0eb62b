// Released under an MIT license. See LICENSE.

// Package printer writes simple values and diagnostics.
package printer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/simple-lang/simple/internal/common"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/interface/literal"
	"github.com/xyproto/vt"
)

// T (printer) writes values to an output stream that can be temporarily
// redirected, and diagnostics to a separate stream.
type T struct {
	colour      bool
	diagnostics io.Writer
	outputs     []io.Writer
}

type printer = T

// New creates a printer. Diagnostics are coloured if they go to a terminal.
func New(out, diagnostics io.Writer) *T {
	return &T{
		colour:      terminal(diagnostics),
		diagnostics: diagnostics,
		outputs:     []io.Writer{out},
	}
}

// Capture returns everything written to the printer's output while fn runs.
func (p *printer) Capture(fn func()) string {
	b := &bytes.Buffer{}

	p.outputs = append(p.outputs, b)
	defer func() {
		p.outputs = p.outputs[:len(p.outputs)-1]
	}()

	fn()

	return b.String()
}

// Fault reports err as an error.
func (p *printer) Fault(err error) {
	p.warn(err.Error())
}

// Notify writes the literal representation of each cell as a diagnostic.
func (p *printer) Notify(cells ...cell.T) {
	p.diagnostic(vt.LightGreen, Show(cells...))
}

// Output returns the writer currently receiving output.
func (p *printer) Output() io.Writer {
	return p.outputs[len(p.outputs)-1]
}

// Pr writes the literal representation of each cell.
func (p *printer) Pr(cells ...cell.T) {
	fmt.Fprint(p.Output(), Show(cells...))
}

// Print writes the display representation of each cell.
func (p *printer) Print(cells ...cell.T) {
	fmt.Fprint(p.Output(), Display(cells...))
}

// Println writes the display representation of each cell and a newline.
func (p *printer) Println(cells ...cell.T) {
	fmt.Fprintln(p.Output(), Display(cells...))
}

// Prn writes the literal representation of each cell and a newline.
func (p *printer) Prn(cells ...cell.T) {
	fmt.Fprintln(p.Output(), Show(cells...))
}

// Warn writes the literal representation of each cell as an error.
func (p *printer) Warn(cells ...cell.T) {
	p.warn(Show(cells...))
}

func (p *printer) diagnostic(colour vt.AttributeColor, s string) {
	if p.colour {
		s = colour.Get(s)
	}

	fmt.Fprintln(p.diagnostics, s)
}

func (p *printer) warn(s string) {
	p.diagnostic(vt.LightRed, s)
}

// Display returns the display representations of cells separated by spaces.
// Strings are shown without quotes.
func Display(cells ...cell.T) string {
	return join(common.String, cells)
}

// Show returns the literal representations of cells separated by spaces.
func Show(cells ...cell.T) string {
	return join(literal.String, cells)
}

func join(fn func(cell.T) string, cells []cell.T) string {
	s := make([]string, len(cells))
	for i, c := range cells {
		s[i] = fn(c)
	}

	return strings.Join(s, " ")
}

func terminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}
