package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simple-lang/simple/internal/engine"
	"github.com/simple-lang/simple/internal/printer"
)

func TestExamples(t *testing.T) {
	scripts, err := filepath.Glob(filepath.Join("examples", "*.simple"))
	if err != nil {
		t.Fatal(err)
	}

	if len(scripts) == 0 {
		t.Fatal("no examples found")
	}

	for _, script := range scripts {
		expected, err := os.ReadFile(strings.TrimSuffix(script, ".simple") + ".out")
		if err != nil {
			t.Fatal(err)
		}

		out := &bytes.Buffer{}
		diagnostics := &bytes.Buffer{}

		e, err := engine.New(printer.New(out, diagnostics))
		if err != nil {
			t.Fatal(err)
		}

		if err := e.Load(script, false); err != nil {
			t.Errorf("%s: %v", script, err)

			continue
		}

		if got := out.String(); got != string(expected) {
			t.Errorf("%s: expected %q, got %q", script, expected, got)
		}
	}
}
