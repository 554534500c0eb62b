// Released under an MIT license. See LICENSE.

package ui

import (
	"reflect"
	"testing"

	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/type/loc"
)

type names []string

func (n names) Complete(prefix string) []string {
	found := []string{}

	for _, s := range n {
		if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
			found = append(found, s)
		}
	}

	return found
}

func (n names) EvaluateAt(term cell.T, _ *loc.T) (cell.T, error) {
	return term, nil
}

func TestCompleter(t *testing.T) {
	complete := Completer(names{"map", "max", "list"})

	head, completions, tail := complete("(ma 1) x", 3)
	if head != "(" || tail != " 1) x" {
		t.Fatalf("unexpected split %q %q", head, tail)
	}

	if !reflect.DeepEqual(completions, []string{"map", "max"}) {
		t.Fatalf("unexpected completions %v", completions)
	}

	head, completions, _ = complete("(f ", 3)
	if head != "(f " || len(completions) != 0 {
		t.Fatalf("expected no completions, got %q %v", head, completions)
	}
}
