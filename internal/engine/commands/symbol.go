// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/simple-lang/simple/internal/common"
	"github.com/simple-lang/simple/internal/common/validate"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/type/keyword"
	"github.com/simple-lang/simple/internal/type/sym"
)

// Symbols returns the symbol and keyword functions.
func Symbols() map[string]Function {
	return map[string]Function{
		"gensym":   gensym,
		"keyword":  makeKeyword,
		"keyword?": is(keyword.Is),
		"symbol":   makeSymbol,
		"symbol?":  is(sym.Is),
	}
}

func gensym(args ...cell.T) cell.T {
	v := validate.Fixed(args, 0, 1)

	prefix := "G"
	if len(v) == 1 {
		prefix = common.String(v[0])
	}

	return sym.Gensym(prefix)
}

func makeKeyword(args ...cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	if k, ok := v[0].(*keyword.T); ok {
		return k
	}

	return keyword.New(strings.TrimPrefix(common.String(v[0]), ":"))
}

func makeSymbol(args ...cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	if k, ok := v[0].(*keyword.T); ok {
		return sym.New(k.String())
	}

	return sym.New(common.String(v[0]))
}
