// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/simple-lang/simple/internal/common"
	"github.com/simple-lang/simple/internal/common/validate"
	"github.com/simple-lang/simple/internal/interface/cell"
	"github.com/simple-lang/simple/internal/type/boolean"
	"github.com/simple-lang/simple/internal/type/str"
)

// Strings returns the string functions.
func Strings() map[string]Function {
	return map[string]Function{
		"str":       concatenate,
		"str/join":  join,
		"str/match": match,
	}
}

func concatenate(args ...cell.T) cell.T {
	var b strings.Builder

	for _, c := range args {
		b.WriteString(common.String(c))
	}

	return str.New(b.String())
}

func join(args ...cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	s := elements(v[1])

	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = common.String(c)
	}

	return str.New(strings.Join(parts, common.String(v[0])))
}

// match reports whether a string matches a shell file name pattern.
func match(args ...cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	ok, err := adapted.Match(common.String(v[0]), common.String(v[1]))
	if err != nil {
		panic(err)
	}

	return boolean.Bool(ok)
}
