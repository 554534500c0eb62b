// Released under an MIT license. See LICENSE.

// Package boot provides the prelude evaluated when simple starts.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.simple
var script string //nolint:gochecknoglobals

// Script returns the prelude for simple.
func Script() string {
	return script
}
