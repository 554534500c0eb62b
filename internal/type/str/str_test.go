// Released under an MIT license. See LICENSE.

package str

import "testing"

func TestLiteral(t *testing.T) {
	for _, tc := range []struct {
		text     string
		expected string
	}{
		{"plain", `"plain"`},
		{"say \"hi\"", `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"\b\f\n\r\t\v", `"\b\f\n\r\t\v"`},
		{"\a\x01é ", "\"\a\x01é \""},
	} {
		if got := New(tc.text).Literal(); got != tc.expected {
			t.Errorf("%q: expected %s, got %s", tc.text, tc.expected, got)
		}
	}
}
