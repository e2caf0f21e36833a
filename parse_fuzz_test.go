package tilted_test

import (
	"strings"
	"testing"

	"github.com/SaltedPeanutButter/tilted"
)

func FuzzParse(f *testing.F) {
	f.Add("7 + 6 * 2 - 4 * (8 + 3)")
	f.Add("7.0 * -5")
	f.Add("2 ^ -3 ^ 2")
	f.Add("sin(1)")
	f.Fuzz(func(t *testing.T, s string) {
		tilted.Parse(strings.NewReader(s))
	})
}
