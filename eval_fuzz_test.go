package recursive_test

import (
	"math"
	"strings"
	"testing"

	"github.com/zephyrtronium/recursive"
)

func FuzzEval(f *testing.F) {
	f.Add("1")
	f.Add("((3+2)*4)")
	f.Add("10/0")
	f.Add("3+*2")
	f.Add("(1")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := recursive.Eval(s)
		if err != nil {
			return
		}
		// Whitespace never changes the result.
		q, err := recursive.Eval(" " + strings.Join(strings.Split(s, ""), "\t") + "\n")
		if err != nil {
			t.Fatalf("%q evaluated to %g but fails with whitespace: %v", s, r, err)
		}
		if math.Float64bits(r) != math.Float64bits(q) && !(math.IsNaN(r) && math.IsNaN(q)) {
			t.Errorf("%q evaluated to %g, but %g with whitespace", s, r, q)
		}
	})
}
