package recursive

import "testing"

func FuzzParse(f *testing.F) {
	f.Add("1")
	f.Add("1+2*3")
	f.Add("(()")
	f.Add("1.2.3")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := Parse(s)
		if err != nil {
			if _, ok := err.(InputError); !ok {
				t.Errorf("%q gave non-InputError %T: %v", s, err, err)
			}
			return
		}
		// Every parse tree has only literals and the four operators.
		var walk func(n *node)
		walk = func(n *node) {
			switch n.kind {
			case nodeNum:
				if !isnumeral(n.name) {
					t.Errorf("%q produced literal %q", s, n.name)
				}
			case nodeAdd, nodeSub, nodeMul, nodeDiv:
				walk(n.left)
				walk(n.right)
			default:
				t.Fatalf("%q produced node kind %v", s, n.kind)
			}
		}
		walk(e.n)
		_ = e.String()
	})
}
