package recursive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diff finds the first in-order node of n that differs from m, or nil, nil if
// the two trees are equal.
func (n *node) diff(m *node) (*node, *node) {
	if n == nil || m == nil {
		if n != m {
			return n, m
		}
		return nil, nil
	}
	if n.kind != m.kind {
		return n, m
	}
	if n.kind == nodeNum {
		if n.name != m.name {
			return n, m
		}
		return nil, nil
	}
	if d, e := n.left.diff(m.left); d != nil || e != nil {
		return d, e
	}
	return n.right.diff(m.right)
}

func num(s string) *node {
	return &node{kind: nodeNum, name: s}
}

func bin(kind nodeKind, l, r *node) *node {
	return &node{kind: kind, left: l, right: r}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want *node
	}{
		{"num", "1", num("1")},
		{"multidigit", "50", num("50")},
		{"decimal", "3.25", num("3.25")},
		{"parens", "(1)", num("1")},
		{"parens-multidigit", "((50))", num("50")},
		{"add", "1+2", bin(nodeAdd, num("1"), num("2"))},
		{"sub", "1-2", bin(nodeSub, num("1"), num("2"))},
		{"mul", "1*2", bin(nodeMul, num("1"), num("2"))},
		{"div", "1/2", bin(nodeDiv, num("1"), num("2"))},
		{"left-assoc", "1-2+3", bin(nodeAdd, bin(nodeSub, num("1"), num("2")), num("3"))},
		{"left-assoc-mul", "1/2*3", bin(nodeMul, bin(nodeDiv, num("1"), num("2")), num("3"))},
		{"prec", "1+2*3", bin(nodeAdd, num("1"), bin(nodeMul, num("2"), num("3")))},
		{"prec-left", "1*2-3", bin(nodeSub, bin(nodeMul, num("1"), num("2")), num("3"))},
		{"group", "(1+2)*3", bin(nodeMul, bin(nodeAdd, num("1"), num("2")), num("3"))},
		{"group-right", "1-(2-3)", bin(nodeSub, num("1"), bin(nodeSub, num("2"), num("3")))},
		{"outer-group", "((3+2)*4)", bin(nodeMul, bin(nodeAdd, num("3"), num("2")), num("4"))},
		{"spaces", " 12 * ( 3 + 4 ) ", bin(nodeMul, num("12"), bin(nodeAdd, num("3"), num("4")))},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			require.NoError(t, err)
			if d, f := e.n.diff(c.want); d != nil || f != nil {
				t.Errorf("%q parsed to %v, want %v (first difference %v vs %v)", c.src, e.n, c.want, d, f)
			}
		})
	}
}

func TestParseCols(t *testing.T) {
	e, err := Parse(" 12 *\t(3 + 4)")
	require.NoError(t, err)
	n := e.n
	assert.Equal(t, 5, n.col)
	assert.Equal(t, 2, n.left.col)
	assert.Equal(t, 10, n.right.col)
	assert.Equal(t, 8, n.right.left.col)
	assert.Equal(t, 12, n.right.right.col)
}

func TestParseDepth(t *testing.T) {
	deep := strings.Repeat("(", 10) + "1" + strings.Repeat(")", 10)
	_, err := Parse(deep, MaxDepth(10))
	assert.NoError(t, err)
	_, err = Parse(deep, MaxDepth(9))
	var de *DepthError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 9, de.Max)
	assert.Equal(t, 11, de.Col)
	assert.ErrorIs(t, err, ErrInvalidExpression)
	assert.Contains(t, err.Error(), "too complex")

	chain := strings.Repeat("1+", 20) + "1"
	_, err = Parse(chain, MaxDepth(20))
	assert.NoError(t, err)
	_, err = Parse(chain, MaxDepth(19))
	assert.ErrorAs(t, err, &de)

	// The default limit stops pathological nesting without exhausting the
	// stack.
	deep = strings.Repeat("(", DefaultMaxDepth+1) + "1" + strings.Repeat(")", DefaultMaxDepth+1)
	_, err = Parse(deep)
	assert.ErrorAs(t, err, &de)

	assert.Panics(t, func() { MaxDepth(0) })
}

func TestExprString(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1", "(1)"},
		{"1+2", "([1] + [2])"},
		{"1-2+3", "([(1) - (2)] + [3])"},
		{"(1+2)*3", "([(1) + (2)] * [3])"},
		{"1/ (2*3)", "([1] / [(2) * (3)])"},
	}
	for _, c := range cases {
		e, err := Parse(c.src)
		require.NoError(t, err)
		assert.Equal(t, c.want, e.String(), "formatting %q", c.src)
	}
}
