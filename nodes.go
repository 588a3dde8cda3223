package recursive

import (
	"strings"
)

// node is a node in the tree recorded while splitting an expression.
type node struct {
	kind nodeKind

	// name is the literal text of a nodeNum.
	name string
	// val is the float64 value of a nodeNum.
	val float64
	// col is the input column of the literal or operator.
	col int

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // literal
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

// binop gets the node kind for an operator byte. If the byte is not one of
// the four operators, the result is nodeNone.
func binop(c byte) nodeKind {
	switch c {
	case '+':
		return nodeAdd
	case '-':
		return nodeSub
	case '*':
		return nodeMul
	case '/':
		return nodeDiv
	default:
		return nodeNone
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNum:
		b.WriteString(n.name)
	case nodeAdd:
		n.left.fmt(b, !square)
		b.WriteString(" + ")
		n.right.fmt(b, !square)
	case nodeSub:
		n.left.fmt(b, !square)
		b.WriteString(" - ")
		n.right.fmt(b, !square)
	case nodeMul:
		n.left.fmt(b, !square)
		b.WriteString(" * ")
		n.right.fmt(b, !square)
	case nodeDiv:
		n.left.fmt(b, !square)
		b.WriteString(" / ")
		n.right.fmt(b, !square)
	default:
		panic("recursive: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
