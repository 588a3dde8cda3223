package recursive

import (
	"strconv"
)

// Expr = num | Expr '+' Expr | Expr '-' Expr | Expr '*' Expr | Expr '/' Expr | '(' Expr ')'
// num = digit { digit } [ '.' { digit } ] | '.' digit { digit }

// Expr is a parsed expression. An Expr is immutable and safe to evaluate
// concurrently.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// DefaultMaxDepth is the recursion limit used when Parse is not given
// MaxDepth.
const DefaultMaxDepth = 4096

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type depthopt int

// parsectx holds general data for parsing.
type parsectx struct {
	// maxdepth is the deepest recursion allowed, counting both parenthesized
	// groups and operator splits.
	maxdepth int
}

// MaxDepth limits how deeply the parser recurses. Each parenthesized group
// and each operator split is one level. Expressions that need more levels
// fail with a DepthError. Panics if n is not positive.
func MaxDepth(n int) ParseOption {
	if n <= 0 {
		panic("recursive: invalid max depth " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	return p
}

// Parse parses an expression so it can be evaluated. All whitespace in src is
// ignored. The given options are applied in order.
//
// Every error Parse returns implements InputError and matches
// ErrInvalidExpression under errors.Is.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	p := parsectx{maxdepth: DefaultMaxDepth}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	s := strip(src)
	if len(s.text) == 0 {
		return nil, &EmptyExpressionError{Col: s.end}
	}
	n, err := p.parse(&s, 0, len(s.text)-1, 0)
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// parse parses the window [left, right] of s.
func (p *parsectx) parse(s *source, left, right, depth int) (*node, error) {
	if left < 0 || right >= len(s.text) || left > right {
		return nil, &BoundsError{Col: s.col(left), Left: left, Right: right}
	}
	if depth > p.maxdepth {
		return nil, &DepthError{Col: s.col(left), Max: p.maxdepth}
	}
	// A window that is entirely one parenthesized group is unwrapped before
	// looking for operators. Otherwise "(1+2)" would split at +.
	if s.text[left] == '(' {
		m := s.match(left, right)
		if m < 0 {
			return nil, &BracketError{Col: s.col(left), Open: true}
		}
		if m == right {
			return p.parse(s, left+1, right-1, depth+1)
		}
	}
	if left == right {
		return s.num(left, right)
	}
	k, err := s.split(left, right)
	if err != nil {
		return nil, err
	}
	if k < 0 {
		// No operators, so the whole window is one literal.
		return s.num(left, right)
	}
	op := binop(s.text[k])
	if op == nodeNone || k == left || k == right {
		return nil, &OperatorError{Col: s.col(k), Operator: string(s.text[k])}
	}
	lhs, err := p.parse(s, left, k-1, depth+1)
	if err != nil {
		return nil, err
	}
	rhs, err := p.parse(s, k+1, right, depth+1)
	if err != nil {
		return nil, err
	}
	return &node{kind: op, col: s.col(k), left: lhs, right: rhs}, nil
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}
