package recursive

import (
	"math/big"
)

// Eval parses and evaluates an expression in float64 arithmetic.
//
// Malformed input results in an error matching ErrInvalidExpression. Dividing
// by an operand that evaluates to exactly zero results in an error matching
// ErrDivisionByZero.
func Eval(src string, opts ...ParseOption) (float64, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

// EvalBig parses and evaluates an expression with prec bits of precision. If
// prec is 0, the precision is 64.
func EvalBig(src string, prec uint, opts ...ParseOption) (*big.Float, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return nil, err
	}
	return e.EvalBig(prec)
}

// Eval evaluates the expression in float64 arithmetic. The only possible
// error is a *DivisionError.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

// EvalBig evaluates the expression with prec bits of precision. If prec is 0,
// the precision is 64. The only possible error is a *DivisionError.
func (e *Expr) EvalBig(prec uint) (*big.Float, error) {
	if prec == 0 {
		prec = 64
	}
	return e.n.evalbig(prec)
}

func (n *node) eval() (float64, error) {
	if n.kind == nodeNum {
		return n.val, nil
	}
	l, err := n.left.eval()
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval()
	if err != nil {
		return 0, err
	}
	switch n.kind {
	case nodeAdd:
		return l + r, nil
	case nodeSub:
		return l - r, nil
	case nodeMul:
		return l * r, nil
	case nodeDiv:
		if r == 0 {
			return 0, &DivisionError{Col: n.col}
		}
		return l / r, nil
	default:
		panic("recursive: invalid node kind " + n.kind.String())
	}
}

func (n *node) evalbig(prec uint) (*big.Float, error) {
	if n.kind == nodeNum {
		r, _, err := new(big.Float).SetPrec(prec).Parse(n.name, 10)
		if err != nil {
			panic("recursive: invalid number: " + n.name + " (" + err.Error() + ")")
		}
		return r, nil
	}
	l, err := n.left.evalbig(prec)
	if err != nil {
		return nil, err
	}
	r, err := n.right.evalbig(prec)
	if err != nil {
		return nil, err
	}
	switch n.kind {
	case nodeAdd:
		l.Add(l, r)
	case nodeSub:
		l.Sub(l, r)
	case nodeMul:
		l.Mul(l, r)
	case nodeDiv:
		if r.Sign() == 0 {
			return nil, &DivisionError{Col: n.col}
		}
		l.Quo(l, r)
	default:
		panic("recursive: invalid node kind " + n.kind.String())
	}
	return l, nil
}
