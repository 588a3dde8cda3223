package recursive

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidExpression is the kind of every error caused by malformed
	// input. Use errors.Is to test for it.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrDivisionByZero is the kind of error returned when the right operand
	// of a division evaluates to exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the character that caused the error, counting whitespace.
	Pos() int
}

// EmptyExpressionError is an error indicating an input with nothing but
// whitespace in it.
type EmptyExpressionError struct {
	// Col is one past the last rune of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int { return err.Col }

func (err *EmptyExpressionError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// BoundsError indicates an evaluation window that is empty or outside the
// expression, such as the inside of "()".
type BoundsError struct {
	// Col is the position where the window would have started.
	Col int
	// Left and Right are the window bounds as byte indices into the expression
	// with whitespace removed.
	Left, Right int
}

func (err *BoundsError) Error() string {
	return errpos(err.Col, "invalid bounds for expression evaluation: left="+strconv.Itoa(err.Left)+", right="+strconv.Itoa(err.Right))
}

func (err *BoundsError) Pos() int { return err.Col }

func (err *BoundsError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// BracketError is an error indicating unmatched parentheses in the input.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Open is true if the unmatched parenthesis is an opening one.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "unmatched parentheses: ( with no )")
	}
	return errpos(err.Col, "unmatched parentheses: ) with no (")
}

func (err *BracketError) Pos() int { return err.Col }

func (err *BracketError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// NumberError indicates a term that should be a number but isn't one.
type NumberError struct {
	// Col is the position of the start of the term.
	Col int
	// Text is the term, with whitespace removed.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number: "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int { return err.Col }

func (err *NumberError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// OperatorError is an error indicating an operator in a place where it cannot
// be applied, usually because one of its operands is missing.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that could not be applied.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "invalid operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int { return err.Col }

func (err *OperatorError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// DepthError indicates an expression nested more deeply than the parser
// allows.
type DepthError struct {
	// Col is the position at which the limit was reached.
	Col int
	// Max is the depth limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression too complex: exceeds depth "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int { return err.Col }

func (err *DepthError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// DivisionError is returned when evaluating a division whose right operand is
// exactly zero. It unwraps to ErrDivisionByZero.
type DivisionError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionError) Pos() int { return err.Col }

func (err *DivisionError) Unwrap() error {
	return ErrDivisionByZero
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*BoundsError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*DivisionError)(nil)
)
