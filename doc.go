// Package recursive implements small recursive algorithms: an arithmetic
// expression evaluator, binary search over sorted slices, and digit sums.
//
// Expressions contain numbers, the binary operators + - * /, and parentheses.
// Whitespace anywhere is ignored, so "1 2 + 3" is the same as "12+3". The
// evaluator works by splitting the expression at its loosest-binding operator
// outside any parentheses and evaluating each side, so "8-4-2" is "(8-4)-2"
// and "2+3*4" is "2+(3*4)". There is no unary minus; "-1" is an error.
//
// Expressions can be parsed once with Parse and evaluated any number of times,
// either in float64 arithmetic or at arbitrary precision.
//
package recursive
