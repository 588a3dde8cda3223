package recursive

import (
	"strings"
	"unicode"
)

// source is an expression with whitespace removed. Parsing works on windows
// of source.text given as inclusive byte index pairs [left, right].
type source struct {
	text string
	// cols maps each byte of text to the rune column it came from in the
	// original input, counting from 1.
	cols []int
	// end is the column following the last rune of the input.
	end int
}

// strip removes all whitespace from src.
func strip(src string) source {
	var b strings.Builder
	b.Grow(len(src))
	s := source{cols: make([]int, 0, len(src))}
	col := 0
	for _, r := range src {
		col++
		if unicode.IsSpace(r) {
			continue
		}
		k := b.Len()
		b.WriteRune(r)
		for ; k < b.Len(); k++ {
			s.cols = append(s.cols, col)
		}
	}
	s.text = b.String()
	s.end = col + 1
	return s
}

// col returns the input column of the byte at index i of the stripped text.
// Indices past the end map to the column after the input.
func (s *source) col(i int) int {
	switch {
	case i < 0:
		return 1
	case i >= len(s.cols):
		return s.end
	default:
		return s.cols[i]
	}
}

// match finds the parenthesis closing the one at left, looking no further
// than right. The result is -1 if there is none.
func (s *source) match(left, right int) int {
	depth := 0
	for i := left; i <= right; i++ {
		switch s.text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// split finds the operator at which to divide the window: among operators
// outside parentheses, the last one with the lowest rank. The result is -1 if
// there are no such operators.
func (s *source) split(left, right int) (int, error) {
	k, best := -1, 0
	depth, open := 0, -1
	for i := left; i <= right; i++ {
		c := s.text[i]
		switch c {
		case '(':
			if depth == 0 {
				open = i
			}
			depth++
		case ')':
			depth--
			if depth < 0 {
				return -1, &BracketError{Col: s.col(i)}
			}
		default:
			if depth != 0 {
				continue
			}
			// Ties go to the rightmost operator so that chains of equal rank
			// associate to the left.
			if r := rank(c); r > 0 && (k < 0 || r <= best) {
				k, best = i, r
			}
		}
	}
	if depth > 0 {
		return -1, &BracketError{Col: s.col(open), Open: true}
	}
	return k, nil
}

// rank gets the precedence rank of an operator byte. Lower ranks bind more
// loosely. Bytes which are not operators have rank 0.
func rank(c byte) int {
	switch c {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	default:
		return 0
	}
}
