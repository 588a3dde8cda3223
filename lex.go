package recursive

import (
	"errors"
	"strconv"
)

// num parses the window [left, right] as a numeric literal.
func (s *source) num(left, right int) (*node, error) {
	text := s.text[left : right+1]
	if !isnumeral(text) {
		return nil, &NumberError{Col: s.col(left), Text: text}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// isnumeral accepts only what ParseFloat accepts.
		panic("recursive: invalid number: " + text + " (" + err.Error() + ")")
	}
	// Literals too large for float64 are infinite, the same as ParseFloat
	// gives along with ErrRange.
	return &node{kind: nodeNum, name: text, val: v, col: s.col(left)}, nil
}

// isnumeral reports whether s is one or more ASCII decimal digits with at most
// one decimal point anywhere among them.
func isnumeral(s string) bool {
	var dig, dot bool
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			dig = true
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return dig
}
