package recursive_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/recursive"
)

func ExampleEval() {
	r, err := recursive.Eval("(3 + 5) * 2 - 10 / 4")
	fmt.Println(r, err)

	_, err = recursive.Eval("10 / (5 - 5)")
	fmt.Println(err, errors.Is(err, recursive.ErrDivisionByZero))

	_, err = recursive.Eval("3 + * 2")
	fmt.Println(err, errors.Is(err, recursive.ErrInvalidExpression))

	// Output:
	// 13.5 <nil>
	// 4: division by zero true
	// 5: invalid operator "*" true
}

func ExampleParse() {
	e, err := recursive.Parse("8 - 4 - 2")
	if err != nil {
		panic(err)
	}
	r, _ := e.Eval()
	fmt.Println(e, r)

	// Output:
	// ([(8) - (4)] - [2]) 2
}

func ExampleSearchAll() {
	s := []int{1, 2, 3, 4, 4, 5, 6}
	fmt.Println(recursive.Search(s, 6), recursive.SearchAll(s, 4), recursive.SumDigits(-1234))

	// Output:
	// 6 [3 4] 10
}
