package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/zephyrtronium/recursive"
)

var red = color.New(color.FgRed).SprintFunc()

// evaluator evaluates expressions and prints their results.
type evaluator struct {
	out, errs io.Writer
	// verb is the format for results, including a trailing newline.
	verb string
	// prec is the precision for arbitrary-precision evaluation. If it is 0,
	// evaluation uses float64.
	prec  uint
	echo  bool
	depth int
}

// run evaluates one expression and prints the result or the error. The result
// reports whether evaluation succeeded.
func (ev *evaluator) run(src string) bool {
	e, err := recursive.Parse(src, recursive.MaxDepth(ev.depth))
	if err != nil {
		fmt.Fprintln(ev.errs, red(err.Error()))
		return false
	}
	if ev.echo {
		fmt.Fprintf(ev.out, "%v : ", e)
	}
	var r interface{}
	if ev.prec > 0 {
		r, err = e.EvalBig(ev.prec)
	} else {
		r, err = e.Eval()
	}
	if err != nil {
		if ev.echo {
			fmt.Fprintln(ev.out)
		}
		fmt.Fprintln(ev.errs, red(err.Error()))
		return false
	}
	fmt.Fprintf(ev.out, ev.verb, r)
	return true
}
