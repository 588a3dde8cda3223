package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/recursive"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb     string
		nl, echo, interp bool
		prec, depth      int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.IntVar(&prec, "p", 0, "precision of calculations in bits (0 for float64)")
	flag.IntVar(&depth, "depth", recursive.DefaultMaxDepth, "maximum nesting depth of expressions")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&interp, "i", false, "read expressions interactively")
	flag.Parse()
	if prec < 0 {
		log.Fatalf("precision (%d) must not be negative", prec)
	}
	if depth <= 0 {
		log.Fatalf("depth (%d) must be positive", depth)
	}

	ev := &evaluator{
		out:   os.Stdout,
		errs:  os.Stderr,
		verb:  verb + "\n",
		prec:  uint(prec),
		echo:  echo,
		depth: depth,
	}
	if interp {
		os.Exit(ev.repl())
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		s, err := readsrcs(f, nl)
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, s...)
	}
	srcs = append(srcs, flag.Args()...)

	failed := false
	for _, src := range srcs {
		if !ev.run(src) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

// readsrcs reads expressions from r. If lines is true, each non-blank line is
// one expression. Otherwise, the entire input is one expression.
func readsrcs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		srcs = append(srcs, sc.Text())
	}
	return srcs, sc.Err()
}
