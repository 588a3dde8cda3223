package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	historyFile = ".recurse_history"
	prompt      = "> "
)

// repl reads and evaluates expressions from the terminal until EOF or :quit.
// The result is the process exit code.
func (ev *evaluator) repl() int {
	fmt.Fprintln(ev.out, "Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit.")

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(prompt)
		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(ev.out)
			return 0
		default:
			fmt.Fprintln(ev.errs, red(err.Error()))
			return 1
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == ":quit":
			return 0
		case strings.HasPrefix(line, ":"):
			fmt.Fprintln(ev.out, "unknown command. Type :quit to exit.")
			continue
		}
		ev.run(line)
		ln.AppendHistory(line)
	}
}
