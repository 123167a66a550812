package cli

import (
	"fmt"
	"io"

	"github.com/mattn/go-isatty"
)

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

// Console prints per-word outcomes. Colors are used only on a terminal.
type Console struct {
	out   io.Writer
	color bool
}

// NewConsole creates a Console that colors its output when out is a terminal.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out, color: isTerminal(out)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Success reports a processed word.
func (c *Console) Success(word string) {
	fmt.Fprintf(c.out, "Word %q processed %s\n", word, c.paint(ansiGreen, "successfully"))
}

// Error reports a failure.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.out, "[%s] %s\n", c.paint(ansiRed, "Error"), msg)
}

// Info prints a plain line.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) paint(color, s string) string {
	if !c.color {
		return s
	}
	return color + s + ansiReset
}
