package curation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/heartmarshall/ankiwiktionary/internal/domain"
)

// Selection is the parsed answer to a numeric prompt.
type Selection struct {
	Indices []int // 1-based, in the order given, without duplicates
	Skip    bool
}

// Prompter asks questions on out and reads answers line by line from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Printf writes free-form text between prompts.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// AskLine prints question and returns the trimmed answer.
func (p *Prompter) AskLine(question string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", question)
	return p.readLine()
}

// AskIndices asks for any number of 1-based indices in [1, limit], separated by
// spaces or commas. An empty answer is a skip. Malformed or out-of-range input
// repeats the question until a valid answer or the end of input.
func (p *Prompter) AskIndices(question string, limit int) (Selection, error) {
	return p.ask(question, limit, false)
}

// AskIndex is AskIndices restricted to exactly one index.
func (p *Prompter) AskIndex(question string, limit int) (Selection, error) {
	return p.ask(question, limit, true)
}

func (p *Prompter) ask(question string, limit int, single bool) (Selection, error) {
	hint := "numbers separated by spaces"
	if single {
		hint = "one number"
	}
	for {
		fmt.Fprintf(p.out, "%s [1-%d, %s; empty to skip]: ", question, limit, hint)
		answer, err := p.readLine()
		if err != nil {
			return Selection{}, err
		}

		sel, err := parseSelection(answer, limit)
		if err == nil && single && len(sel.Indices) > 1 {
			err = errors.New("expected a single number")
		}
		if err != nil {
			fmt.Fprintf(p.out, "Invalid input: %v\n", err)
			continue
		}
		return sel, nil
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", domain.ErrInputClosed
			}
		} else {
			return "", fmt.Errorf("read answer: %w", err)
		}
	}
	return strings.TrimSpace(line), nil
}

func parseSelection(answer string, limit int) (Selection, error) {
	fields := strings.FieldsFunc(answer, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
	if len(fields) == 0 {
		return Selection{Skip: true}, nil
	}

	seen := make(map[int]struct{}, len(fields))
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Selection{}, fmt.Errorf("%q is not a number", f)
		}
		if n < 1 || n > limit {
			return Selection{}, fmt.Errorf("%d is out of range 1-%d", n, limit)
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		indices = append(indices, n)
	}
	return Selection{Indices: indices}, nil
}
