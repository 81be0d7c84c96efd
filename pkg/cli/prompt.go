package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Prompter reads interactive answers line by line
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading from in and printing labels to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints a label and returns the trimmed answer. EOF with no pending
// input is treated as an empty answer.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", goerr.Wrap(err, "failed to read input")
	}

	return strings.TrimSpace(line), nil
}

// ParseSelection converts a user selection into zero-based indices over n
// items. Accepts "all" or a comma-separated list of 1-based numbers.
// Out-of-range numbers are dropped; non-numeric entries are an error.
func ParseSelection(input string, n int) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, goerr.New("empty selection")
	}

	if strings.EqualFold(input, "all") {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}

		return indices, nil
	}

	var indices []int
	for _, part := range strings.Split(input, ",") {
		num, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, goerr.Wrap(err, "invalid selection", goerr.V("entry", part))
		}

		idx := num - 1
		if idx < 0 || idx >= n {
			continue
		}
		indices = append(indices, idx)
	}

	return indices, nil
}
