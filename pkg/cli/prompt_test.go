package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-mizutani/codefetch/pkg/cli"
	"github.com/m-mizutani/gt"
)

func TestPrompter_Ask(t *testing.T) {
	t.Run("returns trimmed answer", func(t *testing.T) {
		var out bytes.Buffer
		p := cli.NewPrompter(strings.NewReader("  hello world  \n"), &out)

		answer, err := p.Ask("Search query")
		gt.NoError(t, err)
		gt.Equal(t, answer, "hello world")
		gt.True(t, strings.Contains(out.String(), "Search query: "))
	})

	t.Run("EOF yields empty answer", func(t *testing.T) {
		var out bytes.Buffer
		p := cli.NewPrompter(strings.NewReader(""), &out)

		answer, err := p.Ask("Anything")
		gt.NoError(t, err)
		gt.Equal(t, answer, "")
	})
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		n       int
		want    []int
		wantErr bool
	}{
		{
			name:  "all selects every index",
			input: "all",
			n:     3,
			want:  []int{0, 1, 2},
		},
		{
			name:  "ALL is case insensitive",
			input: "ALL",
			n:     2,
			want:  []int{0, 1},
		},
		{
			name:  "comma separated one-based numbers",
			input: "1,3",
			n:     3,
			want:  []int{0, 2},
		},
		{
			name:  "whitespace around entries",
			input: " 2 , 3 ",
			n:     3,
			want:  []int{1, 2},
		},
		{
			name:  "out of range entries are dropped",
			input: "0,2,99",
			n:     3,
			want:  []int{1},
		},
		{
			name:    "non-numeric entry",
			input:   "1,two",
			n:       3,
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "  ",
			n:       3,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cli.ParseSelection(tt.input, tt.n)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}

			gt.NoError(t, err)
			gt.Equal(t, got, tt.want)
		})
	}
}
