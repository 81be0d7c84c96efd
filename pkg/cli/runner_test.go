package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/m-mizutani/codefetch/pkg/domain/interfaces"
	"github.com/m-mizutani/codefetch/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func init() {
	color.NoColor = true
}

type stubSearch struct {
	out   *model.SearchOutput
	err   error
	calls int
}

func (s *stubSearch) Search(ctx context.Context, query model.Query) (*model.SearchOutput, error) {
	s.calls++
	return s.out, s.err
}

type stubDownload struct {
	got []model.Task
}

func (s *stubDownload) Download(ctx context.Context, tasks []model.Task) []model.Outcome {
	s.got = tasks

	outcomes := make([]model.Outcome, len(tasks))
	for i, task := range tasks {
		outcomes[i] = model.Outcome{Task: task, Bytes: 10}
	}

	return outcomes
}

func newTestRunner(search *stubSearch, download *stubDownload, input string) (*searchRunner, *bytes.Buffer, *model.ContentValidator) {
	var out bytes.Buffer
	var gotValidator model.ContentValidator

	runner := &searchRunner{
		searchUC: search,
		newDownloadUC: func(v model.ContentValidator) interfaces.DownloadUseCase {
			gotValidator = v
			return download
		},
		prompter:    NewPrompter(strings.NewReader(input), &out),
		out:         &out,
		destination: "out",
	}

	return runner, &out, &gotValidator
}

func TestRunner_RunOnce_PromptedSelection(t *testing.T) {
	ctx := context.Background()

	results := []model.SearchResult{
		{Repository: "org/repo", Path: "src/app.py"},
		{Repository: "org/repo", Path: "src/other.py"},
		{Repository: "other/ml", Path: "train.py"},
	}
	search := &stubSearch{out: &model.SearchOutput{Results: results, Total: 3, Stopped: model.StopExhausted}}
	download := &stubDownload{}

	runner, out, _ := newTestRunner(search, download, "1,3\n")

	gt.NoError(t, runner.runOnce(ctx, model.Query{Text: "q", Limit: 30}))

	gt.Equal(t, search.calls, 1)
	gt.Equal(t, len(download.got), 2)
	gt.Equal(t, download.got[0].Destination, filepath.Join("out", "org", "repo", "src", "app.py"))
	gt.Equal(t, download.got[1].Destination, filepath.Join("out", "other", "ml", "train.py"))
	gt.True(t, strings.Contains(out.String(), "Download complete"))
}

func TestRunner_RunOnce_DownloadAll(t *testing.T) {
	ctx := context.Background()

	search := &stubSearch{out: &model.SearchOutput{
		Results: []model.SearchResult{
			{Repository: "org/repo", Path: "a.go"},
			{Repository: "org/repo", Path: "b.go"},
		},
		Total:   2,
		Stopped: model.StopExhausted,
	}}
	download := &stubDownload{}

	runner, _, _ := newTestRunner(search, download, "")
	runner.all = true

	gt.NoError(t, runner.runOnce(ctx, model.Query{Text: "q"}))
	gt.Equal(t, len(download.got), 2)
}

func TestRunner_RunOnce_NoResults(t *testing.T) {
	ctx := context.Background()

	search := &stubSearch{out: &model.SearchOutput{Stopped: model.StopExhausted}}
	download := &stubDownload{}

	runner, out, _ := newTestRunner(search, download, "")

	gt.NoError(t, runner.runOnce(ctx, model.Query{Text: "q"}))
	gt.True(t, strings.Contains(out.String(), "No results found."))
	gt.Equal(t, len(download.got), 0)
}

func TestRunner_RunOnce_ValidatorWiring(t *testing.T) {
	ctx := context.Background()

	search := &stubSearch{out: &model.SearchOutput{
		Results: []model.SearchResult{{Repository: "org/repo", Path: "a.go"}},
		Total:   1,
	}}

	t.Run("validator enabled by default", func(t *testing.T) {
		download := &stubDownload{}
		runner, _, validator := newTestRunner(search, download, "")
		runner.all = true

		gt.NoError(t, runner.runOnce(ctx, model.Query{Text: "needle"}))
		gt.True(t, *validator != nil)
	})

	t.Run("no-validate disables validator", func(t *testing.T) {
		download := &stubDownload{}
		runner, _, validator := newTestRunner(search, download, "")
		runner.all = true
		runner.noValidate = true

		gt.NoError(t, runner.runOnce(ctx, model.Query{Text: "needle"}))
		gt.True(t, *validator == nil)
	})
}

func TestRunner_Interactive_QuitsOnEmptyQuery(t *testing.T) {
	ctx := context.Background()

	search := &stubSearch{out: &model.SearchOutput{}}
	download := &stubDownload{}

	runner, _, _ := newTestRunner(search, download, "\n")

	gt.NoError(t, runner.interactive(ctx))
	gt.Equal(t, search.calls, 0)
}

func TestRunner_Interactive_OneRoundThenQuit(t *testing.T) {
	ctx := context.Background()

	search := &stubSearch{out: &model.SearchOutput{
		Results: []model.SearchResult{{Repository: "org/repo", Path: "a.py"}},
		Total:   1,
	}}
	download := &stubDownload{}

	// query, language, limit, selection, then empty query to quit
	input := "tensorflow\npython\n10\nall\n\n"
	runner, _, _ := newTestRunner(search, download, input)

	gt.NoError(t, runner.interactive(ctx))
	gt.Equal(t, search.calls, 1)
	gt.Equal(t, len(download.got), 1)
}
