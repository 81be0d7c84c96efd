package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/m-mizutani/codefetch/pkg/domain/interfaces"
	"github.com/m-mizutani/codefetch/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

var (
	numColor  = color.New(color.FgCyan)
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
)

// searchRunner drives one or more search-then-download rounds. It holds only
// interfaces and writers so the flow is testable without a terminal.
type searchRunner struct {
	searchUC      interfaces.SearchUseCase
	newDownloadUC func(v model.ContentValidator) interfaces.DownloadUseCase

	prompter    *Prompter
	out         io.Writer
	destination string
	all         bool
	noValidate  bool
}

// interactive prompts for query parameters until an empty query is entered
func (r *searchRunner) interactive(ctx context.Context) error {
	for {
		text, err := r.prompter.Ask("Search query (empty to quit)")
		if err != nil {
			return err
		}
		if text == "" {
			return nil
		}

		language, err := r.prompter.Ask("Filter by language (optional)")
		if err != nil {
			return err
		}

		limitAnswer, err := r.prompter.Ask("Maximum number of results (default: 30)")
		if err != nil {
			return err
		}
		limit := 30
		if limitAnswer != "" {
			if n, err := strconv.Atoi(limitAnswer); err == nil && n > 0 {
				limit = n
			}
		}

		query := model.Query{Text: text, Language: language, Limit: limit}
		if err := r.runOnce(ctx, query); err != nil {
			return err
		}
	}
}

// runOnce executes one search round: paginate, select, download, summarize
func (r *searchRunner) runOnce(ctx context.Context, query model.Query) error {
	fmt.Fprintf(r.out, "Searching for %q...\n", query.Term())

	out, err := r.searchUC.Search(ctx, query)
	if err != nil {
		return goerr.Wrap(err, "search failed", goerr.V("query", query.Term()))
	}

	if out.Stopped == model.StopRateLimited {
		warnColor.Fprintln(r.out, "Rate limit reached, showing partial results.")
	}

	if len(out.Results) == 0 {
		fmt.Fprintln(r.out, "No results found.")
		return nil
	}

	fmt.Fprintf(r.out, "Found %d matching files (of %d total matches).\n", len(out.Results), out.Total)

	selected := out.Results
	if !r.all {
		selected, err = r.selectResults(out.Results)
		if err != nil {
			return err
		}
		if len(selected) == 0 {
			fmt.Fprintln(r.out, "No valid items selected.")
			return nil
		}
	}

	var validator model.ContentValidator
	if !r.noValidate {
		validator = model.TermValidator(query.Text)
		fmt.Fprintln(r.out, "Files that don't contain the search phrase will be skipped.")
	}

	tasks := make([]model.Task, 0, len(selected))
	for _, result := range selected {
		tasks = append(tasks, model.NewTask(r.destination, result))
	}

	fmt.Fprintf(r.out, "Downloading %d files...\n", len(tasks))
	outcomes := r.newDownloadUC(validator).Download(ctx, tasks)
	r.printSummary(outcomes)

	return nil
}

func (r *searchRunner) selectResults(results []model.SearchResult) ([]model.SearchResult, error) {
	for i, result := range results {
		fmt.Fprintf(r.out, "%s %s\n", numColor.Sprintf("%3d.", i+1), result.Key())
	}

	answer, err := r.prompter.Ask("\nEnter numbers to download (comma-separated) or 'all'")
	if err != nil {
		return nil, err
	}

	indices, err := ParseSelection(answer, len(results))
	if err != nil {
		return nil, err
	}

	selected := make([]model.SearchResult, 0, len(indices))
	for _, idx := range indices {
		selected = append(selected, results[idx])
	}

	return selected, nil
}

func (r *searchRunner) printSummary(outcomes []model.Outcome) {
	summary := model.Summarize(outcomes)

	fmt.Fprintf(r.out, "Download complete: %s, %s (%s written)\n",
		okColor.Sprintf("%d succeeded", summary.Succeeded),
		failColor.Sprintf("%d failed", summary.Failed),
		humanize.Bytes(uint64(summary.Bytes)),
	)

	for _, o := range outcomes {
		if o.Succeeded() {
			continue
		}
		fmt.Fprintf(r.out, "  %s %s: %v\n", failColor.Sprint("failed"), o.Task.Result.Key(), o.Err)
	}
}
