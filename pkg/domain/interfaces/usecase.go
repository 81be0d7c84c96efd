package interfaces

import (
	"context"

	"github.com/m-mizutani/codefetch/pkg/domain/model"
)

// SearchUseCase paginates through code search results
type SearchUseCase interface {
	Search(ctx context.Context, query model.Query) (*model.SearchOutput, error)
}

// DownloadUseCase downloads a batch of tasks with bounded concurrency.
// Outcome i always corresponds to task i; per-task failures are recorded in
// the outcome and never abort the batch.
type DownloadUseCase interface {
	Download(ctx context.Context, tasks []model.Task) []model.Outcome
}
