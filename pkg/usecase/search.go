package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/codefetch/pkg/domain/interfaces"
	"github.com/m-mizutani/codefetch/pkg/domain/model"
	"github.com/m-mizutani/codefetch/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// apiResultCap is the hard cap the search API places on total results
	apiResultCap = 1000

	// defaultPageSize is the API maximum per page
	defaultPageSize = 100

	defaultLimit = 30
)

type searchUseCase struct {
	client   interfaces.CodeSearchClient
	pageSize int
}

// SearchOption is a functional option for the search use case
type SearchOption func(*searchUseCase)

// WithPageSize overrides the per-page item count
func WithPageSize(n int) SearchOption {
	return func(uc *searchUseCase) {
		if n > 0 {
			uc.pageSize = n
		}
	}
}

// NewSearch creates a new instance of SearchUseCase
func NewSearch(client interfaces.CodeSearchClient, opts ...SearchOption) interfaces.SearchUseCase {
	uc := &searchUseCase{
		client:   client,
		pageSize: defaultPageSize,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Search requests pages in increasing order from page 1, deduplicating on
// (repository, path) and aggregating until the limit, an empty page, a rate
// limit rejection or the API result cap. A rate limit stop returns the
// partial results without an error; other page errors return the partial
// results alongside the error.
func (uc *searchUseCase) Search(ctx context.Context, query model.Query) (*model.SearchOutput, error) {
	logger := ctxlog.From(ctx)

	limit := query.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > apiResultCap {
		limit = apiResultCap
	}

	out := &model.SearchOutput{}
	seen := make(map[string]struct{})

	for page := 1; ; page++ {
		pg, err := uc.client.SearchCode(ctx, query, page, uc.pageSize)
		if err != nil {
			if errors.Is(err, types.ErrRateLimited) {
				logger.Warn("rate limit reached, returning partial results",
					"query", query.Term(),
					"page", page,
					"collected", len(out.Results),
				)
				out.Stopped = model.StopRateLimited

				return out, nil
			}

			out.Stopped = model.StopError

			return out, goerr.Wrap(err, "failed to fetch search page", goerr.V("page", page))
		}

		out.Total = pg.Total

		if len(pg.Items) == 0 {
			out.Stopped = model.StopExhausted

			return out, nil
		}

		for _, item := range pg.Items {
			if _, ok := seen[item.Key()]; ok {
				continue
			}
			seen[item.Key()] = struct{}{}
			out.Results = append(out.Results, item)
		}

		logger.Debug("collected search page",
			"page", page,
			"page_items", len(pg.Items),
			"collected", len(out.Results),
		)

		if len(out.Results) >= limit {
			out.Results = out.Results[:limit]
			if query.Limit > apiResultCap {
				out.Stopped = model.StopAPICap
			} else {
				out.Stopped = model.StopLimit
			}

			return out, nil
		}

		// The API refuses to serve results past its cap regardless of limit
		if page*uc.pageSize >= apiResultCap {
			out.Stopped = model.StopAPICap

			return out, nil
		}
	}
}
