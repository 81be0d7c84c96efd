package interfaces

import (
	"context"

	"github.com/m-mizutani/codefetch/pkg/domain/model"
)

// CodeSearchClient defines operations for the remote code search service
type CodeSearchClient interface {
	// SearchCode fetches one page of code search results
	SearchCode(ctx context.Context, query model.Query, page, perPage int) (*model.SearchPage, error)

	// FetchContent retrieves the decoded file content of a search result
	FetchContent(ctx context.Context, result model.SearchResult) ([]byte, error)
}
