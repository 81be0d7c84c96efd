package types

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors shared across layers. Infra maps API failures onto these
// so use cases can branch with errors.Is without importing go-github types.
var (
	// ErrRateLimited indicates the API refused further requests. Pagination
	// stops early and already fetched results are kept.
	ErrRateLimited = goerr.New("api rate limit exhausted")

	// ErrInvalidResponse indicates a malformed API payload
	ErrInvalidResponse = goerr.New("invalid api response")

	// ErrContentUnavailable indicates binary or oversized content that cannot
	// be retrieved as text
	ErrContentUnavailable = goerr.New("content unavailable")

	// ErrNotFound indicates the file no longer exists at fetch time
	ErrNotFound = goerr.New("file not found")

	// ErrContentRejected indicates downloaded content did not match the
	// configured validator
	ErrContentRejected = goerr.New("content rejected by validator")
)
