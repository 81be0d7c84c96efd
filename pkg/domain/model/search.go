package model

// Query represents one code search request
type Query struct {
	Text     string // Search phrase
	Language string // Optional language qualifier
	Limit    int    // Maximum number of results to collect
}

// Term renders the query as a GitHub search expression
func (q Query) Term() string {
	if q.Language == "" {
		return q.Text
	}

	return q.Text + " language:" + q.Language
}

// SearchResult represents a single code search hit. Identity is the
// (Repository, Path) pair; results are immutable once returned.
type SearchResult struct {
	Repository string  // Full repository name, e.g. "org/repo"
	Path       string  // File path within the repository
	SHA        string  // Blob SHA reported by the API
	HTMLURL    string  // Web URL of the file
	Score      float64 // Relevance score reported by the API
}

// Key returns the identity of the result
func (r SearchResult) Key() string {
	return r.Repository + "/" + r.Path
}

// SearchPage represents one page of search results as returned by the API
type SearchPage struct {
	Items []SearchResult
	Total int // Total match count reported by the API
}

// StopReason explains why pagination terminated
type StopReason string

const (
	StopNone        StopReason = ""
	StopLimit       StopReason = "limit_reached"
	StopExhausted   StopReason = "exhausted"
	StopRateLimited StopReason = "rate_limited"
	StopAPICap      StopReason = "api_cap"
	StopError       StopReason = "error"
)

// SearchOutput is the aggregate result of a paginated search. Results are
// deduplicated by Key and preserve the API relevance ordering with pages
// concatenated in request order.
type SearchOutput struct {
	Results []SearchResult
	Total   int // Total match count reported by the API
	Stopped StopReason
}
