package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/codefetch/pkg/domain/interfaces"
	"github.com/m-mizutani/codefetch/pkg/domain/model"
	"github.com/m-mizutani/codefetch/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const defaultTimeout = 30 * time.Second

type clientConfig struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*clientConfig)

// WithToken sets the personal access token used for authentication.
// An empty token leaves the client unauthenticated.
func WithToken(token string) Option {
	return func(c *clientConfig) {
		c.token = token
	}
}

// WithBaseURL overrides the API base URL, mainly for GitHub Enterprise and
// tests
func WithBaseURL(baseURL string) Option {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = httpClient
	}
}

type client struct {
	gh *github.Client
}

// New creates a code search client backed by the GitHub API
func New(opts ...Option) (interfaces.CodeSearchClient, error) {
	cfg := &clientConfig{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	gh := github.NewClient(cfg.httpClient)
	gh.UserAgent = types.AppName + "/" + types.Version

	if cfg.token != "" {
		gh = gh.WithAuthToken(cfg.token)
	}

	if cfg.baseURL != "" {
		u, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid API base URL", goerr.V("url", cfg.baseURL))
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		gh.BaseURL = u
	}

	return &client{gh: gh}, nil
}

// codeSearchResponse mirrors the code search payload. go-github's CodeResult
// drops the per-item score, so the endpoint is called through NewRequest/Do
// with our own response type.
type codeSearchResponse struct {
	TotalCount        int  `json:"total_count"`
	IncompleteResults bool `json:"incomplete_results"`
	Items             []struct {
		Path       string  `json:"path"`
		SHA        string  `json:"sha"`
		HTMLURL    string  `json:"html_url"`
		Score      float64 `json:"score"`
		Repository struct {
			FullName string `json:"full_name"`
		} `json:"repository"`
	} `json:"items"`
}

// SearchCode fetches one page of code search results
func (c *client) SearchCode(ctx context.Context, query model.Query, page, perPage int) (*model.SearchPage, error) {
	params := url.Values{}
	params.Set("q", query.Term())
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))

	req, err := c.gh.NewRequest("GET", "search/code?"+params.Encode(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create search request", goerr.V("query", query.Term()))
	}

	var body codeSearchResponse
	resp, err := c.gh.Do(ctx, req, &body)
	if err != nil {
		return nil, mapSearchError(err, query, page)
	}

	ctxlog.From(ctx).Debug("fetched code search page",
		"query", query.Term(),
		"page", page,
		"items", len(body.Items),
		"total", body.TotalCount,
		"rate_remaining", resp.Rate.Remaining,
	)

	pg := &model.SearchPage{
		Items: make([]model.SearchResult, 0, len(body.Items)),
		Total: body.TotalCount,
	}
	for _, item := range body.Items {
		pg.Items = append(pg.Items, model.SearchResult{
			Repository: item.Repository.FullName,
			Path:       item.Path,
			SHA:        item.SHA,
			HTMLURL:    item.HTMLURL,
			Score:      item.Score,
		})
	}

	return pg, nil
}

// FetchContent retrieves the decoded file content of a search result via the
// contents API
func (c *client) FetchContent(ctx context.Context, result model.SearchResult) ([]byte, error) {
	owner, repo, ok := strings.Cut(result.Repository, "/")
	if !ok {
		return nil, goerr.New("malformed repository name", goerr.V("repository", result.Repository))
	}

	fileContent, _, _, err := c.gh.Repositories.GetContents(ctx, owner, repo, result.Path, nil)
	if err != nil {
		return nil, mapContentError(err, result)
	}

	if fileContent == nil {
		return nil, goerr.Wrap(types.ErrContentUnavailable, "path is not a regular file",
			goerr.V("file", result.Key()))
	}

	content, err := fileContent.GetContent()
	if err != nil {
		// Decoding fails for binary blobs and files above the contents API
		// size limit
		return nil, goerr.Wrap(types.ErrContentUnavailable, err.Error(),
			goerr.V("file", result.Key()))
	}

	return []byte(content), nil
}

func mapSearchError(err error, query model.Query, page int) error {
	if rerr := asRateLimit(err); rerr != nil {
		return goerr.Wrap(types.ErrRateLimited, "code search rejected",
			goerr.V("query", query.Term()), goerr.V("page", page))
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return goerr.Wrap(types.ErrInvalidResponse, "malformed code search payload",
			goerr.V("page", page))
	}

	var apiErr *github.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		return goerr.Wrap(err, "code search request failed",
			goerr.V("status", apiErr.Response.StatusCode), goerr.V("page", page))
	}

	return goerr.Wrap(err, "code search request failed", goerr.V("page", page))
}

func mapContentError(err error, result model.SearchResult) error {
	if rerr := asRateLimit(err); rerr != nil {
		return goerr.Wrap(types.ErrRateLimited, "content fetch rejected",
			goerr.V("file", result.Key()))
	}

	var apiErr *github.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil && apiErr.Response.StatusCode == http.StatusNotFound {
		return goerr.Wrap(types.ErrNotFound, "not found", goerr.V("file", result.Key()))
	}

	return goerr.Wrap(err, fmt.Sprintf("failed to fetch content of %s", result.Key()))
}

func asRateLimit(err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return rateErr
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return abuseErr
	}

	return nil
}
