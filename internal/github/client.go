// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-github/v41/github"
	"golang.org/x/oauth2"

	"github.com/danielolaszy/issuetable/internal/config"
	"github.com/danielolaszy/issuetable/internal/logging"
	"github.com/danielolaszy/issuetable/pkg/models"
)

const userAgent = "issuetable"

// ErrMalformedResponse is returned when a search response decodes without an
// items array, e.g. an empty or null body.
var ErrMalformedResponse = errors.New("malformed search response")

// Client encapsulates the GitHub API client and the repository it searches.
type Client struct {
	client     *github.Client
	repository string
}

// NewClient creates a GitHub API client from configuration. The token is optional:
// without it requests are anonymous and subject to lower rate limits.
// No request is made until the client is used.
func NewClient(cfg *config.Config) (*Client, error) {
	apiURL := APIURL(cfg.GitHub.Domain)

	logging.Info("github configuration",
		"domain", cfg.GitHub.Domain,
		"api_url", apiURL,
		"repository", cfg.Repository,
		"token", logging.MaskSensitive(cfg.GitHub.Token))

	var httpClient *http.Client
	if cfg.GitHub.Token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: cfg.GitHub.Token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	return newClient(httpClient, apiURL, cfg.Repository)
}

// newClient wires a go-github client to an arbitrary API root. Tests point it at
// an httptest server.
func newClient(httpClient *http.Client, apiURL string, repository string) (*Client, error) {
	if err := config.ValidateRepository(repository); err != nil {
		return nil, err
	}

	parsedURL, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid github api url: %w", err)
	}

	client := github.NewClient(httpClient)
	client.BaseURL = parsedURL
	client.UserAgent = userAgent

	return &Client{client: client, repository: repository}, nil
}

// APIURL returns the REST API root for a GitHub host. github.com and an empty
// domain map to api.github.com; anything else is treated as GitHub Enterprise.
func APIURL(domain string) string {
	if domain == "" || domain == config.DefaultDomain {
		return "https://api.github.com/"
	}
	return fmt.Sprintf("https://%s/api/v3/", domain)
}

// Repository returns the "owner/repo" the client searches.
func (c *Client) Repository() string {
	return c.repository
}

// BaseURL returns the API root requests are resolved against.
func (c *Client) BaseURL() string {
	return c.client.BaseURL.String()
}

// VerifyToken checks the configured token by fetching the authenticated user.
// It returns the user's login.
func (c *Client) VerifyToken(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	user, resp, err := c.client.Users.Get(ctx, "")
	if err != nil {
		logging.Error("failed to test github token",
			"error", err,
			"status_code", statusCode(resp))
		return "", fmt.Errorf("error testing github token: %w", err)
	}

	logging.Info("github authentication successful", "username", user.GetLogin())
	return user.GetLogin(), nil
}

// GetRepoIssues fetches one page of the configured repository's issues.
// pageIndex is zero-based; order is "asc", "desc" or empty.
func (c *Client) GetRepoIssues(ctx context.Context, sort, order string, pageIndex, pageSize int) (*models.SearchResult, error) {
	return c.SearchIssues(ctx, NewSearchQuery(c.repository, sort, order, pageIndex, pageSize))
}

// SearchIssues performs a single GET against the issue search endpoint and decodes
// the response. Transport failures, non-2xx statuses and malformed bodies are
// all returned as errors; nothing is retried.
func (c *Client) SearchIssues(ctx context.Context, q SearchQuery) (*models.SearchResult, error) {
	requestURL, err := BuildSearchURL(c.client.BaseURL.String(), q)
	if err != nil {
		return nil, err
	}

	logging.Debug("searching github issues", "url", requestURL)

	req, err := c.client.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	var result models.SearchResult
	resp, err := c.client.Do(ctx, req, &result)
	if err != nil {
		logging.Warn("failed to search github issues",
			"repository", q.Repository,
			"error", err,
			"status_code", statusCode(resp))
		return nil, fmt.Errorf("failed to search GitHub issues: %w", err)
	}
	if result.Items == nil {
		logging.Warn("github search response has no items",
			"repository", q.Repository,
			"status_code", statusCode(resp))
		return nil, fmt.Errorf("failed to search GitHub issues: %w", ErrMalformedResponse)
	}

	logging.Debug("searched github issues",
		"repository", q.Repository,
		"page", q.Page,
		"items", len(result.Items),
		"total_count", result.TotalCount)

	return &result, nil
}

// StatusCode extracts the HTTP status of a failed API call, or 0 if the request
// never produced a response.
func StatusCode(err error) int {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	return 0
}

func statusCode(resp *github.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}
