package github

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
)

const searchIssuesPath = "search/issues"

// searchParamOrder is the order parameters are written in the query string.
var searchParamOrder = []string{"q", "sort", "order", "page", "per_page"}

// SearchQuery is the wire form of one issue search request.
type SearchQuery struct {
	Repository string
	Sort       string
	Order      string
	// Page is one-based, as the API expects.
	Page    int
	PerPage int
}

// searchParams mirrors SearchQuery with the API's parameter names.
type searchParams struct {
	Q       string `url:"q"`
	Sort    string `url:"sort,omitempty"`
	Order   string `url:"order,omitempty"`
	Page    int    `url:"page"`
	PerPage int    `url:"per_page"`
}

// NewSearchQuery translates table state into a SearchQuery. pageIndex is zero-based
// and becomes page pageIndex+1 on the wire.
func NewSearchQuery(repository, sort, order string, pageIndex, pageSize int) SearchQuery {
	return SearchQuery{
		Repository: repository,
		Sort:       sort,
		Order:      order,
		Page:       pageIndex + 1,
		PerPage:    pageSize,
	}
}

// Validate rejects queries the search endpoint cannot serve.
func (q SearchQuery) Validate() error {
	if q.Repository == "" {
		return fmt.Errorf("search query has no repository")
	}
	switch q.Order {
	case "", "asc", "desc":
	default:
		return fmt.Errorf("invalid sort order %q, expected asc or desc", q.Order)
	}
	if q.Page < 1 {
		return fmt.Errorf("invalid page %d, pages start at 1", q.Page)
	}
	if q.PerPage < 1 {
		return fmt.Errorf("invalid page size %d", q.PerPage)
	}
	return nil
}

// BuildSearchURL returns the fully qualified search URL for q, resolved against
// the API root baseURL, with parameters as q, sort, order, page, per_page.
// With no sort field both sort and order are left out so the API falls back to
// best-match ordering; a sort field without a direction is sent with an empty
// order.
func BuildSearchURL(baseURL string, q SearchQuery) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid github api url: %w", err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	values, err := query.Values(searchParams{
		Q:       "repo:" + q.Repository,
		Sort:    q.Sort,
		Order:   q.Order,
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode search query: %w", err)
	}
	if q.Sort != "" && q.Order == "" {
		values.Set("order", "")
	}

	u := base.ResolveReference(&url.URL{Path: searchIssuesPath})
	u.RawQuery = encodeInOrder(values, searchParamOrder)
	return u.String(), nil
}

// encodeInOrder is url.Values.Encode without the key sort: keys are written in
// the given order and keys not listed are dropped.
func encodeInOrder(values url.Values, keys []string) string {
	var b strings.Builder
	for _, k := range keys {
		for _, v := range values[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}
