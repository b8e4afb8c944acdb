package github

import (
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchQueryPageIsOneBased(t *testing.T) {
	testCases := []struct {
		pageIndex int
		pageSize  int
	}{
		{pageIndex: 0, pageSize: 30},
		{pageIndex: 1, pageSize: 10},
		{pageIndex: 2, pageSize: 25},
		{pageIndex: 33, pageSize: 100},
	}

	for _, tc := range testCases {
		q := NewSearchQuery("angular/components", "created", "desc", tc.pageIndex, tc.pageSize)
		assert.Equal(t, tc.pageIndex+1, q.Page)
		assert.Equal(t, tc.pageSize, q.PerPage)
	}
}

func TestBuildSearchURL(t *testing.T) {
	testCases := []struct {
		name       string
		baseURL    string
		sort       string
		order      string
		pageIndex  int
		pageSize   int
		wantPrefix string
		wantRaw    string
		wantQuery  url.Values
	}{
		{
			name:       "Sorted by creation, descending",
			baseURL:    "https://api.github.com/",
			sort:       "created",
			order:      "desc",
			pageIndex:  2,
			pageSize:   25,
			wantPrefix: "https://api.github.com/search/issues?",
			wantRaw:    "q=repo%3Aangular%2Fcomponents&sort=created&order=desc&page=3&per_page=25",
			wantQuery: url.Values{
				"q":        {"repo:angular/components"},
				"sort":     {"created"},
				"order":    {"desc"},
				"page":     {"3"},
				"per_page": {"25"},
			},
		},
		{
			name:       "Sort column without a direction",
			baseURL:    "https://api.github.com/",
			sort:       "created",
			pageIndex:  0,
			pageSize:   30,
			wantPrefix: "https://api.github.com/search/issues?",
			wantRaw:    "q=repo%3Aangular%2Fcomponents&sort=created&order=&page=1&per_page=30",
			wantQuery: url.Values{
				"q":        {"repo:angular/components"},
				"sort":     {"created"},
				"order":    {""},
				"page":     {"1"},
				"per_page": {"30"},
			},
		},
		{
			name:       "No explicit sort",
			baseURL:    "https://api.github.com/",
			pageIndex:  0,
			pageSize:   30,
			wantPrefix: "https://api.github.com/search/issues?",
			wantRaw:    "q=repo%3Aangular%2Fcomponents&page=1&per_page=30",
			wantQuery: url.Values{
				"q":        {"repo:angular/components"},
				"page":     {"1"},
				"per_page": {"30"},
			},
		},
		{
			name:       "GitHub Enterprise API root",
			baseURL:    "https://github.example.com/api/v3/",
			sort:       "updated",
			order:      "asc",
			pageIndex:  0,
			pageSize:   50,
			wantPrefix: "https://github.example.com/api/v3/search/issues?",
			wantQuery: url.Values{
				"q":        {"repo:angular/components"},
				"sort":     {"updated"},
				"order":    {"asc"},
				"page":     {"1"},
				"per_page": {"50"},
			},
		},
		{
			name:       "Base URL without trailing slash",
			baseURL:    "http://127.0.0.1:8080/api",
			sort:       "title",
			order:      "asc",
			pageIndex:  4,
			pageSize:   10,
			wantPrefix: "http://127.0.0.1:8080/api/search/issues?",
			wantQuery: url.Values{
				"q":        {"repo:angular/components"},
				"sort":     {"title"},
				"order":    {"asc"},
				"page":     {"5"},
				"per_page": {"10"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := NewSearchQuery("angular/components", tc.sort, tc.order, tc.pageIndex, tc.pageSize)

			got, err := BuildSearchURL(tc.baseURL, q)
			require.NoError(t, err)
			assert.Contains(t, got, tc.wantPrefix)
			if tc.wantRaw != "" {
				assert.Equal(t, tc.wantPrefix+tc.wantRaw, got)
			}

			parsed, err := url.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, tc.wantQuery, parsed.Query())
		})
	}
}

func TestBuildSearchURLReflectsInputs(t *testing.T) {
	for _, order := range []string{"", "asc", "desc"} {
		for _, sort := range []string{"", "created", "updated", "title"} {
			for pageIndex := 0; pageIndex < 5; pageIndex++ {
				for _, pageSize := range []int{1, 10, 30, 100} {
					q := NewSearchQuery("owner/repo", sort, order, pageIndex, pageSize)
					got, err := BuildSearchURL("https://api.github.com/", q)
					require.NoError(t, err)

					parsed, err := url.Parse(got)
					require.NoError(t, err)
					values := parsed.Query()

					assert.True(t, strings.HasPrefix(parsed.RawQuery, "q=repo%3Aowner%2Frepo&"), parsed.RawQuery)
					assert.True(t, strings.HasSuffix(parsed.RawQuery, "&page="+strconv.Itoa(pageIndex+1)+"&per_page="+strconv.Itoa(pageSize)), parsed.RawQuery)

					assert.Equal(t, strconv.Itoa(pageIndex+1), values.Get("page"))
					assert.Equal(t, strconv.Itoa(pageSize), values.Get("per_page"))
					assert.Equal(t, sort, values.Get("sort"))
					assert.Equal(t, order, values.Get("order"))
				}
			}
		}
	}
}

func TestSearchQueryValidation(t *testing.T) {
	testCases := []struct {
		name  string
		query SearchQuery
		want  string
	}{
		{
			name:  "Missing repository",
			query: SearchQuery{Page: 1, PerPage: 30},
			want:  "no repository",
		},
		{
			name:  "Unknown order",
			query: SearchQuery{Repository: "o/r", Order: "sideways", Page: 1, PerPage: 30},
			want:  "invalid sort order",
		},
		{
			name:  "Negative page index",
			query: NewSearchQuery("o/r", "", "", -1, 30),
			want:  "invalid page",
		},
		{
			name:  "Zero page size",
			query: NewSearchQuery("o/r", "", "", 0, 0),
			want:  "invalid page size",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildSearchURL("https://api.github.com/", tc.query)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}
