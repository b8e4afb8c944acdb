// Package models defines data structures shared across the application.
package models

import (
	"time"
)

// IssueRecord is one row of the issue table as returned by the GitHub search API.
// Timestamps are kept exactly as the API sent them (ISO-8601 strings).
type IssueRecord struct {
	// CreatedAt is the timestamp when the issue was created
	CreatedAt string `json:"created_at"`

	// UpdatedAt is the timestamp when the issue was last updated
	UpdatedAt string `json:"updated_at"`

	// Title is the issue's title or summary
	Title string `json:"title"`
}

// Created parses CreatedAt. It returns the zero time if the value is not RFC 3339.
func (r IssueRecord) Created() time.Time {
	return parseTimestamp(r.CreatedAt)
}

// Updated parses UpdatedAt. It returns the zero time if the value is not RFC 3339.
func (r IssueRecord) Updated() time.Time {
	return parseTimestamp(r.UpdatedAt)
}

// SearchResult is one page of issue search results.
type SearchResult struct {
	// Items holds the page's issues in the order the server returned them
	Items []IssueRecord `json:"items"`

	// TotalCount is the number of issues matching the search across all pages
	TotalCount int `json:"total_count"`
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
