package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchResultDecodesSearchResponse(t *testing.T) {
	body := `{
		"total_count": 4321,
		"incomplete_results": false,
		"items": [
			{"number": 1, "title": "First", "created_at": "2024-03-05T10:00:00Z", "updated_at": "2024-03-06T11:30:00Z", "state": "open"},
			{"number": 2, "title": "Second", "created_at": "2024-03-04T10:00:00Z", "updated_at": "2024-03-04T10:00:00Z"}
		]
	}`

	var result SearchResult
	require.NoError(t, json.Unmarshal([]byte(body), &result))

	assert.Equal(t, 4321, result.TotalCount)
	require.Len(t, result.Items, 2)
	assert.Equal(t, IssueRecord{Title: "First", CreatedAt: "2024-03-05T10:00:00Z", UpdatedAt: "2024-03-06T11:30:00Z"}, result.Items[0])
	assert.Equal(t, "Second", result.Items[1].Title)
}

func TestTimestamps(t *testing.T) {
	rec := IssueRecord{CreatedAt: "2024-03-05T10:00:00Z", UpdatedAt: "last tuesday"}

	assert.True(t, rec.Created().Equal(time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)))
	assert.True(t, rec.Updated().IsZero())
	assert.True(t, IssueRecord{}.Created().IsZero())
}
