package table

import (
	"context"

	"github.com/danielolaszy/issuetable/pkg/models"
)

// Page is the outcome of a single fetch, mapped for rendering.
type Page struct {
	Rows       []models.IssueRecord
	TotalCount int
	Err        error
}

// Load fetches the page described by state in one call. On failure the rows are
// empty and prevTotal is kept, exactly as the Controller does.
func Load(ctx context.Context, fetcher Fetcher, state State, prevTotal int) Page {
	result, err := fetcher.GetRepoIssues(ctx, state.Sort.Active, string(state.Sort.Direction), state.PageIndex, state.PageSize)
	rows, total, err := applyResult(prevTotal, result, err)
	return Page{Rows: rows, TotalCount: total, Err: err}
}

// applyResult maps a fetch outcome onto rows and total. Any failure empties the
// rows but leaves the total count where it was.
func applyResult(prevTotal int, result *models.SearchResult, err error) ([]models.IssueRecord, int, error) {
	if err != nil {
		return []models.IssueRecord{}, prevTotal, err
	}
	if result == nil {
		return []models.IssueRecord{}, 0, nil
	}
	rows := result.Items
	if rows == nil {
		rows = []models.IssueRecord{}
	}
	return rows, result.TotalCount, nil
}
