package table

import (
	"fmt"
	"time"

	"github.com/danielolaszy/issuetable/pkg/models"
)

// DateLayout is how the created and updated columns are displayed.
const DateLayout = "Jan 2, 2006"

// Row is an IssueRecord formatted for display, one field per column.
type Row struct {
	Created string
	Updated string
	Title   string
}

// FormatRow formats rec for display. Timestamps that do not parse are shown as-is.
func FormatRow(rec models.IssueRecord) Row {
	return Row{
		Created: formatDate(rec.CreatedAt, rec.Created()),
		Updated: formatDate(rec.UpdatedAt, rec.Updated()),
		Title:   rec.Title,
	}
}

// FormatRows formats every record of a page.
func FormatRows(recs []models.IssueRecord) []Row {
	rows := make([]Row, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, FormatRow(rec))
	}
	return rows
}

func formatDate(raw string, t time.Time) string {
	if t.IsZero() {
		return raw
	}
	return t.Format(DateLayout)
}

// RangeLabel renders "start – end of total" for the paginator.
func RangeLabel(pageIndex, pageSize, total int) string {
	if total == 0 || pageSize == 0 {
		return fmt.Sprintf("0 of %d", total)
	}
	start := pageIndex * pageSize
	end := start + pageSize
	if start < total && end > total {
		end = total
	}
	return fmt.Sprintf("%d – %d of %d", start+1, end, total)
}

// SortLabel describes the active sort, e.g. "created ▼", "created" when no
// direction is set, or "best match".
func SortLabel(s SortEvent) string {
	if s.Active == "" {
		return "best match"
	}
	if s.Direction == DirectionNone {
		return s.Active
	}
	return s.Active + " " + Indicator(s.Direction)
}

// Indicator is the arrow shown next to a sorted column header.
func Indicator(d Direction) string {
	switch d {
	case DirectionAsc:
		return "▲"
	case DirectionDesc:
		return "▼"
	default:
		return ""
	}
}
