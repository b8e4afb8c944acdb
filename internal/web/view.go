package web

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/danielolaszy/issuetable/internal/table"
)

type homeView struct {
	Title      string
	Repository string
	TableHref  string
}

type headerView struct {
	Label     string
	Href      string
	Indicator string
	Active    bool
}

type sizeOption struct {
	Size     int
	Href     string
	Selected bool
}

type tableView struct {
	Title       string
	Repository  string
	Headers     []headerView
	Rows        []table.Row
	TotalCount  int
	RangeLabel  string
	PageLabel   string
	FirstHref   string
	PrevHref    string
	NextHref    string
	LastHref    string
	SizeOptions []sizeOption
	HomeHref    string
}

func newTableView(repository string, state table.State, page table.Page) tableView {
	total := page.TotalCount
	pageCount := table.PageCount(total, state.PageSize)

	view := tableView{
		Title:      "Issues",
		Repository: repository,
		TotalCount: total,
		RangeLabel: table.RangeLabel(state.PageIndex, state.PageSize, total),
		HomeHref:   "/",
	}

	if pageCount > 0 {
		view.PageLabel = fmt.Sprintf("Page %d of %d", state.PageIndex+1, pageCount)
	}

	for _, col := range table.Columns {
		header := headerView{
			Label: col.Label,
			Href:  tableHref(state.ApplySort(state.ToggleSort(col.Key)), total),
		}
		if state.Sort.Active == col.Key {
			header.Active = true
			header.Indicator = table.Indicator(state.Sort.Direction)
		}
		view.Headers = append(view.Headers, header)
	}

	view.Rows = table.FormatRows(page.Rows)

	if state.PageIndex > 0 {
		view.FirstHref = tableHref(state.ApplyPage(table.PageEvent{Index: 0}), total)
		view.PrevHref = tableHref(state.ApplyPage(table.PageEvent{Index: state.PageIndex - 1}), total)
	}
	if state.PageIndex+1 < pageCount {
		view.NextHref = tableHref(state.ApplyPage(table.PageEvent{Index: state.PageIndex + 1}), total)
		view.LastHref = tableHref(state.ApplyPage(table.PageEvent{Index: pageCount - 1}), total)
	}

	for _, size := range table.PageSizeOptions {
		view.SizeOptions = append(view.SizeOptions, sizeOption{
			Size:     size,
			Href:     tableHref(state.ApplyPage(state.ResizePage(size)), total),
			Selected: size == state.PageSize,
		})
	}

	return view
}

// tableHref encodes state into a /table link. total is carried along so the
// paginator keeps its size if the next fetch fails.
func tableHref(state table.State, total int) string {
	q := url.Values{}
	if state.Sort.Active != "" {
		q.Set("sort", state.Sort.Active)
		q.Set("order", string(state.Sort.Direction))
	}
	q.Set("page", strconv.Itoa(state.PageIndex))
	q.Set("size", strconv.Itoa(state.PageSize))
	if total > 0 {
		q.Set("total", strconv.Itoa(total))
	}
	return "/table?" + q.Encode()
}
