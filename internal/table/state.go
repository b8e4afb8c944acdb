// Package table holds the sort and pagination state of the issue table and the
// controller that turns state changes into searches.
package table

import (
	"strings"
)

// Direction is a sort direction. The zero value means no explicit sort.
type Direction string

const (
	DirectionNone Direction = ""
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// ParseDirection accepts "asc" and "desc" in any case; everything else is DirectionNone.
func ParseDirection(s string) Direction {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionAsc:
		return DirectionAsc
	case DirectionDesc:
		return DirectionDesc
	default:
		return DirectionNone
	}
}

// Next cycles asc -> desc -> none -> asc, the way a sortable header toggles.
func (d Direction) Next() Direction {
	switch d {
	case DirectionAsc:
		return DirectionDesc
	case DirectionDesc:
		return DirectionNone
	default:
		return DirectionAsc
	}
}

// Column is one column of the issue table.
type Column struct {
	Key   string
	Label string
}

// Columns are the displayed columns, in display order. Each key is also the sort
// field sent to the search API.
var Columns = []Column{
	{Key: "created", Label: "Created"},
	{Key: "updated", Label: "Updated"},
	{Key: "title", Label: "Title"},
}

// IsColumn reports whether key names one of Columns.
func IsColumn(key string) bool {
	for _, c := range Columns {
		if c.Key == key {
			return true
		}
	}
	return false
}

// PageSizeOptions are the page sizes offered by the paginators.
var PageSizeOptions = []int{10, 30, 50, 100}

// SearchWindow is the number of results the search API will page through for a
// single query, regardless of total_count.
const SearchWindow = 1000

// SortEvent is emitted when the user changes the active sort column or direction.
type SortEvent struct {
	Active    string
	Direction Direction
}

// PageEvent is emitted when the user changes page or page size.
type PageEvent struct {
	Index int
	Size  int
}

// State is everything the request builder needs from the table.
type State struct {
	Sort      SortEvent
	PageIndex int
	PageSize  int
}

// NewState returns an unsorted state on the first page.
func NewState(pageSize int) State {
	return State{PageSize: pageSize}
}

// ApplySort returns the state after a sort change. Changing the sort always
// restarts pagination at the first page. A column with no direction stays
// active and is still sent as the sort field.
func (s State) ApplySort(ev SortEvent) State {
	s.Sort = ev
	s.PageIndex = 0
	return s
}

// ApplyPage returns the state after a page change. A negative index is clamped
// to the first page and a non-positive size keeps the current one.
func (s State) ApplyPage(ev PageEvent) State {
	if ev.Size > 0 {
		s.PageSize = ev.Size
	}
	s.PageIndex = ev.Index
	if s.PageIndex < 0 {
		s.PageIndex = 0
	}
	return s
}

// ToggleSort returns the sort event produced by activating column's header:
// a new column starts ascending, the active column cycles asc -> desc -> none.
func (s State) ToggleSort(column string) SortEvent {
	if s.Sort.Active != column || s.Sort.Direction == DirectionNone {
		return SortEvent{Active: column, Direction: DirectionAsc}
	}
	return SortEvent{Active: column, Direction: s.Sort.Direction.Next()}
}

// ResizePage returns the page event for switching to size while keeping the
// first visible row on screen.
func (s State) ResizePage(size int) PageEvent {
	if size <= 0 || s.PageSize <= 0 {
		return PageEvent{Index: s.PageIndex, Size: size}
	}
	first := s.PageIndex * s.PageSize
	return PageEvent{Index: first / size, Size: size}
}

// PageCount is the number of pages the paginator offers for total results.
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	if total > SearchWindow {
		total = SearchWindow
	}
	return (total + size - 1) / size
}
