package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{in: "asc", want: DirectionAsc},
		{in: "DESC", want: DirectionDesc},
		{in: " desc ", want: DirectionDesc},
		{in: "", want: DirectionNone},
		{in: "sideways", want: DirectionNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDirection(tt.in), "ParseDirection(%q)", tt.in)
	}
}

func TestApplySortResetsPage(t *testing.T) {
	s := State{PageIndex: 7, PageSize: 25}

	got := s.ApplySort(SortEvent{Active: "created", Direction: DirectionDesc})

	assert.Equal(t, 0, got.PageIndex)
	assert.Equal(t, 25, got.PageSize)
	assert.Equal(t, SortEvent{Active: "created", Direction: DirectionDesc}, got.Sort)
}

func TestApplySortWithoutDirectionKeepsColumn(t *testing.T) {
	s := State{Sort: SortEvent{Active: "created", Direction: DirectionAsc}, PageIndex: 2, PageSize: 30}

	got := s.ApplySort(SortEvent{Active: "created", Direction: DirectionNone})

	assert.Equal(t, SortEvent{Active: "created", Direction: DirectionNone}, got.Sort)
	assert.Equal(t, 0, got.PageIndex)
}

func TestApplyPage(t *testing.T) {
	tests := []struct {
		name string
		ev   PageEvent
		want State
	}{
		{name: "next page", ev: PageEvent{Index: 1, Size: 30}, want: State{PageIndex: 1, PageSize: 30}},
		{name: "new size", ev: PageEvent{Index: 0, Size: 50}, want: State{PageIndex: 0, PageSize: 50}},
		{name: "negative index clamps", ev: PageEvent{Index: -3, Size: 30}, want: State{PageIndex: 0, PageSize: 30}},
		{name: "zero size keeps current", ev: PageEvent{Index: 4}, want: State{PageIndex: 4, PageSize: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewState(30).ApplyPage(tt.ev))
		})
	}
}

func TestToggleSort(t *testing.T) {
	s := NewState(30)

	ev := s.ToggleSort("created")
	assert.Equal(t, SortEvent{Active: "created", Direction: DirectionAsc}, ev)

	s = s.ApplySort(ev)
	ev = s.ToggleSort("created")
	assert.Equal(t, SortEvent{Active: "created", Direction: DirectionDesc}, ev)

	s = s.ApplySort(ev)
	ev = s.ToggleSort("created")
	assert.Equal(t, SortEvent{Active: "created", Direction: DirectionNone}, ev)

	s = s.ApplySort(ev)
	ev = s.ToggleSort("created")
	assert.Equal(t, SortEvent{Active: "created", Direction: DirectionAsc}, ev)

	s = s.ApplySort(SortEvent{Active: "created", Direction: DirectionDesc})
	ev = s.ToggleSort("updated")
	assert.Equal(t, SortEvent{Active: "updated", Direction: DirectionAsc}, ev)
}

func TestResizePageKeepsFirstRowVisible(t *testing.T) {
	s := State{PageIndex: 3, PageSize: 30} // rows 90..119

	assert.Equal(t, PageEvent{Index: 9, Size: 10}, s.ResizePage(10))
	assert.Equal(t, PageEvent{Index: 1, Size: 50}, s.ResizePage(50))
	assert.Equal(t, PageEvent{Index: 0, Size: 100}, s.ResizePage(100))
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{total: 0, size: 30, want: 0},
		{total: 2, size: 30, want: 1},
		{total: 30, size: 30, want: 1},
		{total: 31, size: 30, want: 2},
		{total: 25000, size: 30, want: 34},
		{total: 25000, size: 100, want: 10},
		{total: 10, size: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PageCount(tt.total, tt.size), "PageCount(%d, %d)", tt.total, tt.size)
	}
}

func TestIsColumn(t *testing.T) {
	for _, c := range Columns {
		assert.True(t, IsColumn(c.Key))
	}
	assert.False(t, IsColumn("comments"))
	assert.False(t, IsColumn(""))
}
