// Package tui is a terminal rendition of the issue table.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	btable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/danielolaszy/issuetable/internal/table"
)

// Fixed widths of the date columns; the title takes the rest.
const (
	dateColumnWidth = 14
	minTitleWidth   = 20
	chromeHeight    = 6
)

// Model is the bubbletea model for the issue table.
type Model struct {
	ctx   context.Context
	sorts chan<- table.SortEvent
	pages chan<- table.PageEvent

	// state is the table state as of the last event this model emitted. It runs
	// ahead of snapshot.State while a fetch is outstanding.
	state    table.State
	snapshot table.Snapshot

	keys    KeyMap
	styles  Styles
	help    help.Model
	spinner spinner.Model
	grid    btable.Model

	repository string
	width      int
	height     int
}

// New creates a Model that reports sort and page changes on sorts and pages.
// Sends give up once ctx is done.
func New(ctx context.Context, repository string, initial table.State, sorts chan<- table.SortEvent, pages chan<- table.PageEvent) *Model {
	styles := DefaultStyles()

	grid := btable.New(
		btable.WithColumns(columns(80)),
		btable.WithFocused(true),
		btable.WithHeight(10),
		btable.WithStyles(styles.Table),
	)

	return &Model{
		ctx:        ctx,
		sorts:      sorts,
		pages:      pages,
		state:      initial,
		snapshot:   table.Snapshot{State: initial, Loading: true},
		keys:       DefaultKeyMap(),
		styles:     styles,
		help:       help.New(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		grid:       grid,
		repository: repository,
	}
}

// Init starts the spinner; the controller issues the initial fetch itself.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.grid.SetColumns(columns(msg.Width))
		m.grid.SetHeight(max(msg.Height-chromeHeight, 3))
		return m, nil

	case MsgSnapshot:
		// Snapshots are delivered concurrently and may arrive out of order.
		if msg.Snapshot.Version < m.snapshot.Version {
			return m, nil
		}
		m.snapshot = msg.Snapshot
		m.grid.SetRows(gridRows(msg.Snapshot))
		if len(msg.Snapshot.Rows) > 0 && m.grid.Cursor() >= len(msg.Snapshot.Rows) {
			m.grid.SetCursor(0)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pageCount := table.PageCount(m.snapshot.TotalCount, m.state.PageSize)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.emitSort(m.nextSortColumn())
		return m, nil

	case key.Matches(msg, m.keys.Order):
		active := m.state.Sort.Active
		if active == "" {
			active = table.Columns[0].Key
		}
		m.emitSort(m.state.ToggleSort(active))
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.state.PageIndex+1 < pageCount {
			m.emitPage(table.PageEvent{Index: m.state.PageIndex + 1, Size: m.state.PageSize})
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if m.state.PageIndex > 0 {
			m.emitPage(table.PageEvent{Index: m.state.PageIndex - 1, Size: m.state.PageSize})
		}
		return m, nil

	case key.Matches(msg, m.keys.FirstPage):
		if m.state.PageIndex > 0 {
			m.emitPage(table.PageEvent{Index: 0, Size: m.state.PageSize})
		}
		return m, nil

	case key.Matches(msg, m.keys.LastPage):
		if last := pageCount - 1; last > m.state.PageIndex {
			m.emitPage(table.PageEvent{Index: last, Size: m.state.PageSize})
		}
		return m, nil

	case key.Matches(msg, m.keys.Bigger):
		if size, ok := adjacentPageSize(m.state.PageSize, 1); ok {
			m.emitPage(m.state.ResizePage(size))
		}
		return m, nil

	case key.Matches(msg, m.keys.Smaller):
		if size, ok := adjacentPageSize(m.state.PageSize, -1); ok {
			m.emitPage(m.state.ResizePage(size))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

// nextSortColumn moves the sort to the next column, keeping the direction.
func (m *Model) nextSortColumn() table.SortEvent {
	next := 0
	for i, col := range table.Columns {
		if col.Key == m.state.Sort.Active {
			next = (i + 1) % len(table.Columns)
			break
		}
	}
	direction := m.state.Sort.Direction
	if direction == table.DirectionNone {
		direction = table.DirectionAsc
	}
	return table.SortEvent{Active: table.Columns[next].Key, Direction: direction}
}

func (m *Model) emitSort(ev table.SortEvent) {
	m.state = m.state.ApplySort(ev)
	select {
	case m.sorts <- ev:
	case <-m.ctx.Done():
	}
}

func (m *Model) emitPage(ev table.PageEvent) {
	m.state = m.state.ApplyPage(ev)
	select {
	case m.pages <- ev:
	case <-m.ctx.Done():
	}
}

// adjacentPageSize returns the page size option next to current in direction
// step (+1 larger, -1 smaller).
func adjacentPageSize(current, step int) (int, bool) {
	options := table.PageSizeOptions
	for i, size := range options {
		if size == current {
			j := i + step
			if j < 0 || j >= len(options) {
				return 0, false
			}
			return options[j], true
		}
	}
	// Not one of the options: snap to the nearest one in that direction.
	if step > 0 {
		for _, size := range options {
			if size > current {
				return size, true
			}
		}
	} else {
		for i := len(options) - 1; i >= 0; i-- {
			if options[i] < current {
				return options[i], true
			}
		}
	}
	return 0, false
}

func columns(width int) []btable.Column {
	titleWidth := width - 2*dateColumnWidth - 8
	if titleWidth < minTitleWidth {
		titleWidth = minTitleWidth
	}

	cols := make([]btable.Column, 0, len(table.Columns))
	for _, col := range table.Columns {
		w := dateColumnWidth
		if col.Key == "title" {
			w = titleWidth
		}
		cols = append(cols, btable.Column{Title: col.Label, Width: w})
	}
	return cols
}

func gridRows(snap table.Snapshot) []btable.Row {
	rows := make([]btable.Row, 0, len(snap.Rows))
	for _, r := range table.FormatRows(snap.Rows) {
		rows = append(rows, btable.Row{r.Created, r.Updated, r.Title})
	}
	return rows
}
