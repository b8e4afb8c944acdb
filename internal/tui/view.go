package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/danielolaszy/issuetable/internal/table"
)

// View renders the model.
func (m *Model) View() string {
	var b strings.Builder

	title := m.styles.Title.Render("Issues")
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", m.styles.Muted.Render(m.repository))
	if m.snapshot.Loading {
		header = lipgloss.JoinHorizontal(lipgloss.Center, header, "  ", m.spinner.View())
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	if len(m.snapshot.Rows) == 0 && !m.snapshot.Loading {
		b.WriteString(m.styles.Muted.Render("No issues"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.grid.View())
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Footer.Render(m.footer()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.App.Render(b.String())
}

func (m *Model) footer() string {
	total := m.snapshot.TotalCount
	parts := []string{table.RangeLabel(m.state.PageIndex, m.state.PageSize, total)}
	if pages := table.PageCount(total, m.state.PageSize); pages > 0 {
		parts = append(parts, fmt.Sprintf("page %d/%d", m.state.PageIndex+1, pages))
	}
	parts = append(parts,
		fmt.Sprintf("%d per page", m.state.PageSize),
		"sort: "+table.SortLabel(m.state.Sort),
	)
	if m.snapshot.Err != nil && !m.snapshot.Loading {
		parts = append(parts, "last fetch failed")
	}
	return strings.Join(parts, " · ")
}
