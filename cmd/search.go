package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/danielolaszy/issuetable/internal/table"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Print one page of the issue table",
	Long: `Fetch one page of issues and print it as a table.

Example:
  issuetable search -r angular/components --sort created --order desc --page 2 --size 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := searchState(cmd)
		if err != nil {
			return err
		}

		client, err := newGitHubClient()
		if err != nil {
			return fmt.Errorf("failed to initialize github client: %w", err)
		}

		page := table.Load(cmd.Context(), client, state, 0)
		if page.Err != nil {
			return fmt.Errorf("failed to search issues: %w", page.Err)
		}

		renderPage(cmd.OutOrStdout(), cfg.Repository, state, page)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("sort", "", "column to sort by: created, updated or title")
	searchCmd.Flags().String("order", "", "sort direction: asc or desc (default asc when --sort is set)")
	searchCmd.Flags().Int("page", 0, "zero-based page index")
	searchCmd.Flags().Int("size", 0, "issues per page (default from --page-size)")
}

// searchState builds the table state from the search flags.
func searchState(cmd *cobra.Command) (table.State, error) {
	flags := cmd.Flags()

	sort, err := flags.GetString("sort")
	if err != nil {
		return table.State{}, err
	}
	order, err := flags.GetString("order")
	if err != nil {
		return table.State{}, err
	}
	pageIndex, err := flags.GetInt("page")
	if err != nil {
		return table.State{}, err
	}
	size, err := flags.GetInt("size")
	if err != nil {
		return table.State{}, err
	}

	if sort != "" && !table.IsColumn(sort) {
		return table.State{}, fmt.Errorf("invalid sort column %q, expected one of: created, updated, title", sort)
	}
	direction := table.ParseDirection(order)
	if order != "" && direction == table.DirectionNone {
		return table.State{}, fmt.Errorf("invalid sort order %q, expected asc or desc", order)
	}
	switch {
	case sort == "":
		direction = table.DirectionNone
	case direction == table.DirectionNone:
		direction = table.DirectionAsc
	}
	if pageIndex < 0 {
		return table.State{}, fmt.Errorf("invalid page %d, pages start at 0", pageIndex)
	}
	if size < 0 || size > 100 {
		return table.State{}, fmt.Errorf("invalid page size %d, expected 1-100", size)
	}

	state := table.NewState(cfg.PageSize).ApplySort(table.SortEvent{Active: sort, Direction: direction})
	return state.ApplyPage(table.PageEvent{Index: pageIndex, Size: size}), nil
}

// renderPage writes page as a bordered table followed by the paginator line.
func renderPage(w io.Writer, repository string, state table.State, page table.Page) {
	headers := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		label := col.Label
		if col.Key == state.Sort.Active {
			label += " " + table.Indicator(state.Sort.Direction)
		}
		headers = append(headers, label)
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for _, row := range table.FormatRows(page.Rows) {
		t.Row(row.Created, row.Updated, row.Title)
	}

	fmt.Fprintln(w, repository)
	fmt.Fprintln(w, t.Render())

	footer := table.RangeLabel(state.PageIndex, state.PageSize, page.TotalCount)
	if pages := table.PageCount(page.TotalCount, state.PageSize); pages > 0 {
		footer += fmt.Sprintf(" · page %d of %d", state.PageIndex+1, pages)
	}
	fmt.Fprintln(w, footer+" · sort: "+table.SortLabel(state.Sort))
}
