package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/issuetable/internal/table"
	"github.com/danielolaszy/issuetable/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the issue table in the terminal",
	Long: `Open the issue table in a full-screen terminal view.

Keys:
  s        cycle the sort column
  o        cycle the sort direction (ascending, descending, none)
  ←/→      previous/next page
  [ / ]    first/last page
  + / -    more/fewer issues per page
  ?        toggle help
  q        quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newGitHubClient()
		if err != nil {
			return fmt.Errorf("failed to initialize github client: %w", err)
		}

		return tui.Run(cmd.Context(), client, cfg.Repository, table.NewState(cfg.PageSize))
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
