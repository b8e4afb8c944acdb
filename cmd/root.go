// Package cmd provides the command-line interface for issuetable.
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/issuetable/internal/config"
	"github.com/danielolaszy/issuetable/internal/github"
	"github.com/danielolaszy/issuetable/internal/logging"
)

// cfg is loaded once per invocation, before any subcommand runs.
var cfg *config.Config

// logOutput receives log lines. Command output goes to stdout, so logs stay
// off it.
var logOutput io.Writer = os.Stderr

var rootCmd = &cobra.Command{
	Use:   "issuetable",
	Short: "Browse a GitHub repository's issues as a sortable, paginated table",
	Long: `Issuetable shows the issues of a GitHub repository as a table of
created date, updated date and title, sortable by any column and paginated
through the GitHub search API.

The table can be served as a web page (serve), opened in the terminal
(browse) or printed one page at a time (search).

Configuration is read from the environment and an optional .env file:
  GITHUB_TOKEN            token used for API requests (optional)
  GITHUB_DOMAIN           github.com or a GitHub Enterprise domain
  ISSUETABLE_REPOSITORY   repository to show, as owner/repo
  ISSUETABLE_PAGE_SIZE    initial page size
  ISSUETABLE_ADDR         listen address of the web server
  LOG_LEVEL               debug, info, warn or error`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if err := applyFlags(cmd, loaded); err != nil {
			return err
		}

		logging.SetupLogger(logOutput, logging.LogLevel(loaded.LogLevel))
		logging.Debug("configuration loaded",
			"repository", loaded.Repository,
			"domain", loaded.GitHub.Domain,
			"page_size", loaded.PageSize)

		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("repository", "r", "", "GitHub repository (e.g., 'angular/components')")
	rootCmd.PersistentFlags().IntP("page-size", "s", 0, "initial number of issues per page")
}

// applyFlags overrides the environment configuration with flags the user set.
func applyFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("repository") {
		repository, err := flags.GetString("repository")
		if err != nil {
			return err
		}
		c.Repository = repository
	}
	if flags.Changed("page-size") {
		size, err := flags.GetInt("page-size")
		if err != nil {
			return err
		}
		c.PageSize = size
	}
	if f := flags.Lookup("addr"); f != nil && f.Changed {
		c.Addr = f.Value.String()
	}

	return config.Validate(c)
}

func newGitHubClient() (*github.Client, error) {
	return github.NewClient(cfg)
}
