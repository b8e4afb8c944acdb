package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/issuetable/internal/logging"
	"github.com/danielolaszy/issuetable/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the issue table over HTTP",
	Long: `Serve the landing page and the issue table view over HTTP.

Routes:
  /         landing page with a link to the table
  /table    the issue table; sort, order, page and size are query parameters
  /healthz  liveness probe

Example:
  issuetable serve -r angular/components --addr :8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		client, err := newGitHubClient()
		if err != nil {
			return fmt.Errorf("failed to initialize github client: %w", err)
		}

		if cfg.GitHub.Token != "" {
			verifyToken(ctx, client)
		}

		handler, err := web.NewHandler(client, cfg.Repository, cfg.PageSize)
		if err != nil {
			return fmt.Errorf("failed to initialize web handler: %w", err)
		}

		logging.Info("serving issue table",
			"repository", cfg.Repository,
			"addr", cfg.Addr,
			"api", client.BaseURL())

		return web.Serve(ctx, cfg.Addr, web.NewRouter(handler))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "listen address (default from ISSUETABLE_ADDR or :8080)")
}

// tokenVerifier is the part of the GitHub client used at startup.
type tokenVerifier interface {
	VerifyToken(ctx context.Context) (string, error)
}

// verifyToken logs whether the configured token is accepted. A rejected token
// is not fatal; unauthenticated searches still work at a lower rate limit.
func verifyToken(ctx context.Context, client tokenVerifier) {
	login, err := client.VerifyToken(ctx)
	if err != nil {
		logging.Warn("github token verification failed", "error", err)
		return
	}
	logging.Info("github token verified", "user", login)
}
