package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"examplegen/internal/http/handlers"
	httpapi "examplegen/internal/http/httpapi"
	"examplegen/internal/infra"
)

func (c *cli) serveCmd() *cobra.Command {
	var cacheTTL time.Duration
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only review API over the task ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if c.cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required for serve")
			}
			repo, closeLedger, err := c.openLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			app := handlers.NewApp(repo, cacheTTL, &c.logger)
			router := httpapi.NewRouter(app, httpapi.Options{
				AllowedOrigins: c.cfg.CORSAllowedOrigins,
				RatePerSecond:  c.cfg.APIRatePerSecond,
				RateBurst:      c.cfg.APIRateBurst,
				Logger:         c.logger,
			})
			server := infra.NewHTTPServer(c.cfg, router)

			c.logger.Info().Str("addr", server.Addr()).Msg("review API listening")
			if err := server.Run(ctx); err != nil {
				return err
			}
			c.logger.Info().Msg("server stopped")
			return nil
		},
	}
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", 30*time.Second, "how long run lookups are cached")
	return cmd
}
