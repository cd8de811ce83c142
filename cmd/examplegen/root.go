package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"examplegen/internal/domain"
	"examplegen/internal/infra"
	"examplegen/internal/ledger"
)

// cli carries state shared by every subcommand once the root pre-run loaded
// the environment.
type cli struct {
	out    io.Writer
	cfg    *infra.Config
	logger zerolog.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out, logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "examplegen",
		Short:         "Generate showcase example images for an image model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			infra.LoadEnvFiles()
			cfg, err := infra.LoadConfig()
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.logger = infra.NewLogger(cfg.AppEnv, cfg.LogLevel)
			return nil
		},
	}

	root.AddCommand(
		c.typesCmd(),
		c.buildCmd(),
		c.runCmd(),
		c.pipelineCmd(),
		c.serveCmd(),
	)
	return root
}

// printJSON writes v as indented JSON without HTML escaping.
func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// openLedger connects the task ledger when DATABASE_URL is set. The returned
// close func is never nil.
func (c *cli) openLedger(ctx context.Context) (*ledger.Repository, func(), error) {
	if c.cfg.DatabaseURL == "" {
		return nil, func() {}, nil
	}
	pool, err := infra.NewDBPool(ctx, c.cfg)
	if err != nil {
		return nil, func() {}, err
	}
	repo := ledger.NewRepository(infra.NewSQLRunner(pool, c.logger))
	if err := repo.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, func() {}, fmt.Errorf("ensure ledger schema: %w", err)
	}
	return repo, pool.Close, nil
}

// taskLedger converts a possibly nil repository into the interface the
// pipeline accepts without producing a typed nil.
func taskLedger(repo *ledger.Repository) domain.TaskLedger {
	if repo == nil {
		return nil
	}
	return repo
}
