package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"examplegen/internal/catalog"
	"examplegen/internal/pipeline"
)

func (c *cli) typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the available style keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(c.out, strings.Join(catalog.Keys(), "\n"))
			return err
		},
	}
}

func (c *cli) buildCmd() *cobra.Command {
	var (
		payload payloadFlags
		output  string
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build payloads without contacting any provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := payload.resolve(time.Now())
			if err != nil {
				return err
			}
			planned, err := pipeline.Plan(spec)
			if err != nil {
				return err
			}
			if output != "" {
				if err := pipeline.WriteJSONL(output, planned); err != nil {
					return err
				}
				c.logger.Info().Str("path", output).Int("count", len(planned)).Msg("payloads written")
			}
			payloads := pipeline.Payloads(planned)
			return c.printJSON(map[string]any{"count": len(payloads), "payloads": payloads})
		},
	}
	payload.register(cmd, "")
	cmd.Flags().StringVar(&output, "output", "", "write payloads as JSONL to this path")
	return cmd
}
