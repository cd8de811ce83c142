package main

import (
	"time"

	"github.com/spf13/cobra"

	"examplegen/internal/collector"
	"examplegen/internal/domain"
	"examplegen/internal/infra"
	"examplegen/internal/pipeline"
	"examplegen/internal/poller"
)

func (c *cli) runCmd() *cobra.Command {
	var (
		payload     payloadFlags
		provider    providerFlags
		collect     bool
		output      string
		downloadDir string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Submit one generation task per style, optionally collecting results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
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
			}

			repo, closeLedger, err := c.openLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			runner, err := c.newRunner(&provider, taskLedger(repo))
			if err != nil {
				return err
			}
			tasks, err := runner.SubmitPlanned(ctx, spec, planned)
			if err != nil {
				return err
			}
			if !collect {
				subs := pipeline.Submissions(tasks)
				return c.printJSON(map[string]any{"count": len(subs), "submissions": subs})
			}

			outputDir, err := collector.EnsureOutputDir(downloadDir, time.Now())
			if err != nil {
				return err
			}
			summary, err := runner.Collect(ctx, spec, outputDir, tasks)
			if err != nil {
				return err
			}
			if err := c.printJSON(summary); err != nil {
				return err
			}
			return summary.Err()
		},
	}
	payload.register(cmd, "")
	provider.register(cmd)
	fs := cmd.Flags()
	fs.BoolVar(&collect, "collect", false, "poll every task, download results and write a manifest")
	fs.StringVar(&output, "output", "", "write payloads as JSONL to this path")
	fs.StringVar(&downloadDir, "download-dir", "", "directory for downloaded images (default: .temp/model-example-collection-<timestamp>)")
	return cmd
}

// newRunner wires the provider client, poller and collector into a runner.
func (c *cli) newRunner(provider *providerFlags, ledger domain.TaskLedger) (*pipeline.Runner, error) {
	timeout, interval, err := provider.pollSettings()
	if err != nil {
		return nil, err
	}
	client, err := provider.client(c.cfg, &c.logger)
	if err != nil {
		return nil, err
	}
	p, err := poller.New(poller.Options{
		Fetcher:  client,
		Timeout:  timeout,
		Interval: interval,
		Logger:   &c.logger,
	})
	if err != nil {
		return nil, err
	}
	coll, err := collector.New(collector.Options{
		Poller:     p,
		HTTPClient: infra.NewHTTPClient(c.cfg.DownloadTimeout),
		Ledger:     ledger,
		Logger:     &c.logger,
	})
	if err != nil {
		return nil, err
	}
	return pipeline.New(pipeline.Options{
		Submitter: client,
		Collector: coll,
		Ledger:    ledger,
		Provider:  client.Provider(),
		Logger:    &c.logger,
	})
}
