// Package pipeline wires planning, submission, polling and collection into a
// run, and extends a collected run into WebP conversion, upload and gallery
// configuration.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"examplegen/internal/collector"
	"examplegen/internal/domain"
	"examplegen/internal/infra"
	"examplegen/internal/prompt"
	"examplegen/internal/providers/generation"
)

// Collector resolves and downloads submitted tasks.
type Collector interface {
	Collect(ctx context.Context, run collector.RunInfo, outputDir string, tasks []*domain.Task) (collector.Summary, error)
}

// Options configures a Runner.
type Options struct {
	Submitter generation.Submitter
	Collector Collector
	// Ledger is optional.
	Ledger   domain.TaskLedger
	Provider string
	Now      func() time.Time
	Logger   *infra.Logger
}

// Runner executes runs sequentially.
type Runner struct {
	submitter generation.Submitter
	collector Collector
	ledger    domain.TaskLedger
	provider  string
	now       func() time.Time
	logger    *infra.Logger
}

// Submission is the printed record of one created task.
type Submission struct {
	StyleKey string         `json:"style_key"`
	Payload  domain.Payload `json:"payload"`
	TaskID   string         `json:"generation_uuid"`
}

// RunSpec identifies a run and the run-wide payload settings.
type RunSpec struct {
	Payload   prompt.PayloadOptions
	StyleKeys []string
}

// NewRunID returns "run-<YYYYmmddHHMMSS>-<8 hex>".
func NewRunID(now time.Time) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("run-%s-%s", now.Format("20060102150405"), suffix)
}

// New returns a Runner. Collector may be nil when only submission is needed.
func New(opts Options) (*Runner, error) {
	if opts.Submitter == nil {
		return nil, errors.New("pipeline: submitter is required")
	}
	r := &Runner{
		submitter: opts.Submitter,
		collector: opts.Collector,
		ledger:    opts.Ledger,
		provider:  opts.Provider,
		now:       opts.Now,
		logger:    opts.Logger,
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.logger == nil {
		r.logger = infra.NopLogger()
	}
	return r, nil
}

// Plan builds the payloads of a run without contacting any provider.
func Plan(spec RunSpec) ([]prompt.Planned, error) {
	return prompt.Plan(spec.Payload, spec.StyleKeys)
}

// Submit plans the run and creates one provider task per style, in order. The
// first submission error aborts the run; tasks created before it are
// returned alongside the error.
func (r *Runner) Submit(ctx context.Context, spec RunSpec) ([]*domain.Task, error) {
	planned, err := Plan(spec)
	if err != nil {
		return nil, err
	}
	return r.SubmitPlanned(ctx, spec, planned)
}

// SubmitPlanned submits payloads that were already planned for the run.
func (r *Runner) SubmitPlanned(ctx context.Context, spec RunSpec, planned []prompt.Planned) ([]*domain.Task, error) {
	runID := spec.Payload.RunID
	r.ledgerCall("create run", func() error {
		return r.ledger.CreateRun(ctx, &domain.Run{
			ID:        runID,
			ModelUUID: spec.Payload.ModelUUID,
			Provider:  r.provider,
			Theme:     spec.Payload.Theme,
			Character: spec.Payload.Character,
			TaskCount: len(planned),
		})
	})

	tasks := make([]*domain.Task, 0, len(planned))
	for i, p := range planned {
		taskID, err := r.submitter.Submit(ctx, p.Payload)
		if err != nil {
			return tasks, fmt.Errorf("pipeline: submit %s: %w", p.StyleKey, err)
		}
		task := domain.NewSubmittedTask(i+1, p.StyleKey, p.Payload, taskID, r.now())
		tasks = append(tasks, task)
		r.logger.Info().
			Str("run_id", runID).
			Str("style_key", p.StyleKey).
			Str("task_id", taskID).
			Msg("pipeline: task submitted")
		r.ledgerCall("record submitted", func() error {
			return r.ledger.RecordSubmitted(ctx, runID, task)
		})
	}
	return tasks, nil
}

// Collect polls and downloads tasks into outputDir. The returned error is
// non-nil only for fatal failures; per-task failures are in the summary.
func (r *Runner) Collect(ctx context.Context, spec RunSpec, outputDir string, tasks []*domain.Task) (collector.Summary, error) {
	if r.collector == nil {
		return collector.Summary{}, errors.New("pipeline: collector is not configured")
	}
	summary, err := r.collector.Collect(ctx, collector.RunInfo{
		RunID:     spec.Payload.RunID,
		ModelUUID: spec.Payload.ModelUUID,
		Theme:     spec.Payload.Theme,
		Character: spec.Payload.Character,
	}, outputDir, tasks)
	if err != nil {
		return summary, err
	}
	r.ledgerCall("finish run", func() error {
		return r.ledger.FinishRun(ctx, spec.Payload.RunID, summary.OutputDir, len(summary.FailedTasks))
	})
	return summary, nil
}

// Submissions renders tasks for printing.
func Submissions(tasks []*domain.Task) []Submission {
	out := make([]Submission, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, Submission{StyleKey: t.StyleKey, Payload: t.Payload, TaskID: t.TaskID})
	}
	return out
}

func (r *Runner) ledgerCall(op string, fn func() error) {
	if r.ledger == nil {
		return
	}
	if err := fn(); err != nil {
		r.logger.Warn().Err(err).Str("op", op).Msg("pipeline: ledger write failed")
	}
}

// WriteJSONL writes one JSON document per payload.
func WriteJSONL(path string, planned []prompt.Planned) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("pipeline: create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pipeline: create %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	for _, p := range planned {
		if err := enc.Encode(p.Payload); err != nil {
			_ = f.Close()
			return fmt.Errorf("pipeline: encode payload: %w", err)
		}
	}
	return f.Close()
}

// Payloads extracts the payloads of planned.
func Payloads(planned []prompt.Planned) []domain.Payload {
	out := make([]domain.Payload, 0, len(planned))
	for _, p := range planned {
		out = append(out, p.Payload)
	}
	return out
}
