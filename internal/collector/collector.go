// Package collector polls submitted tasks in order, downloads their results
// and writes the run manifest.
package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"examplegen/internal/domain"
	"examplegen/internal/infra"
)

const (
	ManifestFile = "manifest.json"

	manifestTimeLayout = "2006-01-02 15:04:05"
	outputDirLayout    = "20060102-150405"
)

// TaskPoller resolves one task id to a terminal result.
type TaskPoller interface {
	Poll(ctx context.Context, taskID string) (domain.PollResult, error)
}

// RunInfo describes the run a collection belongs to.
type RunInfo struct {
	RunID     string
	ModelUUID string
	Theme     string
	Character string
}

// Options configures a Collector.
type Options struct {
	Poller     TaskPoller
	HTTPClient *http.Client
	// Ledger is optional; status transitions are recorded when set.
	Ledger domain.TaskLedger
	Now    func() time.Time
	Logger *infra.Logger
}

// Collector downloads results of submitted tasks.
type Collector struct {
	poller     TaskPoller
	httpClient *http.Client
	ledger     domain.TaskLedger
	now        func() time.Time
	logger     *infra.Logger
}

// Summary reports what a collection produced.
type Summary struct {
	OutputDir       string              `json:"output_dir"`
	ManifestPath    string              `json:"manifest"`
	TaskCount       int                 `json:"task_count"`
	DownloadedFiles int                 `json:"downloaded_files"`
	FailedTasks     []domain.FailedTask `json:"failed_tasks"`
}

// Err returns a *PartialFailureError when any task failed.
func (s Summary) Err() error {
	if len(s.FailedTasks) == 0 {
		return nil
	}
	return &PartialFailureError{Failed: s.FailedTasks}
}

// PartialFailureError reports tasks that produced no output. Everything else
// in the run, including the manifest, completed.
type PartialFailureError struct {
	Failed []domain.FailedTask
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("collection finished with %d failed tasks", len(e.Failed))
}

// New returns a Collector.
func New(opts Options) (*Collector, error) {
	if opts.Poller == nil {
		return nil, errors.New("collector: poller is required")
	}
	c := &Collector{
		poller:     opts.Poller,
		httpClient: opts.HTTPClient,
		ledger:     opts.Ledger,
		now:        opts.Now,
		logger:     opts.Logger,
	}
	if c.httpClient == nil {
		c.httpClient = infra.NewHTTPClient(180 * time.Second)
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.logger == nil {
		c.logger = infra.NopLogger()
	}
	return c, nil
}

// EnsureOutputDir creates dir, or a timestamped directory under .temp when
// dir is empty, and returns its absolute path.
func EnsureOutputDir(dir string, now time.Time) (string, error) {
	if dir == "" {
		dir = filepath.Join(".temp", "model-example-collection-"+now.Format(outputDirLayout))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("collector: create output dir: %w", err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("collector: resolve output dir: %w", err)
	}
	return abs, nil
}

// Collect polls every task in order, downloads completed results into
// outputDir and writes manifest.json. Per-task failures are recorded in the
// summary; poll transport errors, download errors and manifest write errors
// abort the collection.
func (c *Collector) Collect(ctx context.Context, run RunInfo, outputDir string, tasks []*domain.Task) (Summary, error) {
	manifest := domain.Manifest{
		RunID:     run.RunID,
		ModelUUID: run.ModelUUID,
		Theme:     run.Theme,
		Character: run.Character,
		OutputDir: outputDir,
		CreatedAt: c.now().Format(manifestTimeLayout),
		Tasks:     []domain.ManifestTask{},
	}
	summary := Summary{
		OutputDir:   outputDir,
		TaskCount:   len(tasks),
		FailedTasks: []domain.FailedTask{},
	}

	for _, task := range tasks {
		result, err := c.poller.Poll(ctx, task.TaskID)
		if err != nil {
			return summary, fmt.Errorf("collector: task %d (%s): %w", task.Index, task.StyleKey, err)
		}
		if err := task.Resolve(result, c.now()); err != nil {
			return summary, err
		}
		c.recordResolved(ctx, run.RunID, task)

		entry := domain.ManifestTask{
			Index:        task.Index,
			StyleKey:     task.StyleKey,
			TaskID:       task.TaskID,
			Prompt:       task.Prompt,
			Status:       task.Status,
			ErrorMessage: task.ErrorMessage,
		}

		if task.Status == domain.TaskStatusCompleted && len(task.ResultURLs) > 0 {
			for i, src := range task.ResultURLs {
				dest := filepath.Join(outputDir, FileName(task.Index, task.StyleKey, i+1, src))
				if _, err := infra.DownloadFile(ctx, c.httpClient, src, dest); err != nil {
					return summary, fmt.Errorf("collector: task %d (%s): %w", task.Index, task.StyleKey, err)
				}
				summary.DownloadedFiles++
				entry.Files = append(entry.Files, domain.ManifestFile{SourceURL: src, LocalPath: dest})
			}
			c.logger.Info().
				Str("task_id", task.TaskID).
				Str("style_key", task.StyleKey).
				Int("files", len(entry.Files)).
				Msg("collector: downloaded results")
		} else {
			failed := failedTask(task)
			summary.FailedTasks = append(summary.FailedTasks, failed)
			c.logger.Warn().
				Str("task_id", task.TaskID).
				Str("style_key", task.StyleKey).
				Str("status", string(task.Status)).
				Str("kind", string(failed.Kind)).
				Str("error", failed.ErrorMessage).
				Msg("collector: task produced no output")
		}
		manifest.Append(entry)
	}

	path, err := WriteManifest(outputDir, manifest)
	if err != nil {
		return summary, err
	}
	summary.ManifestPath = path
	return summary, nil
}

func (c *Collector) recordResolved(ctx context.Context, runID string, task *domain.Task) {
	if c.ledger == nil {
		return
	}
	if err := c.ledger.RecordResolved(ctx, runID, task); err != nil {
		c.logger.Warn().Err(err).Str("task_id", task.TaskID).Msg("collector: ledger update failed")
	}
}

func failedTask(task *domain.Task) domain.FailedTask {
	ft := domain.FailedTask{
		StyleKey:     task.StyleKey,
		TaskID:       task.TaskID,
		Status:       task.Status,
		ErrorMessage: task.ErrorMessage,
	}
	switch task.Status {
	case domain.TaskStatusFailed:
		ft.Kind = domain.FailureKindFailed
	case domain.TaskStatusTimeout:
		ft.Kind = domain.FailureKindTimeout
	case domain.TaskStatusCompleted:
		ft.Kind = domain.FailureKindEmptyResult
		if ft.ErrorMessage == "" {
			ft.ErrorMessage = domain.ErrEmptyResult.Error()
		}
	default:
		ft.Kind = domain.FailureKindUnknown
	}
	return ft
}

// WriteManifest writes m as indented JSON into dir and returns the file path.
func WriteManifest(dir string, m domain.Manifest) (string, error) {
	encoded, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("collector: encode manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", fmt.Errorf("collector: write manifest: %w", err)
	}
	return path, nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (domain.Manifest, error) {
	var m domain.Manifest
	raw, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("collector: read manifest: %w", err)
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("collector: decode manifest: %w", err)
	}
	return m, nil
}
