// Package ledger persists runs and generation task transitions in Postgres so
// that interrupted runs can be inspected and the review API can list them.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"examplegen/internal/domain"
	"examplegen/internal/infra"
	"examplegen/internal/sqlinline"
)

const maxListLimit = 200

// Repository implements domain.TaskLedger and domain.RunReader.
type Repository struct {
	db infra.SQLExecutor
}

// NewRepository creates a ledger backed by db, usually an *infra.SQLRunner
// wrapping a pgx pool.
func NewRepository(db infra.SQLExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the ledger tables when missing.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, sqlinline.QEnsureLedgerSchema); err != nil {
		return fmt.Errorf("ledger: ensure schema: %w", err)
	}
	return nil
}

func (r *Repository) CreateRun(ctx context.Context, run *domain.Run) error {
	_, err := r.db.Exec(ctx, sqlinline.QInsertRun,
		run.ID,
		run.ModelUUID,
		run.Provider,
		run.Theme,
		run.Character,
		run.TaskCount,
	)
	if err != nil {
		return fmt.Errorf("ledger: create run %s: %w", run.ID, err)
	}
	return nil
}

func (r *Repository) RecordSubmitted(ctx context.Context, runID string, task *domain.Task) error {
	_, err := r.db.Exec(ctx, sqlinline.QUpsertSubmittedTask,
		runID,
		task.Index,
		task.StyleKey,
		task.TaskID,
		task.Prompt,
		string(task.Status),
	)
	if err != nil {
		return fmt.Errorf("ledger: record submitted %s: %w", task.TaskID, err)
	}
	return nil
}

// RecordResolved stores the terminal state of task. A row that is already
// terminal is left untouched.
func (r *Repository) RecordResolved(ctx context.Context, runID string, task *domain.Task) error {
	urls := task.ResultURLs
	if urls == nil {
		urls = []string{}
	}
	encoded, err := json.Marshal(urls)
	if err != nil {
		return fmt.Errorf("ledger: encode result urls: %w", err)
	}
	_, err = r.db.Exec(ctx, sqlinline.QResolveTask,
		runID,
		task.TaskID,
		string(task.Status),
		task.ErrorMessage,
		string(encoded),
	)
	if err != nil {
		return fmt.Errorf("ledger: record resolved %s: %w", task.TaskID, err)
	}
	return nil
}

func (r *Repository) FinishRun(ctx context.Context, runID string, outputDir string, failed int) error {
	if _, err := r.db.Exec(ctx, sqlinline.QFinishRun, runID, outputDir, failed); err != nil {
		return fmt.Errorf("ledger: finish run %s: %w", runID, err)
	}
	return nil
}

// ListRuns returns the most recent runs first.
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	rows, err := r.db.Query(ctx, sqlinline.QListRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("ledger: list runs: %w", err)
	}
	defer rows.Close()

	runs := []domain.Run{}
	for rows.Next() {
		var run domain.Run
		if err := rows.Scan(
			&run.ID,
			&run.ModelUUID,
			&run.Provider,
			&run.Theme,
			&run.Character,
			&run.OutputDir,
			&run.TaskCount,
			&run.Failed,
			&run.CreatedAt,
			&run.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ledger: scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ledger: list runs: %w", err)
	}
	return runs, nil
}

func (r *Repository) GetRun(ctx context.Context, runID string) (*domain.Run, error) {
	var run domain.Run
	err := r.db.QueryRow(ctx, sqlinline.QSelectRunByID, runID).Scan(
		&run.ID,
		&run.ModelUUID,
		&run.Provider,
		&run.Theme,
		&run.Character,
		&run.OutputDir,
		&run.TaskCount,
		&run.Failed,
		&run.CreatedAt,
		&run.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ledger: get run %s: %w", runID, err)
	}
	return &run, nil
}

func (r *Repository) ListTasks(ctx context.Context, runID string) ([]domain.TaskRecord, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListTasksByRun, runID)
	if err != nil {
		return nil, fmt.Errorf("ledger: list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.TaskRecord{}
	for rows.Next() {
		var (
			rec    domain.TaskRecord
			status string
			urls   string
		)
		if err := rows.Scan(
			&rec.RunID,
			&rec.Index,
			&rec.StyleKey,
			&rec.TaskID,
			&rec.Prompt,
			&status,
			&rec.ErrorMessage,
			&urls,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ledger: scan task: %w", err)
		}
		rec.Status = domain.TaskStatus(status)
		if urls != "" {
			if err := json.Unmarshal([]byte(urls), &rec.ResultURLs); err != nil {
				return nil, fmt.Errorf("ledger: decode result urls: %w", err)
			}
		}
		tasks = append(tasks, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ledger: list tasks: %w", err)
	}
	return tasks, nil
}

var (
	_ domain.TaskLedger = (*Repository)(nil)
	_ domain.RunReader  = (*Repository)(nil)
)
