package domain

import (
	"context"
	"time"
)

// Run is the persisted header of one generation run.
type Run struct {
	ID        string
	ModelUUID string
	Provider  string
	Theme     string
	Character string
	OutputDir string
	TaskCount int
	Failed    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskRecord is the persisted view of a Task.
type TaskRecord struct {
	RunID        string
	Index        int
	StyleKey     string
	TaskID       string
	Prompt       string
	Status       TaskStatus
	ErrorMessage string
	ResultURLs   []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TaskLedger persists runs and task transitions.
type TaskLedger interface {
	CreateRun(ctx context.Context, run *Run) error
	RecordSubmitted(ctx context.Context, runID string, task *Task) error
	RecordResolved(ctx context.Context, runID string, task *Task) error
	FinishRun(ctx context.Context, runID string, outputDir string, failed int) error
}

// RunReader exposes read access to persisted runs.
type RunReader interface {
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	GetRun(ctx context.Context, runID string) (*Run, error)
	ListTasks(ctx context.Context, runID string) ([]TaskRecord, error)
}
