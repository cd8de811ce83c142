package domain

import (
	"fmt"
	"time"
)

// TaskStatus enumerates the normalized lifecycle of a generation task.
type TaskStatus string

const (
	TaskStatusSubmitted TaskStatus = "submitted"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
	TaskStatusTimeout   TaskStatus = "timeout"
	TaskStatusUnknown   TaskStatus = "unknown"
)

// IsTerminal reports whether no further transitions may occur.
func (s TaskStatus) IsTerminal() bool {
	switch s {
	case TaskStatusCompleted, TaskStatusFailed, TaskStatusTimeout:
		return true
	default:
		return false
	}
}

// Payload is the provider-neutral request body built for one style.
type Payload struct {
	GenType            string   `json:"gen_type"`
	Prompt             string   `json:"prompt"`
	ModelUUID          string   `json:"model_uuid"`
	AspectRatio        string   `json:"aspect_ratio"`
	BatchSize          int      `json:"batch_size"`
	VisibilityLevel    string   `json:"visibility_level"`
	ReferenceImageURLs []string `json:"reference_image_urls,omitempty"`
}

// PollResult is the outcome of polling one task to a terminal state.
type PollResult struct {
	Status       TaskStatus
	URLs         []string
	ErrorMessage string
	Raw          []byte
}

// Task tracks one submitted generation request from submission to terminal status.
type Task struct {
	Index        int
	StyleKey     string
	Prompt       string
	Payload      Payload
	TaskID       string
	Status       TaskStatus
	ResultURLs   []string
	ErrorMessage string
	SubmittedAt  time.Time
	ResolvedAt   time.Time
}

// NewSubmittedTask records a freshly created provider task.
func NewSubmittedTask(index int, styleKey string, payload Payload, taskID string, at time.Time) *Task {
	return &Task{
		Index:       index,
		StyleKey:    styleKey,
		Prompt:      payload.Prompt,
		Payload:     payload,
		TaskID:      taskID,
		Status:      TaskStatusSubmitted,
		SubmittedAt: at,
	}
}

// Resolve applies a terminal poll result. A task transitions at most once.
func (t *Task) Resolve(res PollResult, at time.Time) error {
	if t.Status.IsTerminal() {
		return fmt.Errorf("task %s (%s): %w", t.TaskID, t.Status, ErrTaskAlreadyTerminal)
	}
	if !res.Status.IsTerminal() {
		return fmt.Errorf("task %s: non-terminal poll result %q", t.TaskID, res.Status)
	}
	t.Status = res.Status
	t.ResultURLs = append([]string(nil), res.URLs...)
	t.ErrorMessage = res.ErrorMessage
	t.ResolvedAt = at
	return nil
}
