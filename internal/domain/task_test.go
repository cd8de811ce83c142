package domain

import (
	"errors"
	"testing"
	"time"
)

func TestTaskResolveOnce(t *testing.T) {
	task := NewSubmittedTask(1, "fantasy-epic", Payload{Prompt: "p"}, "task-1", time.Now())
	if task.Status != TaskStatusSubmitted {
		t.Fatalf("status = %q, want submitted", task.Status)
	}
	if err := task.Resolve(PollResult{Status: TaskStatusCompleted, URLs: []string{"https://x/a.png"}}, time.Now()); err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	err := task.Resolve(PollResult{Status: TaskStatusFailed}, time.Now())
	if !errors.Is(err, ErrTaskAlreadyTerminal) {
		t.Fatalf("expected ErrTaskAlreadyTerminal, got %v", err)
	}
	if task.Status != TaskStatusCompleted {
		t.Fatalf("status changed after terminal: %q", task.Status)
	}
	if len(task.ResultURLs) != 1 {
		t.Fatalf("unexpected urls: %#v", task.ResultURLs)
	}
}

func TestTaskResolveRejectsNonTerminal(t *testing.T) {
	task := NewSubmittedTask(1, "noir-cityscape", Payload{}, "task-2", time.Now())
	if err := task.Resolve(PollResult{Status: TaskStatusUnknown}, time.Now()); err == nil {
		t.Fatalf("expected error for non-terminal result")
	}
	if task.Status != TaskStatusSubmitted {
		t.Fatalf("status = %q, want submitted", task.Status)
	}
}

func TestManifestAppendNormalizesFiles(t *testing.T) {
	var m Manifest
	m.Append(ManifestTask{Index: 1, StyleKey: "slice-of-life"})
	if m.Tasks[0].Files == nil {
		t.Fatalf("files should be an empty slice, not nil")
	}
}
