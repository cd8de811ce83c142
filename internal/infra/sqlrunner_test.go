package infra

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

type recordingExecutor struct {
	query string
	args  []any
}

func (r *recordingExecutor) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	r.query = query
	r.args = args
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (r *recordingExecutor) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	r.query = query
	return errorRow{err: pgx.ErrNoRows}
}

func (r *recordingExecutor) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	r.query = query
	return nil, errors.New("not implemented")
}

func TestSQLRunnerStripsMarker(t *testing.T) {
	exec := &recordingExecutor{}
	runner := NewSQLRunner(exec, zerolog.Nop())
	query := "--sql 0f0e2c64-5d1a-4c57-9a8e-3c1f5b0e9a11\nupdate runs set failed = $1;"

	if _, err := runner.Exec(context.Background(), query, 2); err != nil {
		t.Fatalf("Exec error: %v", err)
	}
	if exec.query != "update runs set failed = $1;" {
		t.Fatalf("unexpected forwarded query: %q", exec.query)
	}
	if len(exec.args) != 1 || exec.args[0] != 2 {
		t.Fatalf("unexpected args: %#v", exec.args)
	}
}

func TestSQLRunnerRejectsMissingMarker(t *testing.T) {
	runner := NewSQLRunner(&recordingExecutor{}, zerolog.Nop())
	if _, err := runner.Exec(context.Background(), "select 1"); !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("expected ErrMissingMarker, got %v", err)
	}
	var v int
	if err := runner.QueryRow(context.Background(), "select 1").Scan(&v); !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("expected ErrMissingMarker from QueryRow, got %v", err)
	}
}

func TestSQLRunnerQueryRowNoRows(t *testing.T) {
	runner := NewSQLRunner(&recordingExecutor{}, zerolog.Nop())
	var v int
	err := runner.QueryRow(context.Background(), "--sql 0f0e2c64-5d1a-4c57-9a8e-3c1f5b0e9a11\nselect 1").Scan(&v)
	if !IsNoRows(err) {
		t.Fatalf("expected no rows, got %v", err)
	}
}
