package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeGo(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLintAcceptsMarkedQueries(t *testing.T) {
	dir := t.TempDir()
	writeGo(t, dir, "q.go", "package q\n\nconst QOne = `--sql 11111111-1111-4111-8111-111111111111\nselect 1`\n\nconst QTwo = `--sql 22222222-2222-4222-8222-222222222222\ncreate table t (id int)`\n\nconst label = \"plain text\"\n")

	vs, err := lint([]string{dir})
	if err != nil {
		t.Fatalf("lint returned error: %v", err)
	}
	if len(vs) != 0 {
		t.Fatalf("unexpected violations: %v", vs)
	}
}

func TestLintReportsMissingAndDuplicateMarkers(t *testing.T) {
	dir := t.TempDir()
	writeGo(t, dir, "a.go", "package q\n\nconst QA = `--sql 11111111-1111-4111-8111-111111111111\nselect 1`\n\nconst QBare = `update runs set failed = 1`\n")
	writeGo(t, dir, "b.go", "package q\n\nconst QB = `--sql 11111111-1111-4111-8111-111111111111\ndelete from runs`\n")

	vs, err := lint([]string{dir})
	if err != nil {
		t.Fatalf("lint returned error: %v", err)
	}
	if len(vs) != 2 {
		t.Fatalf("violations = %v, want 2", vs)
	}
	var missing, dup bool
	for _, v := range vs {
		switch {
		case v.name == "QBare" && strings.Contains(v.message, "missing"):
			missing = true
		case v.name == "QB" && strings.Contains(v.message, "already used by QA"):
			dup = true
		}
	}
	if !missing || !dup {
		t.Fatalf("violations = %v", vs)
	}
}

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	bad := writeGo(t, dir, "bad.go", "package q\n\nconst Q = `select 1`\n")
	var stderr bytes.Buffer

	if code := run([]string{bad}, &stderr); code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "bad.go") {
		t.Fatalf("stderr = %q", stderr.String())
	}
	if code := run([]string{filepath.Join(dir, "missing")}, &stderr); code != 1 {
		t.Fatalf("exit for missing target = %d, want 1", code)
	}
}

func TestLedgerQueriesAreMarked(t *testing.T) {
	vs, err := lint([]string{filepath.Join("..", "..", "sqlinline")})
	if err != nil {
		t.Fatalf("lint returned error: %v", err)
	}
	if len(vs) != 0 {
		t.Fatalf("unmarked ledger queries: %v", vs)
	}
}
