package pipeline

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"examplegen/internal/collector"
	"examplegen/internal/convert"
	"examplegen/internal/domain"
	"examplegen/internal/gallery"
	"examplegen/internal/prompt"
	"examplegen/internal/storage"
)

type stubSubmitter struct {
	failAt   int
	payloads []domain.Payload
}

func (s *stubSubmitter) Submit(ctx context.Context, payload domain.Payload) (string, error) {
	s.payloads = append(s.payloads, payload)
	n := len(s.payloads)
	if s.failAt > 0 && n == s.failAt {
		return "", errors.New("request failed: 500, body: upstream")
	}
	return "t-" + string(rune('0'+n)), nil
}

type stubPoller struct {
	results map[string]domain.PollResult
}

func (s *stubPoller) Poll(ctx context.Context, taskID string) (domain.PollResult, error) {
	return s.results[taskID], nil
}

type stubLedger struct {
	ops []string
}

func (l *stubLedger) CreateRun(ctx context.Context, run *domain.Run) error {
	l.ops = append(l.ops, "create:"+run.ID)
	return nil
}
func (l *stubLedger) RecordSubmitted(ctx context.Context, runID string, task *domain.Task) error {
	l.ops = append(l.ops, "submitted:"+task.TaskID)
	return nil
}
func (l *stubLedger) RecordResolved(ctx context.Context, runID string, task *domain.Task) error {
	l.ops = append(l.ops, "resolved:"+task.TaskID)
	return nil
}
func (l *stubLedger) FinishRun(ctx context.Context, runID, outputDir string, failed int) error {
	l.ops = append(l.ops, "finish:"+runID)
	return nil
}

type stubConverter struct{}

func (stubConverter) ConvertDir(ctx context.Context, workDir string) (convert.Summary, error) {
	pngs, _ := filepath.Glob(filepath.Join(workDir, "*.png"))
	if len(pngs) == 0 {
		return convert.Summary{}, errors.New("no PNG files found to convert")
	}
	out := filepath.Join(workDir, convert.WebPDir)
	if err := os.MkdirAll(out, 0o755); err != nil {
		return convert.Summary{}, err
	}
	for _, p := range pngs {
		stem := strings.TrimSuffix(filepath.Base(p), ".png")
		if err := os.WriteFile(filepath.Join(out, stem+".webp"), []byte("webp"), 0o644); err != nil {
			return convert.Summary{}, err
		}
	}
	path := filepath.Join(workDir, convert.SummaryFile)
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		return convert.Summary{}, err
	}
	return convert.Summary{Count: len(pngs), Path: path, WebPDir: out}, nil
}

func testSpec() RunSpec {
	return RunSpec{
		Payload: prompt.PayloadOptions{
			RunID:           "run-test",
			ModelUUID:       "z-image",
			AspectRatio:     "3:4",
			BatchSize:       1,
			VisibilityLevel: "public",
		},
		StyleKeys: []string{"noir-cityscape", "mecha-hangar"},
	}
}

func newImageServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("png"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newRunner(t *testing.T, sub *stubSubmitter, poller *stubPoller, ledger domain.TaskLedger, client *http.Client) *Runner {
	t.Helper()
	c, err := collector.New(collector.Options{Poller: poller, HTTPClient: client, Ledger: ledger})
	if err != nil {
		t.Fatalf("collector.New error: %v", err)
	}
	r, err := New(Options{Submitter: sub, Collector: c, Ledger: ledger, Provider: "kie"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return r
}

func TestSubmitAbortsOnFirstFailure(t *testing.T) {
	sub := &stubSubmitter{failAt: 2}
	r := newRunner(t, sub, &stubPoller{}, nil, nil)

	spec := testSpec()
	spec.StyleKeys = []string{"noir-cityscape", "mecha-hangar", "fantasy-epic"}
	tasks, err := r.Submit(context.Background(), spec)
	if err == nil || !strings.Contains(err.Error(), "mecha-hangar") {
		t.Fatalf("expected submission error naming the style, got %v", err)
	}
	if len(sub.payloads) != 2 {
		t.Fatalf("expected submission to stop after the failure, got %d calls", len(sub.payloads))
	}
	if len(tasks) != 1 || tasks[0].Status != domain.TaskStatusSubmitted {
		t.Fatalf("unexpected tasks: %#v", tasks)
	}
}

func TestSubmitRejectsUnknownStyle(t *testing.T) {
	sub := &stubSubmitter{}
	r := newRunner(t, sub, &stubPoller{}, nil, nil)
	spec := testSpec()
	spec.StyleKeys = []string{"not-a-style"}
	if _, err := r.Submit(context.Background(), spec); !errors.Is(err, domain.ErrUnknownStyle) {
		t.Fatalf("expected ErrUnknownStyle, got %v", err)
	}
	if len(sub.payloads) != 0 {
		t.Fatalf("nothing should be submitted")
	}
}

func TestRunAndCollectTwoStyles(t *testing.T) {
	srv := newImageServer(t)
	sub := &stubSubmitter{}
	poller := &stubPoller{results: map[string]domain.PollResult{
		"t-1": {Status: domain.TaskStatusCompleted, URLs: []string{srv.URL + "/one.png"}},
		"t-2": {Status: domain.TaskStatusFailed, ErrorMessage: "nsfw"},
	}}
	ledger := &stubLedger{}
	r := newRunner(t, sub, poller, ledger, srv.Client())

	spec := testSpec()
	tasks, err := r.Submit(context.Background(), spec)
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	dir := t.TempDir()
	summary, err := r.Collect(context.Background(), spec, dir, tasks)
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}

	m, err := collector.ReadManifest(summary.ManifestPath)
	if err != nil {
		t.Fatalf("ReadManifest error: %v", err)
	}
	if len(m.Tasks) != 2 || len(m.Tasks[0].Files) != 1 || len(m.Tasks[1].Files) != 0 {
		t.Fatalf("unexpected manifest: %#v", m.Tasks)
	}
	if summary.DownloadedFiles != 1 || len(summary.FailedTasks) != 1 {
		t.Fatalf("unexpected summary: %#v", summary)
	}
	var partial *collector.PartialFailureError
	if !errors.As(summary.Err(), &partial) {
		t.Fatalf("expected partial failure, got %v", summary.Err())
	}

	want := []string{"create:run-test", "submitted:t-1", "submitted:t-2", "resolved:t-1", "resolved:t-2", "finish:run-test"}
	if strings.Join(ledger.ops, ",") != strings.Join(want, ",") {
		t.Fatalf("ledger ops = %v", ledger.ops)
	}
}

func TestRunFull(t *testing.T) {
	srv := newImageServer(t)
	sub := &stubSubmitter{}
	poller := &stubPoller{results: map[string]domain.PollResult{
		"t-1": {Status: domain.TaskStatusCompleted, URLs: []string{srv.URL + "/one.png"}},
		"t-2": {Status: domain.TaskStatusTimeout, ErrorMessage: "Polling timed out after 10 seconds"},
	}}
	r := newRunner(t, sub, poller, nil, srv.Client())
	store, err := storage.NewFileStore(t.TempDir(), "https://cdn.example.com")
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}

	workDir := t.TempDir()
	galleryPath := filepath.Join(t.TempDir(), "gallery.json")
	result, err := RunFull(context.Background(), FullOptions{
		Runner:      r,
		Converter:   stubConverter{},
		Store:       store,
		KeyPrefix:   "gallery/anime/z-image",
		GalleryPath: galleryPath,
		Gallery:     gallery.Options{Now: func() time.Time { return time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC) }},
	}, testSpec(), workDir)

	var partial *collector.PartialFailureError
	if !errors.As(err, &partial) {
		t.Fatalf("expected partial failure, got %v", err)
	}
	if result.ConfigPath != galleryPath {
		t.Fatalf("config path = %q", result.ConfigPath)
	}

	f, err := os.Open(result.RequestsJSONL)
	if err != nil {
		t.Fatalf("open requests: %v", err)
	}
	defer f.Close()
	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines++
	}
	if lines != 2 {
		t.Fatalf("requests.jsonl lines = %d", lines)
	}

	raw, err := os.ReadFile(galleryPath)
	if err != nil {
		t.Fatalf("read gallery: %v", err)
	}
	var cfg gallery.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		t.Fatalf("decode gallery: %v", err)
	}
	if len(cfg.Examples) != 1 || cfg.Examples[0].R2Path != "gallery/anime/z-image/01-noir-cityscape-01.webp" {
		t.Fatalf("unexpected examples: %#v", cfg.Examples)
	}
	if _, err := os.Stat(result.UploadSummary); err != nil {
		t.Fatalf("upload summary missing: %v", err)
	}
}

func TestNewRunID(t *testing.T) {
	id := NewRunID(time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC))
	if !regexp.MustCompile(`^run-20261019083000-[0-9a-f]{8}$`).MatchString(id) {
		t.Fatalf("unexpected run id %q", id)
	}
}

func TestPayloads(t *testing.T) {
	planned, err := Plan(testSpec())
	if err != nil {
		t.Fatalf("Plan error: %v", err)
	}
	payloads := Payloads(planned)
	if len(payloads) != 2 || payloads[0].GenType != "anime" || payloads[0].ModelUUID != "z-image" {
		t.Fatalf("unexpected payloads: %#v", payloads)
	}
}
