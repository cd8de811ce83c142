package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"examplegen/internal/collector"
	"examplegen/internal/domain"
	"examplegen/internal/infra"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("APP_ENV", "test")
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExitCode(t *testing.T) {
	var stderr bytes.Buffer
	partial := fmt.Errorf("pipeline: %w", &collector.PartialFailureError{Failed: []domain.FailedTask{{StyleKey: "a"}}})

	if got := exitCode(nil, &stderr); got != exitOK {
		t.Fatalf("nil error exit = %d", got)
	}
	if got := exitCode(partial, &stderr); got != exitPartial {
		t.Fatalf("partial failure exit = %d", got)
	}
	if got := exitCode(errors.New("boom"), &stderr); got != exitFailure {
		t.Fatalf("fatal exit = %d", got)
	}
	if !strings.Contains(stderr.String(), "Error: boom") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestTypesCommandListsSortedKeys(t *testing.T) {
	out, err := execute(t, "types")
	if err != nil {
		t.Fatalf("types returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected several style keys, got %q", out)
	}
	for i := 1; i < len(lines); i++ {
		if lines[i-1] > lines[i] {
			t.Fatalf("keys not sorted: %q before %q", lines[i-1], lines[i])
		}
	}
}

func TestBuildCommandPrintsPayloads(t *testing.T) {
	out, err := execute(t, "build",
		"--model-uuid", "model-1",
		"--types", "fantasy-epic,cyberpunk-streetscape",
		"--run-id", "run-test",
	)
	if err != nil {
		t.Fatalf("build returned error: %v", err)
	}
	var got struct {
		Count    int               `json:"count"`
		Payloads []json.RawMessage `json:"payloads"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if got.Count != 2 || len(got.Payloads) != 2 {
		t.Fatalf("count = %d, payloads = %d", got.Count, len(got.Payloads))
	}
}

func TestBuildCommandIsDeterministicForRunID(t *testing.T) {
	args := []string{"build", "--model-uuid", "model-1", "--types", "fantasy-epic", "--run-id", "run-fixed"}
	first, err := execute(t, args...)
	if err != nil {
		t.Fatalf("build returned error: %v", err)
	}
	second, _ := execute(t, args...)
	if first != second {
		t.Fatalf("output differs for the same run id")
	}
}

func TestBuildCommandRejectsInvalidInput(t *testing.T) {
	cases := map[string][]string{
		"missing model": {"build", "--types", "fantasy-epic"},
		"batch size":    {"build", "--model-uuid", "m", "--batch-size", "5"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := execute(t, args...); !errors.Is(err, domain.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
	if _, err := execute(t, "build", "--model-uuid", "m", "--types", "no-such-style"); !errors.Is(err, domain.ErrUnknownStyle) {
		t.Fatalf("expected ErrUnknownStyle, got %v", err)
	}
}

func TestRunCommandValidatesProviderSettings(t *testing.T) {
	cases := map[string]struct {
		args []string
		want error
	}{
		"project without api base": {
			args: []string{"run", "--model-uuid", "m", "--types", "fantasy-epic", "--provider", "project"},
			want: domain.ErrInvalidConfig,
		},
		"poll timeout too short": {
			args: []string{"run", "--model-uuid", "m", "--types", "fantasy-epic", "--poll-timeout", "5"},
			want: domain.ErrInvalidConfig,
		},
		"poll interval too short": {
			args: []string{"run", "--model-uuid", "m", "--types", "fantasy-epic", "--poll-interval", "1"},
			want: domain.ErrInvalidConfig,
		},
		"bad header": {
			args: []string{"run", "--model-uuid", "m", "--types", "fantasy-epic", "--provider", "project", "--api-base", "http://127.0.0.1:1", "--header", "novalue"},
			want: domain.ErrInvalidConfig,
		},
		"missing kie key": {
			args: []string{"run", "--model-uuid", "m", "--types", "fantasy-epic"},
			want: domain.ErrMissingCredentials,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("KIE_AI_API_KEY", "")
			t.Setenv("API_KEY", "")
			if _, err := execute(t, tc.args...); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPayloadFlagsGenerateRunID(t *testing.T) {
	f := payloadFlags{ModelUUID: " m ", BatchSize: 1, ReferenceImageURLs: "a, ,b"}
	spec, err := f.resolve(time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC))
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}
	if !strings.HasPrefix(spec.Payload.RunID, "run-20240506070809-") {
		t.Fatalf("RunID = %q", spec.Payload.RunID)
	}
	if spec.Payload.ModelUUID != "m" {
		t.Fatalf("ModelUUID = %q", spec.Payload.ModelUUID)
	}
	if len(spec.Payload.ReferenceImageURLs) != 2 {
		t.Fatalf("ReferenceImageURLs = %#v", spec.Payload.ReferenceImageURLs)
	}
	if len(spec.StyleKeys) == 0 {
		t.Fatal("expected default style keys")
	}
}

func TestObjectStoreSelection(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	c := &cli{}
	c.cfg = mustConfig(t)
	c.cfg.LocalStorageDir = t.TempDir()

	if _, err := c.objectStore("local"); err != nil {
		t.Fatalf("local store: %v", err)
	}
	c.cfg.R2Bucket = ""
	if _, err := c.objectStore("r2"); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := c.objectStore("ftp"); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestServeRequiresDatabase(t *testing.T) {
	if _, err := execute(t, "serve"); err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Fatalf("expected DATABASE_URL error, got %v", err)
	}
}

func mustConfig(t *testing.T) *infra.Config {
	t.Helper()
	cfg, err := infra.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	return cfg
}
