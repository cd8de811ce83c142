package gallery

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"examplegen/internal/domain"
	"examplegen/internal/storage"
)

func TestStyleFromKey(t *testing.T) {
	cases := map[string]string{
		"gallery/anime/z-image/01-noir-cityscape-01.webp": "noir-cityscape",
		"03-photoreal-portrait-reference-02.webp":         "photoreal-portrait-reference",
		"gallery/plain.webp":                              "",
		"01-x.webp":                                       "",
	}
	for in, want := range cases {
		if got := StyleFromKey(in); got != want {
			t.Errorf("StyleFromKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildSkipsTasksWithoutUpload(t *testing.T) {
	m := domain.Manifest{Tasks: []domain.ManifestTask{
		{Index: 1, StyleKey: "noir-cityscape", Prompt: "p1"},
		{Index: 2, StyleKey: "mecha-hangar", Prompt: "p2"},
		{Index: 3, StyleKey: "pixel-quest", Prompt: "p3"},
	}}
	uploads := storage.UploadSummary{Uploaded: []storage.UploadedObject{
		{Key: "gallery/anime/z-image/01-noir-cityscape-01.webp"},
		{Key: "gallery/anime/z-image/03-pixel-quest-01.webp"},
	}}
	cfg := Build(m, uploads, Options{Now: func() time.Time { return time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC) }})

	if cfg.Version != DefaultVersion || cfg.LastUpdated != "2026-05-06" || cfg.ModelID != "z-image" {
		t.Fatalf("unexpected header: %#v", cfg)
	}
	if len(cfg.Examples) != 2 {
		t.Fatalf("examples = %#v", cfg.Examples)
	}
	first, second := cfg.Examples[0], cfg.Examples[1]
	if first.UUID != "zi-ex-001" || first.Title != "Noir Cityscape" || first.Parameters.Style != "noir" || first.Parameters.Prompt != "p1" {
		t.Fatalf("unexpected first example: %#v", first)
	}
	if second.UUID != "zi-ex-003" || second.SortOrder != 3 || second.Title != "Pixel Quest" || second.Alt != "pixel-quest" {
		t.Fatalf("unexpected second example: %#v", second)
	}
	if first.AspectRatio != "3:4" || first.R2Path != "gallery/anime/z-image/01-noir-cityscape-01.webp" {
		t.Fatalf("unexpected first example paths: %#v", first)
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "examples.json")
	if err := Write(path, Config{Version: "1.2.0", Examples: []Example{}}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasSuffix(string(raw), "}\n") {
		t.Fatalf("expected trailing newline, got %q", raw)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["version"] != "1.2.0" {
		t.Fatalf("version = %v", decoded["version"])
	}
	if _, ok := decoded["lastUpdated"]; !ok {
		t.Fatalf("lastUpdated key missing: %v", decoded)
	}
}
