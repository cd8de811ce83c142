package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"examplegen/internal/infra"
)

// UploadSummaryFile is written next to the uploaded directory.
const UploadSummaryFile = "r2-upload-summary.json"

// UploadedObject records one uploaded file.
type UploadedObject struct {
	File string `json:"file"`
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int    `json:"size"`
}

// UploadSummary is the JSON document written after an upload.
type UploadSummary struct {
	Count    int              `json:"count"`
	Uploaded []UploadedObject `json:"uploaded"`
}

// UploadOptions selects what UploadDir publishes.
type UploadOptions struct {
	SourceDir   string
	KeyPrefix   string
	SummaryPath string
	Logger      *infra.Logger
}

// UploadDir uploads every .webp file in SourceDir in name order under
// KeyPrefix and writes the summary to SummaryPath.
func UploadDir(ctx context.Context, store ObjectStore, opts UploadOptions) (UploadSummary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = infra.NopLogger()
	}
	entries, err := os.ReadDir(opts.SourceDir)
	if err != nil {
		return UploadSummary{}, fmt.Errorf("storage: read %s: %w", opts.SourceDir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".webp") {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return UploadSummary{}, errors.New("storage: no webp files found")
	}
	sort.Strings(files)

	summary := UploadSummary{Uploaded: make([]UploadedObject, 0, len(files))}
	for _, name := range files {
		data, err := os.ReadFile(filepath.Join(opts.SourceDir, name))
		if err != nil {
			return UploadSummary{}, fmt.Errorf("storage: read %s: %w", name, err)
		}
		key := path.Join(strings.Trim(opts.KeyPrefix, "/"), name)
		url, err := store.Put(ctx, key, data, ObjectMeta{ContentType: ContentTypeWebP, ContentDisposition: DispositionInline})
		if err != nil {
			return UploadSummary{}, err
		}
		logger.Info().Str("key", key).Int("size", len(data)).Msg("storage: uploaded")
		summary.Uploaded = append(summary.Uploaded, UploadedObject{File: name, Key: key, URL: url, Size: len(data)})
	}
	summary.Count = len(summary.Uploaded)

	if opts.SummaryPath != "" {
		encoded, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return UploadSummary{}, fmt.Errorf("storage: encode summary: %w", err)
		}
		if err := os.WriteFile(opts.SummaryPath, encoded, 0o644); err != nil {
			return UploadSummary{}, fmt.Errorf("storage: write summary: %w", err)
		}
	}
	return summary, nil
}
