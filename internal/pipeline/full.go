package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"examplegen/internal/collector"
	"examplegen/internal/convert"
	"examplegen/internal/gallery"
	"examplegen/internal/storage"
)

const RequestsFile = "requests.jsonl"

// Converter turns the PNG files of a directory into WebP.
type Converter interface {
	ConvertDir(ctx context.Context, workDir string) (convert.Summary, error)
}

// FullOptions configures RunFull.
type FullOptions struct {
	Runner      *Runner
	Converter   Converter
	Store       storage.ObjectStore
	KeyPrefix   string
	GalleryPath string
	Gallery     gallery.Options
}

// FullResult lists the artifacts of a full pipeline run.
type FullResult struct {
	WorkDir       string            `json:"work_dir"`
	RequestsJSONL string            `json:"requests_jsonl"`
	Manifest      string            `json:"generation_summary"`
	WebPSummary   string            `json:"webp_summary"`
	UploadSummary string            `json:"r2_summary"`
	ConfigPath    string            `json:"config_path"`
	Collection    collector.Summary `json:"collection"`
}

// RunFull generates, collects, converts, uploads and writes the gallery
// config. Fatal errors stop the pipeline at the failing stage. When every
// stage succeeds but some tasks failed, the result is complete and the
// returned error is a *collector.PartialFailureError.
func RunFull(ctx context.Context, opts FullOptions, spec RunSpec, workDir string) (FullResult, error) {
	if opts.Runner == nil || opts.Converter == nil || opts.Store == nil {
		return FullResult{}, errors.New("pipeline: runner, converter and store are required")
	}
	result := FullResult{WorkDir: workDir}

	planned, err := Plan(spec)
	if err != nil {
		return result, err
	}
	result.RequestsJSONL = filepath.Join(workDir, RequestsFile)
	if err := WriteJSONL(result.RequestsJSONL, planned); err != nil {
		return result, err
	}

	tasks, err := opts.Runner.SubmitPlanned(ctx, spec, planned)
	if err != nil {
		return result, err
	}
	summary, err := opts.Runner.Collect(ctx, spec, workDir, tasks)
	if err != nil {
		return result, err
	}
	result.Collection = summary
	result.Manifest = summary.ManifestPath

	webp, err := opts.Converter.ConvertDir(ctx, workDir)
	if err != nil {
		return result, fmt.Errorf("pipeline: convert: %w", err)
	}
	result.WebPSummary = webp.Path

	result.UploadSummary = filepath.Join(workDir, storage.UploadSummaryFile)
	uploads, err := storage.UploadDir(ctx, opts.Store, storage.UploadOptions{
		SourceDir:   filepath.Join(workDir, convert.WebPDir),
		KeyPrefix:   opts.KeyPrefix,
		SummaryPath: result.UploadSummary,
		Logger:      opts.Runner.logger,
	})
	if err != nil {
		return result, fmt.Errorf("pipeline: upload: %w", err)
	}

	manifest, err := collector.ReadManifest(summary.ManifestPath)
	if err != nil {
		return result, err
	}
	galleryPath := opts.GalleryPath
	if galleryPath == "" {
		galleryPath = gallery.DefaultConfigPath
	}
	if err := gallery.Write(galleryPath, gallery.Build(manifest, uploads, opts.Gallery)); err != nil {
		return result, err
	}
	result.ConfigPath = galleryPath

	return result, summary.Err()
}
