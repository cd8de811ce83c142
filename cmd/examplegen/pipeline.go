package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"examplegen/internal/collector"
	"examplegen/internal/convert"
	"examplegen/internal/domain"
	"examplegen/internal/gallery"
	"examplegen/internal/infra"
	"examplegen/internal/pipeline"
	"examplegen/internal/storage"
)

const (
	storeR2    = "r2"
	storeLocal = "local"

	defaultPipelineModel = "z-image"
)

func (c *cli) pipelineCmd() *cobra.Command {
	var (
		payload    payloadFlags
		provider   providerFlags
		workDir    string
		galleryCfg string
		storeKind  string
	)
	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Generate, convert to WebP, upload and write the gallery config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now := time.Now()
			spec, err := payload.resolve(now)
			if err != nil {
				return err
			}
			if err := c.cfg.RequireCloudinary(); err != nil {
				return err
			}
			store, err := c.objectStore(storeKind)
			if err != nil {
				return err
			}
			converter, err := convert.New(convert.Options{
				CloudName:  c.cfg.CloudinaryCloudName,
				APIKey:     c.cfg.CloudinaryAPIKey,
				APISecret:  c.cfg.CloudinaryAPISecret,
				Folder:     c.cfg.CloudinaryFolder,
				HTTPClient: infra.NewHTTPClient(c.cfg.DownloadTimeout),
				Logger:     &c.logger,
			})
			if err != nil {
				return err
			}

			dir, err := ensureWorkDir(workDir, now)
			if err != nil {
				return err
			}

			repo, closeLedger, err := c.openLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			runner, err := c.newRunner(&provider, taskLedger(repo))
			if err != nil {
				return err
			}
			result, err := pipeline.RunFull(ctx, pipeline.FullOptions{
				Runner:      runner,
				Converter:   converter,
				Store:       store,
				KeyPrefix:   c.cfg.R2KeyPrefix,
				GalleryPath: galleryCfg,
				Gallery:     gallery.Options{AspectRatio: spec.Payload.AspectRatio},
			}, spec, dir)
			var partial *collector.PartialFailureError
			if err != nil && !errors.As(err, &partial) {
				return err
			}
			if perr := c.printJSON(result); perr != nil {
				return perr
			}
			return err
		},
	}
	payload.register(cmd, defaultPipelineModel)
	provider.register(cmd)
	fs := cmd.Flags()
	fs.StringVar(&workDir, "work-dir", "", "working directory (default: .temp/z-image-full-pipeline-<timestamp>)")
	fs.StringVar(&galleryCfg, "gallery-config", gallery.DefaultConfigPath, "gallery config file to write")
	fs.StringVar(&storeKind, "store", storeR2, "upload target: r2 or local")
	return cmd
}

func (c *cli) objectStore(kind string) (storage.ObjectStore, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case storeR2, "":
		if err := c.cfg.RequireObjectStorage(); err != nil {
			return nil, err
		}
		return storage.NewR2Store(storage.R2Options{
			Endpoint:      c.cfg.R2Endpoint,
			Bucket:        c.cfg.R2Bucket,
			AccessKeyID:   c.cfg.R2AccessKeyID,
			SecretKey:     c.cfg.R2SecretKey,
			Region:        c.cfg.R2Region,
			UseSSL:        c.cfg.R2UseSSL,
			PublicBaseURL: c.cfg.R2PublicBaseURL,
		})
	case storeLocal:
		dir := c.cfg.LocalStorageDir
		if dir == "" {
			dir = filepath.Join(".temp", "object-store")
		}
		return storage.NewFileStore(dir, c.cfg.R2PublicBaseURL)
	default:
		return nil, fmt.Errorf("%w: unsupported store %q", domain.ErrInvalidConfig, kind)
	}
}

func ensureWorkDir(dir string, now time.Time) (string, error) {
	if dir == "" {
		dir = filepath.Join(".temp", "z-image-full-pipeline-"+now.Format("20060102-150405"))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	return dir, nil
}
