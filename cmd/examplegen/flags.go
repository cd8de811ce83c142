package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"examplegen/internal/catalog"
	"examplegen/internal/domain"
	"examplegen/internal/infra"
	"examplegen/internal/pipeline"
	"examplegen/internal/poller"
	"examplegen/internal/prompt"
	"examplegen/internal/providers/generation"
)

// payloadFlags are the inputs that shape every payload of a run.
type payloadFlags struct {
	ModelUUID          string
	Types              string
	Theme              string
	Character          string
	LockCharacter      bool
	RunID              string
	AspectRatio        string
	BatchSize          int
	VisibilityLevel    string
	ReferenceImageURLs string
}

func (f *payloadFlags) register(cmd *cobra.Command, defaultModel string) {
	fs := cmd.Flags()
	fs.StringVar(&f.ModelUUID, "model-uuid", defaultModel, "model identifier sent with every payload")
	fs.StringVar(&f.Types, "types", "", "comma separated style keys (default: built-in set)")
	fs.StringVar(&f.Theme, "theme", "", "theme applied to every style instead of its default")
	fs.StringVar(&f.Character, "character", "", "character name or description")
	fs.BoolVar(&f.LockCharacter, "lock-character", false, "keep the character identity fixed across styles")
	fs.StringVar(&f.RunID, "run-id", "", "seed for deterministic variety (default: generated)")
	fs.StringVar(&f.AspectRatio, "aspect-ratio", "3:4", "aspect ratio of generated images")
	fs.IntVar(&f.BatchSize, "batch-size", 1, "images per task, 1..4")
	fs.StringVar(&f.VisibilityLevel, "visibility-level", "public", "visibility level of generated images")
	fs.StringVar(&f.ReferenceImageURLs, "reference-image-urls", "", "comma separated reference image URLs")
}

// resolve validates the flags and resolves them into a run.
func (f *payloadFlags) resolve(now time.Time) (pipeline.RunSpec, error) {
	keys, err := catalog.ParseTypes(f.Types)
	if err != nil {
		return pipeline.RunSpec{}, err
	}
	runID := strings.TrimSpace(f.RunID)
	if runID == "" {
		runID = pipeline.NewRunID(now)
	}
	opts := prompt.PayloadOptions{
		RunID:              runID,
		ModelUUID:          strings.TrimSpace(f.ModelUUID),
		Theme:              f.Theme,
		Character:          f.Character,
		LockCharacter:      f.LockCharacter,
		AspectRatio:        f.AspectRatio,
		BatchSize:          f.BatchSize,
		VisibilityLevel:    f.VisibilityLevel,
		ReferenceImageURLs: prompt.SplitList(f.ReferenceImageURLs),
	}
	if err := opts.Validate(); err != nil {
		return pipeline.RunSpec{}, err
	}
	return pipeline.RunSpec{Payload: opts, StyleKeys: keys}, nil
}

// providerFlags select the generation provider and how it is polled.
type providerFlags struct {
	Provider     string
	APIBase      string
	Headers      []string
	PollTimeout  int
	PollInterval int
}

func (f *providerFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.Provider, "provider", generation.ProviderKie, "generation provider: kie or project")
	fs.StringVar(&f.APIBase, "api-base", "", "API base URL, required for provider=project")
	fs.StringArrayVar(&f.Headers, "header", nil, `extra request header "Key: Value", repeatable`)
	fs.IntVar(&f.PollTimeout, "poll-timeout", int(poller.DefaultTimeout/time.Second), "seconds to wait for each task")
	fs.IntVar(&f.PollInterval, "poll-interval", int(poller.DefaultInterval/time.Second), "seconds between status queries")
}

func (f *providerFlags) pollSettings() (time.Duration, time.Duration, error) {
	timeout := time.Duration(f.PollTimeout) * time.Second
	interval := time.Duration(f.PollInterval) * time.Second
	if err := poller.ValidateSettings(timeout, interval); err != nil {
		return 0, 0, err
	}
	return timeout, interval, nil
}

// client builds the provider client. The KIE key is only required when the
// kie provider is selected.
func (f *providerFlags) client(cfg *infra.Config, logger *infra.Logger) (*generation.Client, error) {
	provider := strings.ToLower(strings.TrimSpace(f.Provider))
	if provider == "" {
		provider = generation.ProviderKie
	}
	switch provider {
	case generation.ProviderKie:
		if err := cfg.RequireKie(); err != nil {
			return nil, err
		}
	case generation.ProviderProject:
		if strings.TrimSpace(f.APIBase) == "" {
			return nil, fmt.Errorf("%w: api_base is required when provider=project", domain.ErrInvalidConfig)
		}
	}
	headers, err := generation.ParseHeaders(f.Headers)
	if err != nil {
		return nil, err
	}
	adapter, err := generation.NewAdapter(generation.AdapterOptions{
		Provider:   provider,
		KieAPIKey:  cfg.KieAPIKey,
		KieBaseURL: cfg.KieBaseURL,
		APIBase:    f.APIBase,
	})
	if err != nil {
		return nil, err
	}
	return generation.NewClient(generation.Options{
		Adapter:    adapter,
		Headers:    headers,
		HTTPClient: infra.NewHTTPClient(cfg.HTTPTimeout),
		Limiter:    generation.NewLimiter(cfg.ProviderRatePerSecond),
		Logger:     logger,
	})
}
