package prompt

import (
	"fmt"
	"strings"

	"examplegen/internal/domain"
)

const (
	MinBatchSize = 1
	MaxBatchSize = 4

	genTypeAnime = "anime"
)

// PayloadOptions carries the run-wide settings shared by every payload.
type PayloadOptions struct {
	RunID              string
	ModelUUID          string
	Theme              string
	Character          string
	LockCharacter      bool
	AspectRatio        string
	BatchSize          int
	VisibilityLevel    string
	ReferenceImageURLs []string
}

// Validate reports configuration errors that must abort the run.
func (o PayloadOptions) Validate() error {
	if strings.TrimSpace(o.ModelUUID) == "" {
		return fmt.Errorf("%w: model_uuid must not be empty", domain.ErrInvalidConfig)
	}
	if o.BatchSize < MinBatchSize || o.BatchSize > MaxBatchSize {
		return fmt.Errorf("%w: batch_size must be in range %d..%d", domain.ErrInvalidConfig, MinBatchSize, MaxBatchSize)
	}
	return nil
}

// SplitList splits a comma separated value, dropping blanks.
func SplitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// BuildPayload assembles the request body for styleKey.
func BuildPayload(opts PayloadOptions, styleKey, subjectAnchor string) (domain.Payload, error) {
	if err := opts.Validate(); err != nil {
		return domain.Payload{}, err
	}
	text, err := Build(Options{
		RunID:         opts.RunID,
		StyleKey:      styleKey,
		SubjectAnchor: subjectAnchor,
		Theme:         opts.Theme,
		Character:     opts.Character,
		LockCharacter: opts.LockCharacter,
	})
	if err != nil {
		return domain.Payload{}, err
	}
	payload := domain.Payload{
		GenType:         genTypeAnime,
		Prompt:          text,
		ModelUUID:       opts.ModelUUID,
		AspectRatio:     opts.AspectRatio,
		BatchSize:       opts.BatchSize,
		VisibilityLevel: opts.VisibilityLevel,
	}
	for _, u := range opts.ReferenceImageURLs {
		if u = strings.TrimSpace(u); u != "" {
			payload.ReferenceImageURLs = append(payload.ReferenceImageURLs, u)
		}
	}
	return payload, nil
}

// Planned is a payload paired with its style key, ready for submission.
type Planned struct {
	StyleKey string
	Anchor   string
	Payload  domain.Payload
}

// Plan builds payloads for every style in order, assigning unique anchors.
func Plan(opts PayloadOptions, styleKeys []string) ([]Planned, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	picker := NewAnchorPicker(opts.RunID)
	planned := make([]Planned, 0, len(styleKeys))
	for _, key := range styleKeys {
		anchor, err := picker.Pick(key)
		if err != nil {
			return nil, err
		}
		payload, err := BuildPayload(opts, key, anchor)
		if err != nil {
			return nil, err
		}
		planned = append(planned, Planned{StyleKey: key, Anchor: anchor, Payload: payload})
	}
	return planned, nil
}
