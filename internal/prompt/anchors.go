package prompt

import (
	"fmt"

	"examplegen/internal/catalog"
	"examplegen/internal/domain"
)

// AnchorPicker hands out subject anchors that are unique within one run.
type AnchorPicker struct {
	runID string
	pool  []string
	used  map[string]struct{}
}

// NewAnchorPicker returns a picker over the catalog anchor pool.
func NewAnchorPicker(runID string) *AnchorPicker {
	return NewAnchorPickerWithPool(runID, catalog.SubjectAnchors())
}

// NewAnchorPickerWithPool returns a picker over a caller supplied pool.
func NewAnchorPickerWithPool(runID string, pool []string) *AnchorPicker {
	return &AnchorPicker{
		runID: runID,
		pool:  append([]string(nil), pool...),
		used:  make(map[string]struct{}, len(pool)),
	}
}

// Pick assigns the first unused anchor from the style's shuffled pool.
func (p *AnchorPicker) Pick(styleKey string) (string, error) {
	if len(p.used) >= len(p.pool) {
		return "", domain.ErrAnchorPoolExhausted
	}
	for _, candidate := range shuffled(p.runID+":"+styleKey+":subject-anchor", p.pool) {
		if _, taken := p.used[candidate]; taken {
			continue
		}
		p.used[candidate] = struct{}{}
		return candidate, nil
	}
	return "", fmt.Errorf("pick subject anchor for %s: %w", styleKey, domain.ErrAnchorPoolExhausted)
}
