// Package catalog holds the static style profiles and phrase pools used to
// build example prompts.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"examplegen/internal/domain"
)

const (
	// NegativeFragment lists artifacts every prompt asks the model to avoid.
	NegativeFragment = "blurry, low quality, watermark, text artifacts, distorted anatomy, incorrect proportions, noisy artifacts"

	FallbackTheme    = "anime model showcase benchmark"
	FallbackCategory = "fine-detail"
)

// VariantPool names a pool of interchangeable prompt fragments.
type VariantPool string

const (
	PoolCamera  VariantPool = "camera"
	PoolMood    VariantPool = "mood"
	PoolDetail  VariantPool = "detail"
	PoolQuality VariantPool = "quality"
)

var titleCaser = cases.Title(language.English)

// Profile returns the style profile registered under key.
func Profile(key string) (domain.StyleProfile, bool) {
	p, ok := profiles[key]
	return p, ok
}

// Keys returns every style key in lexical order.
func Keys() []string {
	keys := make([]string, 0, len(profiles))
	for k := range profiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseTypes splits a comma separated list of style keys. Empty input yields
// DefaultTypes. Unknown keys are reported together.
func ParseTypes(raw string) ([]string, error) {
	var parsed []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			parsed = append(parsed, item)
		}
	}
	if len(parsed) == 0 {
		return append([]string(nil), DefaultTypes...), nil
	}
	var unknown []string
	for _, key := range parsed {
		if _, ok := profiles[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w(s): %s", domain.ErrUnknownStyle, strings.Join(unknown, ", "))
	}
	return parsed, nil
}

// DefaultTheme returns the theme used when the caller supplies none.
func DefaultTheme(key string) string {
	if theme, ok := defaultThemes[key]; ok {
		return theme
	}
	return FallbackTheme
}

// Category maps a style key onto its broad art-direction category.
func Category(key string) string {
	if c, ok := styleCategories[key]; ok {
		return c
	}
	return FallbackCategory
}

func CategoryDescription(category string) string {
	return categoryDescriptions[category]
}

func CategoryInstruction(category string) string {
	return categoryInstructions[category]
}

// SubjectAnchors returns a copy of the anchor pool.
func SubjectAnchors() []string {
	return append([]string(nil), subjectAnchors...)
}

// Variants returns the fragments of the named pool.
func Variants(pool VariantPool) []string {
	switch pool {
	case PoolCamera:
		return cameraVariants
	case PoolMood:
		return moodVariants
	case PoolDetail:
		return detailVariants
	case PoolQuality:
		return qualityFragments
	default:
		return nil
	}
}

// Display returns gallery metadata for key, deriving it from the key itself
// when the style has no curated entry.
func Display(key string) domain.StyleDisplay {
	if d, ok := displays[key]; ok {
		return d
	}
	return domain.StyleDisplay{
		Title:    titleCaser.String(strings.ReplaceAll(key, "-", " ")),
		Alt:      key,
		StyleTag: key,
	}
}
