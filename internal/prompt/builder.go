// Package prompt derives reproducible prompts and payloads for style keys.
package prompt

import (
	"fmt"
	"strings"

	"examplegen/internal/catalog"
	"examplegen/internal/domain"
)

// Variant slots. Changing a slot changes every prompt of every run.
const (
	slotCamera    = 1
	slotMood      = 2
	slotDetail    = 3
	slotQuality   = 4
	slotScene     = 11
	slotStyleNote = 12
)

var benchmarkThemes = map[string]struct{}{
	"model capability benchmark set":       {},
	"anime model capability benchmark set": {},
}

// Options are the inputs to Build.
type Options struct {
	RunID         string
	StyleKey      string
	SubjectAnchor string
	Theme         string
	Character     string
	LockCharacter bool
}

// Build composes the prompt for one style. It is a pure function of opts.
func Build(opts Options) (string, error) {
	profile, ok := catalog.Profile(opts.StyleKey)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownStyle, opts.StyleKey)
	}

	scene := PickVariant(opts.RunID, opts.StyleKey, slotScene, profile.Scenes)
	styleNote := PickVariant(opts.RunID, opts.StyleKey, slotStyleNote, profile.StyleNotes)

	theme := strings.TrimSpace(opts.Theme)
	if theme == "" {
		theme = catalog.DefaultTheme(opts.StyleKey)
	}

	character := opts.Character
	subject := fmt.Sprintf("a distinct %s as the primary subject", opts.SubjectAnchor)
	switch {
	case opts.LockCharacter && character != "":
		subject = fmt.Sprintf("%s as the primary subject with consistent visual identity", character)
	case character != "":
		subject = fmt.Sprintf("a distinct %s as the primary subject, subtly inspired by %s", opts.SubjectAnchor, character)
	}

	camera := PickVariant(opts.RunID, opts.StyleKey, slotCamera, catalog.Variants(catalog.PoolCamera))
	mood := PickVariant(opts.RunID, opts.StyleKey, slotMood, catalog.Variants(catalog.PoolMood))
	detail := PickVariant(opts.RunID, opts.StyleKey, slotDetail, catalog.Variants(catalog.PoolDetail))
	quality := PickVariant(opts.RunID, opts.StyleKey, slotQuality, catalog.Variants(catalog.PoolQuality))
	categoryDescription := catalog.CategoryDescription(catalog.Category(opts.StyleKey))

	themeFragment := ""
	if _, placeholder := benchmarkThemes[strings.ToLower(theme)]; theme != "" && !placeholder {
		themeFragment = theme + ", "
	}

	negative := strings.ReplaceAll(catalog.NegativeFragment, ", ", ", no ")

	var sb strings.Builder
	sb.WriteString(themeFragment)
	sb.WriteString(strings.Join([]string{
		subject, scene, styleNote, categoryDescription,
		camera, mood, detail, quality,
		"no unrelated aesthetics", "no repeated identity motifs", "no " + negative,
	}, ", "))
	return sb.String(), nil
}
