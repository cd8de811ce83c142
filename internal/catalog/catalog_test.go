package catalog

import (
	"errors"
	"testing"

	"examplegen/internal/domain"
)

func TestParseTypesDefaults(t *testing.T) {
	for _, raw := range []string{"", " , ,"} {
		got, err := ParseTypes(raw)
		if err != nil {
			t.Fatalf("ParseTypes(%q) error: %v", raw, err)
		}
		if len(got) != len(DefaultTypes) {
			t.Fatalf("ParseTypes(%q) = %v, want defaults", raw, got)
		}
	}
}

func TestParseTypesTrimsAndKeepsOrder(t *testing.T) {
	got, err := ParseTypes(" noir-cityscape ,fantasy-epic")
	if err != nil {
		t.Fatalf("ParseTypes error: %v", err)
	}
	if len(got) != 2 || got[0] != "noir-cityscape" || got[1] != "fantasy-epic" {
		t.Fatalf("unexpected types: %#v", got)
	}
}

func TestParseTypesRejectsUnknown(t *testing.T) {
	_, err := ParseTypes("fantasy-epic,not-a-style,also-bad")
	if !errors.Is(err, domain.ErrUnknownStyle) {
		t.Fatalf("expected ErrUnknownStyle, got %v", err)
	}
	if want := "unknown style type(s): not-a-style, also-bad"; err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}

func TestDefaultTypesExistInCatalog(t *testing.T) {
	for _, key := range DefaultTypes {
		if _, ok := Profile(key); !ok {
			t.Fatalf("default type %q missing from catalog", key)
		}
	}
}

func TestDisplayFallsBackToTitleCase(t *testing.T) {
	d := Display("slice-of-life")
	if d.Title != "Slice Of Life" {
		t.Fatalf("title = %q", d.Title)
	}
	if d.Alt != "slice-of-life" || d.StyleTag != "slice-of-life" {
		t.Fatalf("unexpected display: %#v", d)
	}
	if got := Display("noir-cityscape").StyleTag; got != "noir" {
		t.Fatalf("curated style tag = %q", got)
	}
}

func TestCategoryFallback(t *testing.T) {
	if got := Category("slice-of-life"); got != FallbackCategory {
		t.Fatalf("Category = %q", got)
	}
	if got := CategoryDescription(Category("fantasy-epic")); got == "" {
		t.Fatalf("missing description for grand-scene")
	}
}
