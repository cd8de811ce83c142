// Package gallery renders the example gallery configuration consumed by the
// web frontend from a run manifest and the uploaded object keys.
package gallery

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"examplegen/internal/catalog"
	"examplegen/internal/domain"
	"examplegen/internal/storage"
)

const (
	DefaultConfigPath  = "src/configs/gallery/models/z-image-examples.json"
	DefaultVersion     = "1.2.0"
	DefaultModelID     = "z-image"
	DefaultModelName   = "Z-Image"
	DefaultDescription = "Example images for Z-Image model showcase"
	DefaultUUIDPrefix  = "zi-ex"
	DefaultAspectRatio = "3:4"
)

// Options controls the generated document.
type Options struct {
	Version     string
	ModelID     string
	ModelName   string
	Description string
	UUIDPrefix  string
	AspectRatio string
	Now         func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Version == "" {
		o.Version = DefaultVersion
	}
	if o.ModelID == "" {
		o.ModelID = DefaultModelID
	}
	if o.ModelName == "" {
		o.ModelName = DefaultModelName
	}
	if o.Description == "" {
		o.Description = DefaultDescription
	}
	if o.UUIDPrefix == "" {
		o.UUIDPrefix = DefaultUUIDPrefix
	}
	if o.AspectRatio == "" {
		o.AspectRatio = DefaultAspectRatio
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Parameters echoes the generation inputs of an example.
type Parameters struct {
	ModelID   string `json:"model_id"`
	Prompt    string `json:"prompt"`
	Style     string `json:"style"`
	Scene     string `json:"scene"`
	Outfit    string `json:"outfit"`
	Character string `json:"character"`
	Action    string `json:"action"`
}

// Example is one gallery entry.
type Example struct {
	UUID        string     `json:"uuid"`
	R2Path      string     `json:"r2_path"`
	Alt         string     `json:"alt"`
	AspectRatio string     `json:"aspect_ratio"`
	Title       string     `json:"title"`
	Parameters  Parameters `json:"parameters"`
	SortOrder   int        `json:"sort_order"`
}

// Config is the gallery document.
type Config struct {
	Version     string    `json:"version"`
	LastUpdated string    `json:"lastUpdated"`
	Description string    `json:"description"`
	ModelID     string    `json:"modelId"`
	ModelName   string    `json:"modelName"`
	Examples    []Example `json:"examples"`
}

// StyleFromKey recovers the style key from an uploaded object key named
// "NN-<style>-MM.webp". It returns "" when the name has fewer than three
// dash separated parts.
func StyleFromKey(key string) string {
	name := path.Base(key)
	name = strings.TrimSuffix(name, path.Ext(name))
	parts := strings.Split(name, "-")
	if len(parts) < 3 {
		return ""
	}
	return strings.Join(parts[1:len(parts)-1], "-")
}

// Build pairs manifest tasks with uploaded keys by style. When several
// uploads share a style the last one wins. Tasks without an upload are
// skipped but keep their position in uuid and sort order numbering.
func Build(m domain.Manifest, uploads storage.UploadSummary, opts Options) Config {
	opts = opts.withDefaults()

	keyByStyle := make(map[string]string, len(uploads.Uploaded))
	for _, u := range uploads.Uploaded {
		if style := StyleFromKey(u.Key); style != "" {
			keyByStyle[style] = u.Key
		}
	}

	cfg := Config{
		Version:     opts.Version,
		LastUpdated: opts.Now().Format("2006-01-02"),
		Description: opts.Description,
		ModelID:     opts.ModelID,
		ModelName:   opts.ModelName,
		Examples:    []Example{},
	}
	for i, task := range m.Tasks {
		idx := i + 1
		r2Path, ok := keyByStyle[task.StyleKey]
		if !ok {
			continue
		}
		display := catalog.Display(task.StyleKey)
		cfg.Examples = append(cfg.Examples, Example{
			UUID:        fmt.Sprintf("%s-%03d", opts.UUIDPrefix, idx),
			R2Path:      r2Path,
			Alt:         display.Alt,
			AspectRatio: opts.AspectRatio,
			Title:       display.Title,
			Parameters: Parameters{
				ModelID: opts.ModelID,
				Prompt:  task.Prompt,
				Style:   display.StyleTag,
			},
			SortOrder: idx,
		})
	}
	return cfg
}

// Write stores cfg as indented JSON with a trailing newline.
func Write(filePath string, cfg Config) error {
	encoded, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("gallery: encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("gallery: create config dir: %w", err)
	}
	if err := os.WriteFile(filePath, append(encoded, '\n'), 0o644); err != nil {
		return fmt.Errorf("gallery: write config: %w", err)
	}
	return nil
}
