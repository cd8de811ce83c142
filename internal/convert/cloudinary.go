// Package convert turns downloaded PNG results into WebP through Cloudinary's
// signed upload API and records the size savings.
package convert

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"examplegen/internal/domain"
	"examplegen/internal/infra"
)

const (
	SummaryFile = "webp-conversion-summary.json"
	WebPDir     = "webp"

	defaultAPIBase = "https://api.cloudinary.com/v1_1"
	defaultFolder  = "anivid-temp/z-image-examples"
)

// Options configures a Converter.
type Options struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
	// APIBase overrides the Cloudinary API root.
	APIBase    string
	HTTPClient *http.Client
	Now        func() time.Time
	Logger     *infra.Logger
}

// Converter uploads PNG files to Cloudinary with format=webp and downloads
// the converted result.
type Converter struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	apiBase    string
	httpClient *http.Client
	now        func() time.Time
	logger     *infra.Logger
}

// Item records one converted file.
type Item struct {
	SourcePNG     string `json:"source_png"`
	WebPPath      string `json:"webp_path"`
	CloudinaryURL string `json:"cloudinary_url"`
	PNGSize       int64  `json:"png_size"`
	WebPSize      int64  `json:"webp_size"`
}

// Summary is written to webp-conversion-summary.json.
type Summary struct {
	Count         int    `json:"count"`
	TotalPNGSize  int64  `json:"total_png_size"`
	TotalWebPSize int64  `json:"total_webp_size"`
	Items         []Item `json:"items"`
	Path          string `json:"-"`
	WebPDir       string `json:"-"`
}

// New validates credentials and returns a Converter.
func New(opts Options) (*Converter, error) {
	if opts.CloudName == "" || opts.APIKey == "" || opts.APISecret == "" {
		return nil, fmt.Errorf("%w: cloudinary env is missing", domain.ErrMissingCredentials)
	}
	c := &Converter{
		cloudName:  opts.CloudName,
		apiKey:     opts.APIKey,
		apiSecret:  opts.APISecret,
		folder:     strings.Trim(opts.Folder, "/"),
		apiBase:    strings.TrimRight(opts.APIBase, "/"),
		httpClient: opts.HTTPClient,
		now:        opts.Now,
		logger:     opts.Logger,
	}
	if c.folder == "" {
		c.folder = defaultFolder
	}
	if c.apiBase == "" {
		c.apiBase = defaultAPIBase
	}
	if c.httpClient == nil {
		c.httpClient = infra.NewHTTPClient(240 * time.Second)
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.logger == nil {
		c.logger = infra.NopLogger()
	}
	return c, nil
}

// ConvertDir converts every PNG in workDir, in name order, into
// workDir/webp and writes the summary file into workDir.
func (c *Converter) ConvertDir(ctx context.Context, workDir string) (Summary, error) {
	pngs, err := filepath.Glob(filepath.Join(workDir, "*.png"))
	if err != nil {
		return Summary{}, fmt.Errorf("convert: list png files: %w", err)
	}
	if len(pngs) == 0 {
		return Summary{}, errors.New("convert: no PNG files found to convert")
	}
	sort.Strings(pngs)

	outDir := filepath.Join(workDir, WebPDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("convert: create webp dir: %w", err)
	}

	summary := Summary{Items: make([]Item, 0, len(pngs)), WebPDir: outDir}
	for i, src := range pngs {
		item, err := c.convertOne(ctx, src, outDir, i+1)
		if err != nil {
			return Summary{}, err
		}
		summary.Items = append(summary.Items, item)
		summary.TotalPNGSize += item.PNGSize
		summary.TotalWebPSize += item.WebPSize
	}
	summary.Count = len(summary.Items)

	encoded, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return Summary{}, fmt.Errorf("convert: encode summary: %w", err)
	}
	summary.Path = filepath.Join(workDir, SummaryFile)
	if err := os.WriteFile(summary.Path, encoded, 0o644); err != nil {
		return Summary{}, fmt.Errorf("convert: write summary: %w", err)
	}
	return summary, nil
}

func (c *Converter) convertOne(ctx context.Context, src, outDir string, idx int) (Item, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return Item{}, fmt.Errorf("convert: read %s: %w", src, err)
	}
	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	publicID := fmt.Sprintf("%s/%s-%s-%d", c.folder, stem, timestamp, idx)

	signed := map[string]string{
		"format":    "webp",
		"overwrite": "true",
		"public_id": publicID,
		"timestamp": timestamp,
	}
	form := url.Values{}
	for k, v := range signed {
		form.Set(k, v)
	}
	form.Set("file", "data:image/png;base64,"+base64.StdEncoding.EncodeToString(data))
	form.Set("api_key", c.apiKey)
	form.Set("signature", Sign(signed, c.apiSecret))

	secureURL, err := c.upload(ctx, form)
	if err != nil {
		return Item{}, fmt.Errorf("convert: upload %s: %w", filepath.Base(src), err)
	}

	dest := filepath.Join(outDir, stem+".webp")
	size, err := infra.DownloadFile(ctx, c.httpClient, secureURL, dest)
	if err != nil {
		return Item{}, fmt.Errorf("convert: %w", err)
	}
	c.logger.Info().
		Str("file", filepath.Base(src)).
		Int("png_size", len(data)).
		Int64("webp_size", size).
		Msg("convert: converted to webp")
	return Item{
		SourcePNG:     src,
		WebPPath:      dest,
		CloudinaryURL: secureURL,
		PNGSize:       int64(len(data)),
		WebPSize:      size,
	}, nil
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Converter) upload(ctx context.Context, form url.Values) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/image/upload", c.apiBase, url.PathEscape(c.cloudName))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var out uploadResponse
	decodeErr := json.Unmarshal(raw, &out)
	if resp.StatusCode >= http.StatusBadRequest {
		if decodeErr == nil && out.Error.Message != "" {
			return "", fmt.Errorf("cloudinary error: %s (http %d)", out.Error.Message, resp.StatusCode)
		}
		return "", fmt.Errorf("cloudinary: http %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("cloudinary: decode response: %w", decodeErr)
	}
	if out.SecureURL == "" {
		return "", errors.New("missing Cloudinary secure_url")
	}
	return out.SecureURL, nil
}

// Sign computes the Cloudinary request signature: the fields sorted by name,
// joined as k=v with '&', followed by the secret, SHA-1 hex encoded.
func Sign(fields map[string]string, secret string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+fields[k])
	}
	sum := sha1.Sum([]byte(strings.Join(parts, "&") + secret))
	return hex.EncodeToString(sum[:])
}
