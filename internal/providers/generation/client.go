package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"examplegen/internal/domain"
	"examplegen/internal/infra"
)

// Options configures a Client.
type Options struct {
	Adapter    Adapter
	Headers    map[string]string
	HTTPClient *http.Client
	// Limiter paces every provider request. Nil means unlimited.
	Limiter *rate.Limiter
	Logger  *infra.Logger
}

// Client performs HTTP calls against one generation provider.
type Client struct {
	adapter    Adapter
	headers    map[string]string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *infra.Logger
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	if opts.Adapter == nil {
		return nil, errors.New("generation: adapter is required")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	limiter := opts.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	logger := opts.Logger
	if logger == nil {
		logger = infra.NopLogger()
	}
	headers := map[string]string{"Content-Type": "application/json"}
	for k, v := range opts.Headers {
		headers[k] = v
	}
	return &Client{
		adapter:    opts.Adapter,
		headers:    headers,
		httpClient: httpClient,
		limiter:    limiter,
		logger:     logger,
	}, nil
}

// Provider returns the adapter name.
func (c *Client) Provider() string {
	return c.adapter.Name()
}

// Submit creates one provider task for payload and returns its identifier.
func (c *Client) Submit(ctx context.Context, payload domain.Payload) (string, error) {
	body, err := c.adapter.CreateBody(payload)
	if err != nil {
		return "", fmt.Errorf("%s: build create body: %w", c.adapter.Name(), err)
	}
	raw, err := c.do(ctx, http.MethodPost, c.adapter.CreateEndpoint(), body)
	if err != nil {
		return "", err
	}
	taskID, err := c.adapter.ParseTaskID(raw)
	if err != nil {
		return "", err
	}
	c.logger.Debug().
		Str("provider", c.adapter.Name()).
		Str("task_id", taskID).
		Msg("generation: task created")
	return taskID, nil
}

// Status queries the provider once for taskID.
func (c *Client) Status(ctx context.Context, taskID string) (StatusReport, error) {
	raw, err := c.do(ctx, http.MethodGet, c.adapter.StatusEndpoint(taskID), nil)
	if err != nil {
		return StatusReport{}, err
	}
	return c.adapter.ParseStatus(raw)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", c.adapter.Name(), err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", c.adapter.Name(), err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	c.adapter.Authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: http request: %w", c.adapter.Name(), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", c.adapter.Name(), err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	return raw, nil
}

// NewLimiter converts a requests-per-second setting into a limiter. Zero or
// negative means unlimited.
func NewLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}

// ParseHeaders parses repeated "Key: Value" flags.
func ParseHeaders(values []string) (map[string]string, error) {
	headers := make(map[string]string, len(values))
	for _, item := range values {
		key, value, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("%w: invalid header format: %s", domain.ErrInvalidConfig, item)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("%w: invalid header key in: %s", domain.ErrInvalidConfig, item)
		}
		headers[key] = strings.TrimSpace(value)
	}
	return headers, nil
}

// AdapterOptions selects and configures a provider adapter.
type AdapterOptions struct {
	Provider   string
	KieAPIKey  string
	KieBaseURL string
	APIBase    string
}

// NewAdapter returns the adapter for opts.Provider.
func NewAdapter(opts AdapterOptions) (Adapter, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case ProviderKie, "":
		return NewKie(KieOptions{APIKey: opts.KieAPIKey, BaseURL: opts.KieBaseURL})
	case ProviderProject:
		return NewProject(opts.APIBase)
	default:
		return nil, fmt.Errorf("%w: unsupported provider %q", domain.ErrInvalidConfig, opts.Provider)
	}
}

var (
	_ Submitter     = (*Client)(nil)
	_ StatusFetcher = (*Client)(nil)
)
