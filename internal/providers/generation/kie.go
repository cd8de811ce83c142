package generation

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"examplegen/internal/domain"
)

const (
	ProviderKie = "kie"

	defaultKieBaseURL     = "https://api.kie.ai/api/v1/jobs"
	defaultKieAspectRatio = "3:4"
)

// KieOptions configures the KIE jobs API adapter.
type KieOptions struct {
	APIKey  string
	BaseURL string
}

// Kie adapts the KIE jobs API (createTask / recordInfo).
type Kie struct {
	apiKey  string
	baseURL string
}

// NewKie returns a KIE adapter. The API key is required.
func NewKie(opts KieOptions) (*Kie, error) {
	key := strings.TrimSpace(opts.APIKey)
	if key == "" {
		return nil, fmt.Errorf("%w: missing KIE key, set KIE_AI_API_KEY or API_KEY", domain.ErrMissingCredentials)
	}
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = defaultKieBaseURL
	}
	return &Kie{apiKey: key, baseURL: base}, nil
}

func (k *Kie) Name() string { return ProviderKie }

func (k *Kie) Authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+k.apiKey)
}

func (k *Kie) CreateEndpoint() string {
	return k.baseURL + "/createTask"
}

type kieCreateInput struct {
	Prompt      string   `json:"prompt"`
	AspectRatio string   `json:"aspect_ratio"`
	ImageURLs   []string `json:"image_urls,omitempty"`
}

type kieCreateRequest struct {
	Model string         `json:"model"`
	Input kieCreateInput `json:"input"`
}

func (k *Kie) CreateBody(payload domain.Payload) (any, error) {
	aspect := payload.AspectRatio
	if aspect == "" {
		aspect = defaultKieAspectRatio
	}
	return kieCreateRequest{
		Model: payload.ModelUUID,
		Input: kieCreateInput{
			Prompt:      payload.Prompt,
			AspectRatio: aspect,
			ImageURLs:   payload.ReferenceImageURLs,
		},
	}, nil
}

func (k *Kie) ParseTaskID(body []byte) (string, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return "", fmt.Errorf("kie: decode createTask response: %w", err)
	}
	if data, ok := objectField(obj, "data"); ok {
		if id, ok := stringField(data, "taskId"); ok && id != "" {
			return id, nil
		}
	}
	return "", &ResponseShapeError{Provider: "KIE createTask", Field: "taskId", Body: compact(body)}
}

func (k *Kie) StatusEndpoint(taskID string) string {
	return k.baseURL + "/recordInfo?" + url.Values{"taskId": {taskID}}.Encode()
}

func (k *Kie) ParseStatus(body []byte) (StatusReport, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return StatusReport{}, fmt.Errorf("kie: decode recordInfo response: %w", err)
	}
	report := StatusReport{Raw: body}
	data, ok := objectField(obj, "data")
	if !ok {
		data = map[string]any{}
	}

	state, isString := data["state"].(string)
	report.Status = normalizeKieState(state, isString)

	report.ErrorMessage = firstMessage(data, "failMsg", "error_message", "message")

	if resultJSON, ok := stringField(data, "resultJson"); ok && strings.TrimSpace(resultJSON) != "" {
		// A malformed resultJson yields no URLs rather than an error.
		if parsed, err := decodeObject([]byte(resultJSON)); err == nil {
			report.URLs = urlList(parsed, []string{"resultUrls", "urls", "images"}, nil)
		}
	}
	return report, nil
}

func normalizeKieState(state string, isString bool) domain.TaskStatus {
	if !isString {
		return domain.TaskStatusUnknown
	}
	switch s := strings.ToLower(state); s {
	case "success":
		return domain.TaskStatusCompleted
	case "fail":
		return domain.TaskStatusFailed
	case "":
		return domain.TaskStatusUnknown
	default:
		return domain.TaskStatus(s)
	}
}

var _ Adapter = (*Kie)(nil)
