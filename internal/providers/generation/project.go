package generation

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"examplegen/internal/domain"
)

const ProviderProject = "project"

// Project adapts the in-house anime generation API.
type Project struct {
	apiBase string
}

// NewProject returns an adapter rooted at apiBase.
func NewProject(apiBase string) (*Project, error) {
	base := strings.TrimRight(strings.TrimSpace(apiBase), "/")
	if base == "" {
		return nil, fmt.Errorf("%w: api_base is required when provider=project", domain.ErrInvalidConfig)
	}
	return &Project{apiBase: base}, nil
}

func (p *Project) Name() string { return ProviderProject }

// Authorize is a no-op; callers pass credentials as custom headers.
func (p *Project) Authorize(*http.Request) {}

func (p *Project) CreateEndpoint() string {
	return p.apiBase + "/api/anime-generation/create-task"
}

func (p *Project) CreateBody(payload domain.Payload) (any, error) {
	return payload, nil
}

func (p *Project) ParseTaskID(body []byte) (string, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return "", fmt.Errorf("project: decode create-task response: %w", err)
	}
	if id, ok := stringField(obj, "generation_uuid"); ok {
		return id, nil
	}
	if data, ok := objectField(obj, "data"); ok {
		if id, ok := stringField(data, "generation_uuid"); ok {
			return id, nil
		}
	}
	return "", &ResponseShapeError{Provider: "create-task", Field: "generation_uuid", Body: compact(body)}
}

func (p *Project) StatusEndpoint(taskID string) string {
	return p.apiBase + "/api/generation/status/" + url.PathEscape(taskID)
}

func (p *Project) ParseStatus(body []byte) (StatusReport, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return StatusReport{}, fmt.Errorf("project: decode status response: %w", err)
	}
	payload := obj
	if data, ok := objectField(obj, "data"); ok {
		payload = data
	}

	report := StatusReport{Raw: body, Status: domain.TaskStatusUnknown}
	if status, ok := stringField(payload, "status"); ok && status != "" {
		report.Status = domain.TaskStatus(strings.ToLower(status))
	}
	report.ErrorMessage = firstMessage(payload, "error_message", "message")
	report.URLs = urlList(payload,
		[]string{"results", "resultUrls", "image_urls", "urls"},
		[]string{"image_url", "url", "imageUrl"},
	)
	return report, nil
}

var _ Adapter = (*Project)(nil)
