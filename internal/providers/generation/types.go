// Package generation submits generation tasks to image providers and reads
// back their status. Provider specific request and response shapes live in
// one Adapter per provider.
package generation

import (
	"context"
	"fmt"
	"net/http"

	"examplegen/internal/domain"
)

// StatusReport is a single status query normalized into the shared vocabulary.
type StatusReport struct {
	Status       domain.TaskStatus
	URLs         []string
	ErrorMessage string
	Raw          []byte
}

// Adapter converts between the provider-neutral payload and one provider's
// wire format.
type Adapter interface {
	Name() string
	// Authorize adds credentials to an outgoing request.
	Authorize(req *http.Request)
	CreateEndpoint() string
	CreateBody(payload domain.Payload) (any, error)
	ParseTaskID(body []byte) (string, error)
	StatusEndpoint(taskID string) string
	ParseStatus(body []byte) (StatusReport, error)
}

// Submitter creates provider tasks.
type Submitter interface {
	Submit(ctx context.Context, payload domain.Payload) (string, error)
}

// StatusFetcher queries provider task status.
type StatusFetcher interface {
	Status(ctx context.Context, taskID string) (StatusReport, error)
}

// HTTPError reports a non-2xx provider response.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("request failed: %d, body: %s", e.StatusCode, e.Body)
}

// ResponseShapeError reports a provider response missing an expected field.
type ResponseShapeError struct {
	Provider string
	Field    string
	Body     string
}

func (e *ResponseShapeError) Error() string {
	return fmt.Sprintf("missing %s in %s response: %s", e.Field, e.Provider, e.Body)
}
