package generation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"examplegen/internal/domain"
)

func TestClientSubmitAndStatusAgainstKie(t *testing.T) {
	var gotAuth, gotCustom string
	var gotBody kieCreateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/createTask":
			gotAuth = r.Header.Get("Authorization")
			gotCustom = r.Header.Get("X-Trace")
			if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
				t.Errorf("decode body: %v", err)
			}
			_, _ = w.Write([]byte(`{"code":200,"data":{"taskId":"t-1"}}`))
		case "/recordInfo":
			if r.URL.Query().Get("taskId") != "t-1" {
				t.Errorf("unexpected taskId %q", r.URL.Query().Get("taskId"))
			}
			_, _ = w.Write([]byte(`{"data":{"state":"success","resultJson":"{\"resultUrls\":[\"https://cdn/x.png\"]}"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	adapter, err := NewKie(KieOptions{APIKey: "k", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewKie error: %v", err)
	}
	client, err := NewClient(Options{Adapter: adapter, Headers: map[string]string{"X-Trace": "abc"}, HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	payload := domain.Payload{ModelUUID: "z-image", Prompt: "hello", AspectRatio: "1:1", ReferenceImageURLs: []string{"https://ref/1.png"}}
	id, err := client.Submit(context.Background(), payload)
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if id != "t-1" {
		t.Fatalf("task id = %q", id)
	}
	if gotAuth != "Bearer k" || gotCustom != "abc" {
		t.Fatalf("headers not forwarded: auth=%q custom=%q", gotAuth, gotCustom)
	}
	if gotBody.Model != "z-image" || gotBody.Input.AspectRatio != "1:1" || len(gotBody.Input.ImageURLs) != 1 {
		t.Fatalf("unexpected body: %#v", gotBody)
	}

	report, err := client.Status(context.Background(), id)
	if err != nil {
		t.Fatalf("Status error: %v", err)
	}
	if report.Status != domain.TaskStatusCompleted || len(report.URLs) != 1 {
		t.Fatalf("unexpected report: %#v", report)
	}
}

func TestClientSubmitHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid model"}`))
	}))
	defer srv.Close()

	adapter, _ := NewProject(srv.URL)
	client, _ := NewClient(Options{Adapter: adapter, HTTPClient: srv.Client()})
	_, err := client.Submit(context.Background(), domain.Payload{ModelUUID: "m"})
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusBadRequest || httpErr.Body != `{"error":"invalid model"}` {
		t.Fatalf("unexpected error: %#v", httpErr)
	}
}

func TestParseHeaders(t *testing.T) {
	headers, err := ParseHeaders([]string{"Authorization: Bearer x", "X-Empty:"})
	if err != nil {
		t.Fatalf("ParseHeaders error: %v", err)
	}
	if headers["Authorization"] != "Bearer x" || headers["X-Empty"] != "" {
		t.Fatalf("unexpected headers: %#v", headers)
	}
	for _, bad := range []string{"no-colon", " : value"} {
		if _, err := ParseHeaders([]string{bad}); !errors.Is(err, domain.ErrInvalidConfig) {
			t.Fatalf("ParseHeaders(%q) expected ErrInvalidConfig, got %v", bad, err)
		}
	}
}

func TestNewAdapter(t *testing.T) {
	if _, err := NewAdapter(AdapterOptions{Provider: "other"}); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	a, err := NewAdapter(AdapterOptions{Provider: "project", APIBase: "https://x"})
	if err != nil || a.Name() != ProviderProject {
		t.Fatalf("NewAdapter(project) = %v, %v", a, err)
	}
	if _, err := NewAdapter(AdapterOptions{Provider: "kie"}); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}
