package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"examplegen/internal/domain"
	"examplegen/internal/middleware"
)

type runResponse struct {
	ID        string    `json:"id"`
	ModelUUID string    `json:"model_uuid"`
	Provider  string    `json:"provider"`
	Theme     string    `json:"theme"`
	Character string    `json:"character"`
	OutputDir string    `json:"output_dir"`
	TaskCount int       `json:"task_count"`
	Failed    int       `json:"failed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type taskResponse struct {
	Index        int       `json:"index"`
	StyleKey     string    `json:"style_key"`
	TaskID       string    `json:"generation_uuid"`
	Prompt       string    `json:"prompt"`
	Status       string    `json:"status"`
	Terminal     bool      `json:"terminal"`
	ErrorMessage string    `json:"error_message"`
	ResultURLs   []string  `json:"result_urls"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toRunResponse(r domain.Run) runResponse {
	return runResponse{
		ID:        r.ID,
		ModelUUID: r.ModelUUID,
		Provider:  r.Provider,
		Theme:     r.Theme,
		Character: r.Character,
		OutputDir: r.OutputDir,
		TaskCount: r.TaskCount,
		Failed:    r.Failed,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ListRuns serves GET /v1/runs?limit=N.
func (a *App) ListRuns(w http.ResponseWriter, r *http.Request) {
	limit := defaultRunLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			a.error(w, http.StatusBadRequest, "bad_request", "limit must be a positive integer")
			return
		}
		limit = n
	}
	runs, err := a.Runs.ListRuns(r.Context(), limit)
	if err != nil {
		a.internal(w, r, err, "failed to list runs")
		return
	}
	items := make([]runResponse, 0, len(runs))
	for _, run := range runs {
		items = append(items, toRunResponse(run))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// GetRun serves GET /v1/runs/{id}. Lookups are cached briefly.
func (a *App) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cacheKey := "run:" + id
	if v, ok := a.Cache.Get(cacheKey); ok {
		a.json(w, http.StatusOK, v)
		return
	}
	run, err := a.Runs.GetRun(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "run not found")
			return
		}
		a.internal(w, r, err, "failed to load run")
		return
	}
	resp := toRunResponse(*run)
	a.Cache.SetDefault(cacheKey, resp)
	a.json(w, http.StatusOK, resp)
}

// ListTasks serves GET /v1/runs/{id}/tasks.
func (a *App) ListTasks(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := a.Runs.GetRun(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "run not found")
			return
		}
		a.internal(w, r, err, "failed to load run")
		return
	}
	records, err := a.Runs.ListTasks(r.Context(), id)
	if err != nil {
		a.internal(w, r, err, "failed to list tasks")
		return
	}
	items := make([]taskResponse, 0, len(records))
	for _, rec := range records {
		urls := rec.ResultURLs
		if urls == nil {
			urls = []string{}
		}
		items = append(items, taskResponse{
			Index:        rec.Index,
			StyleKey:     rec.StyleKey,
			TaskID:       rec.TaskID,
			Prompt:       rec.Prompt,
			Status:       string(rec.Status),
			Terminal:     rec.Status.IsTerminal(),
			ErrorMessage: rec.ErrorMessage,
			ResultURLs:   urls,
			UpdatedAt:    rec.UpdatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"run_id": id, "items": items})
}

func (a *App) internal(w http.ResponseWriter, r *http.Request, err error, message string) {
	a.Logger.Error().
		Err(err).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Str("path", r.URL.Path).
		Msg("handlers: " + message)
	a.error(w, http.StatusInternalServerError, "internal", message)
}
