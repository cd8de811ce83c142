// Package handlers serves the read-only review API over the task ledger.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"

	"examplegen/internal/domain"
	"examplegen/internal/infra"
)

const (
	defaultCacheTTL = 30 * time.Second
	defaultRunLimit = 50
)

// App holds handler dependencies.
type App struct {
	Runs   domain.RunReader
	Cache  *cache.Cache
	Logger *infra.Logger
}

// NewApp wires runs with a TTL cache. A zero ttl uses the default.
func NewApp(runs domain.RunReader, ttl time.Duration, logger *infra.Logger) *App {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if logger == nil {
		logger = infra.NopLogger()
	}
	return &App{
		Runs:   runs,
		Cache:  cache.New(ttl, 2*ttl),
		Logger: logger,
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]errorBody{"error": {Code: errCode, Message: message}})
}
