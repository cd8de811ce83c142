package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"examplegen/internal/http/handlers"
	"examplegen/internal/middleware"
)

// Options tunes the router middleware stack.
type Options struct {
	AllowedOrigins []string
	// RatePerSecond of zero disables per-client rate limiting.
	RatePerSecond float64
	RateBurst     int
	Logger        zerolog.Logger
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
	)
	if opts.RatePerSecond > 0 {
		r.Use(middleware.RateLimit(opts.RatePerSecond, opts.RateBurst, 10*time.Minute))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/styles", app.Styles)
		r.Route("/runs", func(r chi.Router) {
			r.Get("/", app.ListRuns)
			r.Get("/{id}", app.GetRun)
			r.Get("/{id}/tasks", app.ListTasks)
		})
	})

	return r
}
