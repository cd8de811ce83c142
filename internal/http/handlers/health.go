package handlers

import (
	"context"
	"net/http"
	"time"

	"examplegen/internal/catalog"
)

const healthLedgerTimeout = 2 * time.Second

// Health reports whether the ledger answers and how many styles are served.
// An unreachable ledger yields 503 so load balancers stop routing here.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthLedgerTimeout)
	defer cancel()

	body := map[string]any{"status": "ok", "ledger": "ok", "styles": len(catalog.Keys())}
	if _, err := a.Runs.ListRuns(ctx, 1); err != nil {
		a.Logger.Warn().Err(err).Msg("health: ledger unavailable")
		body["status"] = "degraded"
		body["ledger"] = "unavailable"
		a.json(w, http.StatusServiceUnavailable, body)
		return
	}
	a.json(w, http.StatusOK, body)
}
