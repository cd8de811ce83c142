package middleware

import (
	"net/http"
	"strings"
)

const (
	corsAllowMethods = "GET, HEAD, OPTIONS"
	corsAllowHeaders = "Content-Type, " + RequestIDHeader
	corsPreflightAge = "600"
	corsAnyOrigin    = "*"
)

// CORS lets gallery frontends read the review API. An entry of "*" admits any
// origin. Requests with a method other than GET, HEAD or OPTIONS get 405.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAll := false
	allow := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin == corsAnyOrigin {
			allowAll = true
			continue
		}
		allow[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); origin != "" {
				if _, ok := allow[origin]; ok || allowAll {
					h := w.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
					h.Set("Access-Control-Allow-Methods", corsAllowMethods)
					h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
					h.Set("Access-Control-Expose-Headers", RequestIDHeader)
					h.Set("Access-Control-Max-Age", corsPreflightAge)
				}
			}
			switch r.Method {
			case http.MethodOptions:
				w.WriteHeader(http.StatusNoContent)
			case http.MethodGet, http.MethodHead:
				next.ServeHTTP(w, r)
			default:
				w.Header().Set("Allow", corsAllowMethods)
				w.WriteHeader(http.StatusMethodNotAllowed)
			}
		})
	}
}
