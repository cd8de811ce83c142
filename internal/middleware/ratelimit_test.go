package middleware

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientIPForRateLimit(t *testing.T) {
	v6Remote := net.JoinHostPort("2001:db8::2", "443")
	cases := map[string]struct{ forwarded, remote, want string }{
		"forwarded ip":             {"203.0.113.1", "198.51.100.10:1234", "203.0.113.1"},
		"first of forwarded chain": {" 203.0.113.1 , 198.51.100.2 ", "198.51.100.10:1234", "203.0.113.1"},
		"garbage forwarded":        {"invalid", "198.51.100.10:1234", "198.51.100.10"},
		"no forwarded header":      {"", "198.51.100.10:1234", "198.51.100.10"},
		"forwarded ipv6":           {"2001:db8::1", v6Remote, "2001:db8::1"},
		"remote ipv6":              {"invalid", v6Remote, "2001:db8::2"},
		"remote without port":      {"invalid", "203.0.113.1", "203.0.113.1"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/runs", nil)
			req.RemoteAddr = tc.remote
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if got := clientIPForRateLimit(req); got != tc.want {
				t.Fatalf("client ip = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRateLimitPerClient(t *testing.T) {
	handler := RateLimit(0.001, 2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/v1/runs", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := call("198.51.100.10:1000"); code != http.StatusNoContent {
			t.Fatalf("request %d: status %d", i, code)
		}
	}
	if code := call("198.51.100.10:1001"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", code)
	}
	if code := call("198.51.100.11:1000"); code != http.StatusNoContent {
		t.Fatalf("other client should not be limited, got %d", code)
	}
}
