package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cdmx-opendata/wifi-points-api/internal/middleware"
)

func call(t *testing.T, mw func(http.Handler) http.Handler, method, origin string) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(method, "/graphql", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	mw(inner).ServeHTTP(rec, req)
	return rec
}

func TestCORS_AllowsListedOrigin(t *testing.T) {
	mw := middleware.CORS([]string{"http://localhost:5173"})

	rec := call(t, mw, http.MethodGet, "http://localhost:5173")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected origin echoed back, got %q", got)
	}
}

func TestCORS_IgnoresUnlistedOrigin(t *testing.T) {
	mw := middleware.CORS([]string{"http://localhost:5173"})

	rec := call(t, mw, http.MethodGet, "https://evil.example")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no CORS header for unlisted origin, got %q", got)
	}
}

func TestCORS_ShortCircuitsPreflight(t *testing.T) {
	mw := middleware.CORS([]string{"http://localhost:5173"})

	rec := call(t, mw, http.MethodOptions, "http://localhost:5173")

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
}
