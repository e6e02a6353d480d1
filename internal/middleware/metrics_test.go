package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Parametrized routes must be counted under their route pattern, not the raw
// URL, so ids do not mint new label combinations.
func TestWithMetrics_RoutePatternLabel(t *testing.T) {
	r := chi.NewRouter()
	r.Use(WithMetrics)
	r.Get("/api/materials/{id}/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	pattern := requestsTotal.WithLabelValues(http.MethodGet, "/api/materials/{id}/", "200")
	before := testutil.ToFloat64(pattern)

	for _, path := range []string{"/api/materials/5/", "/api/materials/6/", "/api/materials/999/"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s: %d", path, rr.Code)
		}
	}

	if got := testutil.ToFloat64(pattern) - before; got != 3 {
		t.Fatalf("expected 3 requests under the route pattern, got %v", got)
	}
	raw := requestsTotal.WithLabelValues(http.MethodGet, "/api/materials/5/", "200")
	if got := testutil.ToFloat64(raw); got != 0 {
		t.Fatalf("raw path must not appear as a label, got %v", got)
	}
}
