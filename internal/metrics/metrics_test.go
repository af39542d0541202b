package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/products/"+id, nil))
	}

	body := scrape(t, m)
	assert.Contains(t, body, `http_requests_total{method="GET",route="/products/{id}",status="404"} 3`)
	assert.Contains(t, body, "http_inflight_requests 0")
}

func TestHandler_ExposesAuthCounter(t *testing.T) {
	m := New()
	m.RecordAuth("login", "success")
	m.RecordAuth("login", "invalid_credentials")

	assert.Contains(t, scrape(t, m), `auth_attempts_total{op="login",result="success"} 1`)

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.RecordAuth("login", "success") })
}
