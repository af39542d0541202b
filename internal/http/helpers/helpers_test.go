package helpers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func TestReadJSON(t *testing.T) {
	cases := []struct {
		name   string
		ct     string
		body   string
		ok     bool
		status int
	}{
		{"ok", "application/json", `{"name":"x","extra":1}`, true, 0},
		{"sin content-type", "", `{"name":"x"}`, true, 0},
		{"malformado", "application/json", `{"name":`, false, http.StatusBadRequest},
		{"vacío", "application/json", ``, false, http.StatusBadRequest},
		{"tipo incorrecto", "application/json", `{"name":123}`, false, http.StatusBadRequest},
		{"content-type incorrecto", "text/plain", `{"name":"x"}`, false, http.StatusUnsupportedMediaType},
		{"demasiado grande", "application/json", `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`, false, http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(tc.body))
			if tc.ct != "" {
				req.Header.Set("Content-Type", tc.ct)
			}
			rec := httptest.NewRecorder()
			var p payload
			ok := ReadJSON(rec, req, &p)
			assert.Equal(t, tc.ok, ok)
			if !tc.ok {
				assert.Equal(t, tc.status, rec.Code)
			}
		})
	}
}

func TestReadJSON_MalformedMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`nope`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	require.False(t, ReadJSON(rec, req, &payload{}))
	assert.Contains(t, rec.Body.String(), "Formato de solicitud inválido")
}

func withParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPathUUID(t *testing.T) {
	id := uuid.New()
	req := withParam(httptest.NewRequest(http.MethodGet, "/products/"+id.String(), nil), "id", id.String())
	rec := httptest.NewRecorder()
	got, ok := PathUUID(rec, req, "id")
	require.True(t, ok)
	assert.Equal(t, id, got)

	for _, raw := range []string{"abc", "", uuid.Nil.String()} {
		req := withParam(httptest.NewRequest(http.MethodGet, "/products/x", nil), "id", raw)
		rec := httptest.NewRecorder()
		_, ok := PathUUID(rec, req, "id")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}
