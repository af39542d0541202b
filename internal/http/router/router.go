// Package router arma el handler HTTP: middlewares globales + rutas por dominio.
//
// Pipeline (en orden):
//
//	Recover → RequestID → SecurityHeaders → CORS → Metrics →
//	RateLimit (solo /login y /users/register) → AuthGate (policy + token) →
//	Logging → handler
//
// El gate decide primero con la policy: las rutas públicas no pasan por la
// verificación del token.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/mantenimiento/internal/http/controllers"
	httperrors "github.com/dropDatabas3/mantenimiento/internal/http/errors"
	mw "github.com/dropDatabas3/mantenimiento/internal/http/middlewares"
	"github.com/dropDatabas3/mantenimiento/internal/metrics"
)

// Deps contiene todo lo que el router necesita.
type Deps struct {
	Controllers *controllers.Controllers
	Verifier    mw.TokenVerifier
	Policy      *mw.Policy // nil = mw.DefaultPolicy()
	CORSOrigins []string
	// TrustProxy habilita X-Forwarded-For en la clave del rate limit.
	TrustProxy bool
	Metrics    *metrics.Metrics // nil = sin /metrics ni instrumentación

	LoginLimiter    mw.RateLimiter // nil = sin límite
	RegisterLimiter mw.RateLimiter
}

// New construye el handler raíz.
func New(d Deps) http.Handler {
	policy := d.Policy
	if policy == nil {
		policy = mw.DefaultPolicy()
	}

	rateKey := mw.IPPathRateKeyFunc(d.TrustProxy)

	r := chi.NewRouter()
	r.Use(
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithSecurityHeaders(),
		mw.WithCORS(d.CORSOrigins),
	)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}
	r.Use(
		onlyFor(http.MethodPost, "/login", mw.WithRateLimit(d.LoginLimiter, rateKey)),
		onlyFor(http.MethodPost, "/users/register", mw.WithRateLimit(d.RegisterLimiter, rateKey)),
		mw.WithAuthGate(d.Verifier, policy),
		mw.WithLogging(),
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httperrors.WriteError(w, req, httperrors.ErrRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		httperrors.WriteError(w, req, httperrors.ErrMethodNotAllowed)
	})

	c := d.Controllers
	RegisterAuthRoutes(r, c.Auth)
	RegisterCatalogRoutes(r, c.Catalog)
	RegisterHealthRoutes(r, c.Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	return r
}

// onlyFor aplica m solo a requests con ese método y path exacto.
func onlyFor(method, path string, m mw.Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		wrapped := m(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == method && r.URL.Path == path {
				wrapped.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
