package router

import (
	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/mantenimiento/internal/http/controllers/health"
)

// RegisterHealthRoutes registra /healthz y /readyz (públicos).
func RegisterHealthRoutes(r chi.Router, c *ctrl.HealthController) {
	r.Get("/healthz", c.Healthz)
	r.Get("/readyz", c.Readyz)
}
