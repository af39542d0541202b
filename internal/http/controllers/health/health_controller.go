// Package health contiene el controller para health checks.
package health

import (
	"net/http"

	"github.com/dropDatabas3/mantenimiento/internal/http/helpers"
	svc "github.com/dropDatabas3/mantenimiento/internal/http/services/health"
	"github.com/dropDatabas3/mantenimiento/internal/observability/logger"
)

// HealthController maneja /healthz y /readyz.
type HealthController struct {
	service svc.HealthService
}

// NewHealthController crea un nuevo controller de health check.
func NewHealthController(service svc.HealthService) *HealthController {
	return &HealthController{service: service}
}

// Healthz maneja GET /healthz: el proceso está vivo, sin tocar dependencias.
func (c *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz maneja GET /readyz.
func (c *HealthController) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("HealthController.Readyz"))

	resp := c.service.Check(ctx)

	if resp.Version != "" {
		w.Header().Set("X-Service-Version", resp.Version)
	}
	status := http.StatusOK
	if resp.Status == "unavailable" {
		status = http.StatusServiceUnavailable
	}

	log.Debug("health check completed",
		logger.String("status", resp.Status),
		logger.Count(len(resp.Components)),
	)
	helpers.WriteJSON(w, status, resp)
}
