// Package health contiene el service para health checks.
package health

import (
	"context"
	"time"

	dto "github.com/dropDatabas3/mantenimiento/internal/http/dto/health"
	"github.com/dropDatabas3/mantenimiento/internal/observability/logger"
)

// HealthService define las operaciones de health check.
type HealthService interface {
	Check(ctx context.Context) dto.HealthResponse
}

// Deps contiene las dependencias inyectables para el health service.
type Deps struct {
	StorageCheck func(ctx context.Context) error // ping al almacenamiento
	RateCheck    func(ctx context.Context) error // ping a redis; nil si el backend es memory
	Version      string
	Timeout      time.Duration // por componente; 0 = 2s
}

type healthService struct {
	deps Deps
}

// NewHealthService crea un nuevo service de health check.
func NewHealthService(deps Deps) HealthService {
	if deps.Timeout <= 0 {
		deps.Timeout = 2 * time.Second
	}
	return &healthService{deps: deps}
}

const componentHealth = "health"

// Check corre los probes. El storage es crítico; el backend de rate limiting
// no, porque el middleware deja pasar las requests si falla.
func (s *healthService) Check(ctx context.Context) dto.HealthResponse {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentHealth),
		logger.Op("Check"),
	)

	resp := dto.HealthResponse{
		Status:     "ready",
		Version:    s.deps.Version,
		Components: make(map[string]dto.HealthStatus),
		Timestamp:  time.Now().UTC(),
	}

	if s.deps.StorageCheck == nil {
		resp.Components["storage"] = dto.HealthStatus{Status: "error", Message: "not initialized"}
		resp.Status = "unavailable"
	} else if err := s.probe(ctx, s.deps.StorageCheck); err != nil {
		log.Error("storage unavailable", logger.Err(err))
		resp.Components["storage"] = dto.HealthStatus{Status: "error", Message: "unavailable"}
		resp.Status = "unavailable"
	} else {
		resp.Components["storage"] = dto.HealthStatus{Status: "ok"}
	}

	if s.deps.RateCheck != nil {
		if err := s.probe(ctx, s.deps.RateCheck); err != nil {
			log.Warn("rate limiter backend unavailable", logger.Err(err))
			resp.Components["rate_limiter"] = dto.HealthStatus{Status: "error", Message: "unavailable"}
		} else {
			resp.Components["rate_limiter"] = dto.HealthStatus{Status: "ok"}
		}
	}

	return resp
}

func (s *healthService) probe(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.deps.Timeout)
	defer cancel()
	return fn(ctx)
}
