// Package controllers agrupa los controllers HTTP. Es el "composition root"
// de controllers: recibe los services ya armados y los inyecta.
//
//	svcs := services.New(deps)
//	ctrls := controllers.New(svcs)
//	router.RegisterCatalogRoutes(r, ctrls.Catalog)
package controllers

import (
	"github.com/dropDatabas3/mantenimiento/internal/http/controllers/auth"
	"github.com/dropDatabas3/mantenimiento/internal/http/controllers/catalog"
	"github.com/dropDatabas3/mantenimiento/internal/http/controllers/health"
	"github.com/dropDatabas3/mantenimiento/internal/http/services"
)

// Controllers agrupa todos los controllers por dominio.
type Controllers struct {
	Auth    *auth.Controllers
	Catalog *catalog.Controllers
	Health  *health.HealthController
}

// New crea el agregador de controllers.
func New(s *services.Services) *Controllers {
	return &Controllers{
		Auth:    auth.NewControllers(s.Auth),
		Catalog: catalog.NewControllers(s.Catalog),
		Health:  health.NewHealthController(s.Health),
	}
}
