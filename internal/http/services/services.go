// Package services agrupa los services HTTP por dominio. Es el
// "composition root" de services: recibe las dependencias de
// infraestructura y arma cada sub-service.
//
//	svcs := services.New(services.Deps{...})
//	ctrls := controllers.New(svcs)
package services

import (
	"github.com/dropDatabas3/mantenimiento/internal/domain/repository"
	"github.com/dropDatabas3/mantenimiento/internal/http/services/auth"
	"github.com/dropDatabas3/mantenimiento/internal/http/services/catalog"
	"github.com/dropDatabas3/mantenimiento/internal/http/services/health"
	"github.com/dropDatabas3/mantenimiento/internal/security/password"
)

// Deps contiene las dependencias base para crear los services.
type Deps struct {
	// ─── Repositorios ───
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Users      repository.UserRepository

	// ─── Seguridad ───
	Hasher password.Hasher
	Issuer auth.TokenIssuer

	// ─── Observabilidad ───
	Metrics    auth.AuthRecorder // nil = sin métricas de auth
	HealthDeps health.Deps
}

// Services agrupa todos los sub-services por dominio.
type Services struct {
	Auth    auth.Services
	Catalog catalog.Services
	Health  health.HealthService
}

// New crea el agregador de services.
func New(d Deps) *Services {
	return &Services{
		Auth: auth.NewServices(auth.Deps{
			Users:   d.Users,
			Hasher:  d.Hasher,
			Issuer:  d.Issuer,
			Metrics: d.Metrics,
		}),
		Catalog: catalog.NewServices(catalog.Deps{
			Categories: d.Categories,
			Products:   d.Products,
		}),
		Health: health.NewHealthService(d.HealthDeps),
	}
}
