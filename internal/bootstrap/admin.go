// Package bootstrap siembra los datos mínimos para operar el servicio.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
	"github.com/dropDatabas3/mantenimiento/internal/domain/repository"
	"github.com/dropDatabas3/mantenimiento/internal/http/services/auth"
	"github.com/dropDatabas3/mantenimiento/internal/observability/logger"
)

// DefaultAdminUsername es el usuario sembrado si la config no indica otro.
const DefaultAdminUsername = "admin"

// AdminBootstrapConfig contiene lo necesario para sembrar el admin.
type AdminBootstrapConfig struct {
	Users    repository.UserRepository
	Register auth.RegisterService
	Username string // vacío = DefaultAdminUsername
	Password string
}

// EnsureAdmin crea el usuario admin con ROLE_ADMIN si no existe. Pasa por
// el registro normal, así la contraseña queda hasheada y validada. Retorna
// created=false si ya existía (o si otra instancia lo creó en paralelo).
func EnsureAdmin(ctx context.Context, cfg AdminBootstrapConfig) (bool, error) {
	username := cfg.Username
	if username == "" {
		username = DefaultAdminUsername
	}
	log := logger.From(ctx).With(
		logger.Component("bootstrap"),
		logger.Op("EnsureAdmin"),
		logger.Username(username),
	)

	if cfg.Users == nil || cfg.Register == nil {
		return false, errors.New("bootstrap: users repository and register service are required")
	}
	if cfg.Password == "" {
		return false, errors.New("bootstrap: admin password is empty")
	}

	_, err := cfg.Users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		log.Debug("admin user present, skipping")
		return false, nil
	case !repository.IsNotFound(err):
		return false, fmt.Errorf("bootstrap: lookup admin: %w", err)
	}

	u, err := cfg.Register.Register(ctx, username, cfg.Password, model.AdminRole)
	if err != nil {
		if repository.IsConflict(err) {
			return false, nil
		}
		return false, fmt.Errorf("bootstrap: create admin: %w", err)
	}

	log.Info("admin user created", logger.UserID(u.ID().String()))
	return true, nil
}
