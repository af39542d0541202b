package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
)

// UserRepository persiste usuarios. El campo Password del usuario
// guardado es siempre el hash, nunca el texto plano.
type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)

	// FindByID retorna ErrNotFound si no existe.
	FindByID(ctx context.Context, id uuid.UUID) (model.User, error)

	// FindByUsername retorna ErrNotFound si no existe.
	FindByUsername(ctx context.Context, username string) (model.User, error)

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Save inserta o reemplaza. Retorna ErrConflict si el username
	// ya pertenece a otro usuario.
	Save(ctx context.Context, u model.User) (model.User, error)

	DeleteByID(ctx context.Context, id uuid.UUID) error
}
