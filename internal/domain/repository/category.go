package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
)

// CategoryRepository persiste categorías.
type CategoryRepository interface {
	// FindAll retorna todas las categorías, sin orden garantizado.
	FindAll(ctx context.Context) ([]model.Category, error)

	// FindByID retorna ErrNotFound si no existe.
	FindByID(ctx context.Context, id uuid.UUID) (model.Category, error)

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Save inserta o reemplaza. Con ID nulo asigna uno nuevo.
	Save(ctx context.Context, c model.Category) (model.Category, error)

	DeleteByID(ctx context.Context, id uuid.UUID) error
}
