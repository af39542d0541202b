package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
)

// ProductRepository persiste productos.
// La categoría referenciada no se verifica: es una referencia blanda.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)

	// FindByID retorna ErrNotFound si no existe.
	FindByID(ctx context.Context, id uuid.UUID) (model.Product, error)

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Save inserta o reemplaza. Con ID nulo asigna uno nuevo.
	Save(ctx context.Context, p model.Product) (model.Product, error)

	DeleteByID(ctx context.Context, id uuid.UUID) error
}
