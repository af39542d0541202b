// Package catalog contiene los casos de uso de categorías y productos.
package catalog

import (
	"github.com/dropDatabas3/mantenimiento/internal/domain/repository"
)

// Deps contiene las dependencias para crear los services de catálogo.
type Deps struct {
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
}

// Services agrupa los services del dominio catálogo.
type Services struct {
	Categories CategoryService
	Products   ProductService
}

// NewServices crea el agregador de services de catálogo.
func NewServices(d Deps) Services {
	return Services{
		Categories: NewCategoryService(d.Categories),
		Products:   NewProductService(d.Products),
	}
}
