package catalog

import (
	svc "github.com/dropDatabas3/mantenimiento/internal/http/services/catalog"
)

// Controllers agrupa los controllers del dominio catálogo.
type Controllers struct {
	Categories *CategoryController
	Products   *ProductController
}

func NewControllers(s svc.Services) *Controllers {
	return &Controllers{
		Categories: NewCategoryController(s.Categories),
		Products:   NewProductController(s.Products),
	}
}
