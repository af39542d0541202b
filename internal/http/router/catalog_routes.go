package router

import (
	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/mantenimiento/internal/http/controllers/catalog"
)

// RegisterCatalogRoutes registra el CRUD de categorías y productos. Qué
// verbos exigen token lo decide la access policy, no el router.
func RegisterCatalogRoutes(r chi.Router, c *ctrl.Controllers) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", c.Categories.List)
		r.Post("/", c.Categories.Create)
		r.Get("/{id}", c.Categories.Get)
		r.Put("/{id}", c.Categories.Update)
		r.Delete("/{id}", c.Categories.Delete)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", c.Products.List)
		r.Post("/", c.Products.Create)
		r.Get("/{id}", c.Products.Get)
		r.Put("/{id}", c.Products.Update)
		r.Delete("/{id}", c.Products.Delete)
	})
}
