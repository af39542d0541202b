package router

import (
	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/mantenimiento/internal/http/controllers/auth"
	mw "github.com/dropDatabas3/mantenimiento/internal/http/middlewares"
)

// RegisterAuthRoutes registra login, registro y /me.
func RegisterAuthRoutes(r chi.Router, c *ctrl.Controllers) {
	r.With(mw.WithNoStore()).Post("/login", c.Auth.Login)
	r.Post("/users/register", c.Auth.Register)
	r.With(mw.WithNoStore()).Get("/me", c.Auth.Me)
}
