package auth

import (
	svc "github.com/dropDatabas3/mantenimiento/internal/http/services/auth"
)

// Controllers agrupa los controllers del dominio auth.
type Controllers struct {
	Auth *AuthController
}

// NewControllers crea el agregador de controllers auth.
func NewControllers(s svc.Services) *Controllers {
	return &Controllers{Auth: NewAuthController(s.Login, s.Register)}
}
