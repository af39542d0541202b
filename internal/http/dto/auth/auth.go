// Package auth contiene DTOs para los endpoints de autenticación y usuarios.
package auth

import (
	"strings"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
)

const (
	msgLoginUsernameRequired = "El username es obligatorio"
	msgLoginPasswordRequired = "La password es obligatoria"
)

// LoginRequest es el body de POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate exige ambos campos no vacíos. El resto de las reglas las aplica
// el login sin revelar cuál falló.
func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return &model.ValidationError{Field: "username", Message: msgLoginUsernameRequired}
	}
	if strings.TrimSpace(r.Password) == "" {
		return &model.ValidationError{Field: "password", Message: msgLoginPasswordRequired}
	}
	return nil
}

// LoginResponse es la respuesta de un login exitoso.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest es el body de POST /users/register. Role es opcional.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// UserResponse nunca incluye la contraseña ni su hash.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// NewUserResponse mapea un usuario persistido.
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{ID: u.ID().String(), Username: u.Username(), Role: u.Role()}
}

// MeResponse es la identidad del token con el que se hizo la request.
type MeResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
