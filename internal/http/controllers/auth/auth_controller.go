// Package auth contiene los controllers de login, registro e identidad.
package auth

import (
	"net/http"

	dto "github.com/dropDatabas3/mantenimiento/internal/http/dto/auth"
	httperrors "github.com/dropDatabas3/mantenimiento/internal/http/errors"
	"github.com/dropDatabas3/mantenimiento/internal/http/helpers"
	mw "github.com/dropDatabas3/mantenimiento/internal/http/middlewares"
	svc "github.com/dropDatabas3/mantenimiento/internal/http/services/auth"
	"github.com/dropDatabas3/mantenimiento/internal/observability/logger"
)

// AuthController maneja POST /login, POST /users/register y GET /me.
type AuthController struct {
	login    svc.LoginService
	register svc.RegisterService
}

// NewAuthController crea el controller de auth.
func NewAuthController(login svc.LoginService, register svc.RegisterService) *AuthController {
	return &AuthController{login: login, register: register}
}

// Login maneja POST /login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("AuthController.Login"))

	var req dto.LoginRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.WriteError(w, r, err)
		return
	}

	token, err := c.login.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		log.Debug("login failed", logger.Err(err))
		httperrors.WriteError(w, r, err)
		return
	}

	w.Header().Set("Pragma", "no-cache")
	helpers.WriteJSON(w, http.StatusOK, dto.LoginResponse{Token: token})
}

// Register maneja POST /users/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.RegisterRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	u, err := c.register.Register(ctx, req.Username, req.Password, req.Role)
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, dto.NewUserResponse(u))
}

// Me maneja GET /me: devuelve la identidad del token.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := mw.GetIdentity(r.Context())
	if !ok {
		httperrors.WriteError(w, r, httperrors.ErrUnauthorized)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.MeResponse{Username: id.Subject, Role: id.Role})
}
