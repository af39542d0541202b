// Package errors define los errores HTTP de la API y su envelope JSON.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
	"github.com/dropDatabas3/mantenimiento/internal/domain/repository"
	jwtx "github.com/dropDatabas3/mantenimiento/internal/jwt"
)

// AppError define la estructura estándar para errores de la aplicación.
type AppError struct {
	Code       string
	Message    string
	Detail     string // solo para logs, nunca se envía al cliente
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New crea un nuevo AppError.
func New(status int, code, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// WithMessage devuelve una COPIA con otro mensaje.
func (e *AppError) WithMessage(msg string) *AppError {
	newErr := *e
	newErr.Message = msg
	return &newErr
}

// WithDetail devuelve una COPIA con detalle para logs.
func (e *AppError) WithDetail(detail string) *AppError {
	newErr := *e
	newErr.Detail = detail
	return &newErr
}

// WithCause devuelve una COPIA con la causa original.
func (e *AppError) WithCause(err error) *AppError {
	newErr := *e
	newErr.Err = err
	return &newErr
}

// FromError traduce errores de dominio y de otras capas a AppError.
// Lo que no se reconoce termina como 500 conservando la causa.
func FromError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var verr *model.ValidationError
	if stderrors.As(err, &verr) {
		return ErrValidation.WithMessage(verr.Message).WithDetail(verr.Field).WithCause(err)
	}

	var nf *model.NotFoundError
	if stderrors.As(err, &nf) {
		return ErrNotFound.WithMessage(nf.Error()).WithCause(err)
	}

	switch {
	case stderrors.Is(err, model.ErrInvalidCredentials):
		return ErrInvalidCredentials.WithCause(err)
	case stderrors.Is(err, jwtx.ErrTokenInvalid):
		return ErrTokenInvalid.WithCause(err)
	case stderrors.Is(err, repository.ErrConflict):
		return ErrUsernameTaken.WithCause(err)
	}
	return ErrInternalServerError.WithCause(err)
}

// =================================================================================
// ERRORES PREDEFINIDOS
// =================================================================================

// ---------------------------------------------------------------------------------
// 400 Bad Request
// ---------------------------------------------------------------------------------

var (
	ErrInvalidJSON = &AppError{
		Code:       "INVALID_FORMAT",
		Message:    "Formato de solicitud inválido",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrInvalidParameter = &AppError{
		Code:       "INVALID_PARAMETER",
		Message:    "Formato de solicitud inválido",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrValidation = &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "Solicitud inválida",
		HTTPStatus: http.StatusBadRequest,
	}
)

// ---------------------------------------------------------------------------------
// 401 Unauthorized
// ---------------------------------------------------------------------------------

var (
	ErrUnauthorized = &AppError{
		Code:       "UNAUTHORIZED",
		Message:    "Token ausente",
		HTTPStatus: http.StatusUnauthorized,
	}

	ErrTokenInvalid = &AppError{
		Code:       "TOKEN_INVALID",
		Message:    "Token inválido o expirado",
		HTTPStatus: http.StatusUnauthorized,
	}

	ErrInvalidCredentials = &AppError{
		Code:       "INVALID_CREDENTIALS",
		Message:    model.MsgInvalidCredentials,
		HTTPStatus: http.StatusUnauthorized,
	}
)

// ---------------------------------------------------------------------------------
// 404 / 405 / 409
// ---------------------------------------------------------------------------------

var (
	ErrNotFound = &AppError{
		Code:       "NOT_FOUND",
		Message:    "Recurso no encontrado",
		HTTPStatus: http.StatusNotFound,
	}

	ErrRouteNotFound = &AppError{
		Code:       "ROUTE_NOT_FOUND",
		Message:    "La ruta solicitada no existe",
		HTTPStatus: http.StatusNotFound,
	}

	ErrMethodNotAllowed = &AppError{
		Code:       "METHOD_NOT_ALLOWED",
		Message:    "Método no permitido",
		HTTPStatus: http.StatusMethodNotAllowed,
	}

	ErrUsernameTaken = &AppError{
		Code:       "CONFLICT",
		Message:    "El nombre de usuario ya está registrado",
		HTTPStatus: http.StatusConflict,
	}
)

// ---------------------------------------------------------------------------------
// 413 / 415 / 429
// ---------------------------------------------------------------------------------

var (
	ErrBodyTooLarge = &AppError{
		Code:       "BODY_TOO_LARGE",
		Message:    "El cuerpo de la solicitud excede el tamaño máximo permitido",
		HTTPStatus: http.StatusRequestEntityTooLarge,
	}

	ErrUnsupportedMediaType = &AppError{
		Code:       "UNSUPPORTED_MEDIA_TYPE",
		Message:    "Content-Type debe ser application/json",
		HTTPStatus: http.StatusUnsupportedMediaType,
	}

	ErrRateLimitExceeded = &AppError{
		Code:       "RATE_LIMIT_EXCEEDED",
		Message:    "Ha excedido el límite de solicitudes. Intente más tarde",
		HTTPStatus: http.StatusTooManyRequests,
	}
)

// ---------------------------------------------------------------------------------
// 500+
// ---------------------------------------------------------------------------------

var (
	ErrInternalServerError = &AppError{
		Code:       "INTERNAL_SERVER_ERROR",
		Message:    "Error interno del servidor",
		HTTPStatus: http.StatusInternalServerError,
	}
)
