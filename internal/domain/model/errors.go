package model

import (
	"errors"
	"fmt"
)

// ValidationError indica que una entidad no pudo construirse porque violó
// una de sus invariantes. Message es el texto que ve el cliente.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// IsValidation verifica si el error (o alguno envuelto) es de validación.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError se levanta desde los casos de uso cuando el recurso no existe.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s no encontrado: %s", e.Resource, e.ID)
}

// IsNotFound verifica si el error (o alguno envuelto) es NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ErrInvalidCredentials es el único error de login: no distingue usuario
// inexistente de contraseña incorrecta.
var ErrInvalidCredentials = errors.New(MsgInvalidCredentials)
