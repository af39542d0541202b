// Package model contiene las entidades del dominio (Category, Product, User).
//
// Las entidades son valores inmutables: solo se obtienen a través de sus
// constructores (NewCategory, NewProduct, NewUser), que normalizan y validan
// los campos. Una "actualización" construye un valor nuevo con el mismo ID
// y vuelve a correr todas las reglas.
package model

import "regexp"

// =================================================================================
// REGLAS DE VALIDACIÓN
// =================================================================================

const (
	MaxCategoryNameLength       = 120
	MaxProductNameLength        = 150
	MaxProductDescriptionLength = 500
	MinUsernameLength           = 3
	MaxUsernameLength           = 50
	MinPasswordLength           = 6
	MaxPasswordLength           = 120

	// DefaultUserRole se asigna cuando el rol llega vacío.
	DefaultUserRole = "ROLE_USER"
	// AdminRole es el rol del usuario administrador sembrado al arrancar.
	AdminRole = "ROLE_ADMIN"
)

// Límites del precio: hasta MaxPriceScale decimales y MaxPriceIntegerDigits
// dígitos enteros. Se chequean sobre exponente y dígitos, sin reescalar.
const (
	MaxPriceScale         = 10
	MaxPriceIntegerDigits = 18
)

var userRolePattern = regexp.MustCompile(`^ROLE_[A-Z_]+$`)

// ValidRole indica si el rol cumple el formato ROLE_<NOMBRE>.
func ValidRole(role string) bool {
	return userRolePattern.MatchString(role)
}

// =================================================================================
// MENSAJES
// =================================================================================

const (
	MsgProductNameRequired      = "El nombre del producto es obligatorio"
	MsgProductNameMaxLength     = "El nombre del producto no puede superar 150 caracteres"
	MsgProductDescriptionMaxLen = "La descripción no puede superar 500 caracteres"
	MsgProductPricePositive     = "El precio debe ser mayor que cero"
	MsgProductPriceRange        = "El precio está fuera del rango permitido"
	MsgProductCategoryRequired  = "La categoría es obligatoria"
	MsgCategoryNameRequired     = "El nombre de la categoría es obligatorio"
	MsgCategoryNameMaxLength    = "El nombre de la categoría no puede superar 120 caracteres"
	MsgUserUsernameRequired     = "El nombre de usuario es obligatorio"
	MsgUserUsernameLength       = "El nombre de usuario debe tener entre 3 y 50 caracteres"
	MsgUserPasswordRequired     = "La contraseña es obligatoria"
	MsgUserPasswordLength       = "La contraseña debe tener entre 6 y 120 caracteres"
	MsgUserRoleInvalidFormat    = "El rol debe cumplir el formato ROLE_<NOMBRE>"
	MsgInvalidCredentials       = "Credenciales inválidas"

	ResourceProduct  = "Producto"
	ResourceCategory = "Categoría"
	ResourceUser     = "Usuario"
)
