// Package password hashea y verifica credenciales de usuario.
//
// Soporta bcrypt (default) y argon2id en formato PHC. Verify detecta el
// algoritmo por el prefijo del hash, así una base con hashes mixtos
// sigue funcionando al cambiar el algoritmo configurado.
package password

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPassword se retorna al intentar hashear una cadena vacía.
var ErrEmptyPassword = errors.New("empty password")

// Hasher transforma contraseñas en digests no reversibles.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

const (
	AlgBcrypt   = "bcrypt"
	AlgArgon2id = "argon2id"
)

// New construye el Hasher para el algoritmo indicado. Cadena vacía = bcrypt.
// bcryptCost <= 0 usa el costo por defecto de la librería.
func New(alg string, bcryptCost int) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(alg)) {
	case "", AlgBcrypt:
		return NewBcrypt(bcryptCost), nil
	case AlgArgon2id:
		return NewArgon2id(Default), nil
	default:
		return nil, fmt.Errorf("password: unknown hasher %q", alg)
	}
}

// Verify compara contra cualquier digest soportado.
func Verify(plain, digest string) bool {
	switch {
	case strings.HasPrefix(digest, "$argon2id$"):
		return verifyArgon2id(plain, digest)
	case isBcrypt(digest):
		return verifyBcrypt(plain, digest)
	default:
		return false
	}
}

func isBcrypt(digest string) bool {
	return strings.HasPrefix(digest, "$2a$") ||
		strings.HasPrefix(digest, "$2b$") ||
		strings.HasPrefix(digest, "$2y$")
}
