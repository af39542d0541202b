package model

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Category es una categoría de productos. uuid.Nil como ID significa "todavía
// no persistida".
type Category struct {
	id   uuid.UUID
	name string
}

// NewCategory construye una Category válida o devuelve *ValidationError.
func NewCategory(id uuid.UUID, name string) (Category, error) {
	n, err := validateCategoryName(name)
	if err != nil {
		return Category{}, err
	}
	return Category{id: id, name: n}, nil
}

func validateCategoryName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", invalid("name", MsgCategoryNameRequired)
	}
	if utf8.RuneCountInString(n) > MaxCategoryNameLength {
		return "", invalid("name", MsgCategoryNameMaxLength)
	}
	return n, nil
}

func (c Category) ID() uuid.UUID { return c.id }
func (c Category) Name() string  { return c.name }

// WithName devuelve una copia con el mismo ID y el nombre nuevo, revalidada.
func (c Category) WithName(name string) (Category, error) {
	return NewCategory(c.id, name)
}

// WithID devuelve una copia con el ID indicado. Lo usan los repositorios al
// asignar identidad en el primer guardado.
func (c Category) WithID(id uuid.UUID) Category {
	c.id = id
	return c
}
