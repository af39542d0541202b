package model

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductFields son los valores crudos con los que se arma un Product.
// Description nil significa "sin descripción".
type ProductFields struct {
	Name        string
	Description *string
	Price       *decimal.Decimal
	CategoryID  uuid.UUID
}

// Product es un producto del catálogo. CategoryID es una referencia blanda:
// no se verifica que la categoría exista.
type Product struct {
	id          uuid.UUID
	name        string
	description *string
	price       decimal.Decimal
	categoryID  uuid.UUID
}

// NewProduct valida en orden nombre, descripción, precio y categoría; el
// primer error encontrado es el que se reporta.
func NewProduct(id uuid.UUID, f ProductFields) (Product, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return Product{}, invalid("name", MsgProductNameRequired)
	}
	if utf8.RuneCountInString(name) > MaxProductNameLength {
		return Product{}, invalid("name", MsgProductNameMaxLength)
	}

	var desc *string
	if f.Description != nil {
		if utf8.RuneCountInString(*f.Description) > MaxProductDescriptionLength {
			return Product{}, invalid("description", MsgProductDescriptionMaxLen)
		}
		d := *f.Description
		desc = &d
	}

	if f.Price == nil || f.Price.Sign() <= 0 {
		return Product{}, invalid("price", MsgProductPricePositive)
	}
	if !priceInRange(*f.Price) {
		return Product{}, invalid("price", MsgProductPriceRange)
	}

	if f.CategoryID == uuid.Nil {
		return Product{}, invalid("categoryId", MsgProductCategoryRequired)
	}

	return Product{
		id:          id,
		name:        name,
		description: desc,
		price:       *f.Price,
		categoryID:  f.CategoryID,
	}, nil
}

// priceInRange acota escala y magnitud usando solo el exponente y los
// dígitos del coeficiente, sin reescalar.
func priceInRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if -exp > MaxPriceScale {
		return false
	}
	return int64(d.NumDigits())+exp <= MaxPriceIntegerDigits
}

func (p Product) ID() uuid.UUID          { return p.id }
func (p Product) Name() string           { return p.name }
func (p Product) Price() decimal.Decimal { return p.price }
func (p Product) CategoryID() uuid.UUID  { return p.categoryID }
func (p Product) HasDescription() bool   { return p.description != nil }

// Description devuelve una copia del puntero para no exponer el estado interno.
func (p Product) Description() *string {
	if p.description == nil {
		return nil
	}
	d := *p.description
	return &d
}

// WithData reemplaza todos los campos conservando el ID. No mezcla con los
// valores anteriores.
func (p Product) WithData(f ProductFields) (Product, error) {
	return NewProduct(p.id, f)
}

// WithID devuelve una copia con el ID indicado.
func (p Product) WithID(id uuid.UUID) Product {
	p.id = id
	return p
}
