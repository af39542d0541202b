// Package catalog contiene DTOs para categorías y productos.
package catalog

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
)

// CategoryRequest es el body de POST/PUT /categories.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse es la representación pública de una categoría.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewCategoryResponse(c model.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID().String(), Name: c.Name()}
}

func NewCategoryList(in []model.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(in))
	for _, c := range in {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}

// ProductRequest es el body de POST/PUT /products. Price acepta número o
// string; un categoryId con formato inválido falla al decodificar.
type ProductRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *uuid.UUID       `json:"categoryId"`
}

// Fields convierte el request a los campos del dominio. Los ausentes quedan
// en cero y los rechaza la validación de la entidad.
func (r ProductRequest) Fields() model.ProductFields {
	f := model.ProductFields{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
	}
	if r.CategoryID != nil {
		f.CategoryID = *r.CategoryID
	}
	return f
}

// ProductResponse es la representación pública de un producto. Price se
// serializa como número JSON.
type ProductResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	Price       json.Number `json:"price"`
	CategoryID  string      `json:"categoryId"`
}

func NewProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID().String(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       json.Number(p.Price().String()),
		CategoryID:  p.CategoryID().String(),
	}
}

func NewProductList(in []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(in))
	for _, p := range in {
		out = append(out, NewProductResponse(p))
	}
	return out
}
