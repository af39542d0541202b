// Package catalog contiene los controllers CRUD de categorías y productos.
package catalog

import (
	"net/http"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
	dto "github.com/dropDatabas3/mantenimiento/internal/http/dto/catalog"
	httperrors "github.com/dropDatabas3/mantenimiento/internal/http/errors"
	"github.com/dropDatabas3/mantenimiento/internal/http/helpers"
	svc "github.com/dropDatabas3/mantenimiento/internal/http/services/catalog"
)

// CategoryController maneja /categories.
type CategoryController struct {
	service svc.CategoryService
}

func NewCategoryController(s svc.CategoryService) *CategoryController {
	return &CategoryController{service: s}
}

// List maneja GET /categories.
func (c *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.service.List(r.Context())
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.NewCategoryList(items))
}

// Create maneja POST /categories.
func (c *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	created, err := c.service.Create(r.Context(), req.Name)
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, dto.NewCategoryResponse(created))
}

// Update maneja PUT /categories/{id}.
func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathUUID(w, r, "id")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	updated, err := c.service.Update(r.Context(), id, req.Name)
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.NewCategoryResponse(updated))
}

// Get maneja GET /categories/{id}.
func (c *CategoryController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathUUID(w, r, "id")
	if !ok {
		return
	}
	found, exists, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	if !exists {
		httperrors.WriteError(w, r, &model.NotFoundError{Resource: model.ResourceCategory, ID: id.String()})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.NewCategoryResponse(found))
}

// Delete maneja DELETE /categories/{id}.
func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteByID(r.Context(), id); err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
