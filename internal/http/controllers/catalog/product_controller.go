package catalog

import (
	"net/http"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
	dto "github.com/dropDatabas3/mantenimiento/internal/http/dto/catalog"
	httperrors "github.com/dropDatabas3/mantenimiento/internal/http/errors"
	"github.com/dropDatabas3/mantenimiento/internal/http/helpers"
	svc "github.com/dropDatabas3/mantenimiento/internal/http/services/catalog"
)

// ProductController maneja /products.
type ProductController struct {
	service svc.ProductService
}

func NewProductController(s svc.ProductService) *ProductController {
	return &ProductController{service: s}
}

func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.service.List(r.Context())
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.NewProductList(items))
}

func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	created, err := c.service.Create(r.Context(), req.Fields())
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, dto.NewProductResponse(created))
}

// Update reemplaza el producto completo; no es un PATCH.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathUUID(w, r, "id")
	if !ok {
		return
	}
	var req dto.ProductRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	updated, err := c.service.Update(r.Context(), id, req.Fields())
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.NewProductResponse(updated))
}

func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
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
		httperrors.WriteError(w, r, &model.NotFoundError{Resource: model.ResourceProduct, ID: id.String()})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.NewProductResponse(found))
}

func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
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
