package helpers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httperrors "github.com/dropDatabas3/mantenimiento/internal/http/errors"
)

// PathUUID lee el parámetro de ruta name como UUID. Si devuelve false ya
// escribió un 400.
func PathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		httperrors.WriteError(w, r, httperrors.ErrInvalidParameter.WithDetail(name+"="+raw))
		return uuid.Nil, false
	}
	return id, true
}
