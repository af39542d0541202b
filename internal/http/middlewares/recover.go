package middlewares

import (
	"fmt"
	"net/http"

	httperrors "github.com/dropDatabas3/mantenimiento/internal/http/errors"
	"github.com/dropDatabas3/mantenimiento/internal/observability/logger"
)

// WithRecover captura panics y responde 500 con el envelope estándar.
func WithRecover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.From(r.Context()).Error("panic recovered",
					logger.Layer("middleware"),
					logger.Op("recover"),
					logger.String("panic", fmt.Sprint(rec)),
				)
				httperrors.WriteError(w, r, httperrors.ErrInternalServerError.WithDetail("panic recovered"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
