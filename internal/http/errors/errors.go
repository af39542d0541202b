package errors

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dropDatabas3/mantenimiento/internal/observability/logger"
)

// Now es el reloj del envelope; los tests lo fijan.
var Now = time.Now

// errorResponse es el envelope de error de toda la API.
type errorResponse struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

// WriteError escribe el envelope para err. Los 5xx loguean la causa con el
// logger del request y responden siempre el mensaje genérico.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := FromError(err)

	path := ""
	if r != nil {
		path = r.URL.Path
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.From(r.Context()).Error("request failed",
				logger.Layer("http"),
				logger.ErrorCode(appErr.Code),
				logger.Err(appErr.Err),
				logger.String("detail", appErr.Detail),
			)
		}
	}

	resp := errorResponse{
		Timestamp: Now().UTC().Format(time.RFC3339Nano),
		Status:    appErr.HTTPStatus,
		Error:     http.StatusText(appErr.HTTPStatus),
		Code:      appErr.Code,
		Message:   appErr.Message,
		Path:      path,
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(resp)
}
