package middlewares

import (
	"net/http"
	"strings"

	httperrors "github.com/dropDatabas3/mantenimiento/internal/http/errors"
	jwtx "github.com/dropDatabas3/mantenimiento/internal/jwt"
	"github.com/dropDatabas3/mantenimiento/internal/observability/logger"
)

// =================================================================================
// AUTHENTICATION GATE
// =================================================================================

// TokenVerifier valida un bearer token y devuelve su identidad.
type TokenVerifier interface {
	Verify(token string) (jwtx.Claims, error)
}

const bearerPrefix = "Bearer "

// bearerToken devuelve el token si Authorization tiene el prefijo exacto "Bearer ".
func bearerToken(r *http.Request) (string, bool) {
	ah := r.Header.Get("Authorization")
	if !strings.HasPrefix(ah, bearerPrefix) {
		return "", false
	}
	return ah[len(bearerPrefix):], true
}

// WithAuthGate consulta primero la policy: las rutas públicas pasan sin
// mirar el header. En rutas autenticadas, sin bearer corta con 401
// UNAUTHORIZED; con token inválido corta con 401 TOKEN_INVALID; con token
// válido inyecta la Identity. p nil usa DefaultPolicy.
func WithAuthGate(v TokenVerifier, p *Policy) Middleware {
	if p == nil {
		p = DefaultPolicy()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p.Decide(r.Method, r.URL.Path) == Public {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := bearerToken(r)
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer`)
				httperrors.WriteError(w, r, httperrors.ErrUnauthorized)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				logger.From(r.Context()).Debug("bearer token rejected",
					logger.Layer("middleware"), logger.Component("auth"), logger.Err(err))
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				httperrors.WriteError(w, r, httperrors.ErrTokenInvalid.WithCause(err))
				return
			}

			ctx := WithIdentity(r.Context(), Identity{Subject: claims.Subject, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
