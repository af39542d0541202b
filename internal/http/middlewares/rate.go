package middlewares

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	httperrors "github.com/dropDatabas3/mantenimiento/internal/http/errors"
	"github.com/dropDatabas3/mantenimiento/internal/observability/logger"
)

// =================================================================================
// RATE LIMITER INTERFACE
// =================================================================================

// RateLimitResult contiene el resultado de una consulta al rate limiter.
type RateLimitResult struct {
	Allowed     bool
	Remaining   int64
	RetryAfter  time.Duration
	WindowTTL   time.Duration
	CurrentHits int64
}

// RateLimiter define la interfaz mínima para un rate limiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateLimitResult, error)
}

// RateKeyFunc define cómo generar la clave de rate limiting.
type RateKeyFunc func(r *http.Request) string

// clientIP devuelve la IP del peer. X-Forwarded-For solo se usa con
// trustProxy: sin un proxy delante el cliente controla ese header.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
			parts := strings.Split(xf, ",")
			if ip := strings.TrimSpace(parts[0]); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

// IPPathRateKey separa los límites por endpoint (login vs register) sin leer el body.
// Usa solo RemoteAddr.
func IPPathRateKey(r *http.Request) string {
	return clientIP(r, false) + "|" + r.URL.Path
}

// IPPathRateKeyFunc es IPPathRateKey con X-Forwarded-For opcional
// (server.trust_proxy_headers).
func IPPathRateKeyFunc(trustProxy bool) RateKeyFunc {
	if !trustProxy {
		return IPPathRateKey
	}
	return func(r *http.Request) string {
		return clientIP(r, true) + "|" + r.URL.Path
	}
}

// WithRateLimit limita requests por clave. Si el limiter falla, deja pasar.
func WithRateLimit(limiter RateLimiter, keyFn RateKeyFunc) Middleware {
	if limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	if keyFn == nil {
		keyFn = IPPathRateKey
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := limiter.Allow(r.Context(), keyFn(r))
			if err != nil {
				logger.From(r.Context()).Warn("rate limiter unavailable",
					logger.Layer("middleware"), logger.Component("rate"), logger.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			if res.WindowTTL > 0 {
				resetAt := time.Now().Add(res.WindowTTL).Unix()
				w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt, 10))
			}
			if !res.Allowed {
				if res.RetryAfter > 0 {
					secs := int(res.RetryAfter.Round(time.Second) / time.Second)
					if secs < 1 {
						secs = 1
					}
					w.Header().Set("Retry-After", strconv.Itoa(secs))
				}
				httperrors.WriteError(w, r, httperrors.ErrRateLimitExceeded)
				return
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))

			next.ServeHTTP(w, r)
		})
	}
}
