package middlewares

import "context"

// =================================================================================
// CONTEXT KEYS
// =================================================================================

type ctxKey string

const (
	ctxIdentityKey  ctxKey = "identity"
	ctxRequestIDKey ctxKey = "request_id"
)

// Identity es el sujeto autenticado de un request.
type Identity struct {
	Subject string // username
	Role    string
}

// WithIdentity inyecta la identidad en el contexto.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxIdentityKey, id)
}

// GetIdentity devuelve la identidad del request, si la hay.
func GetIdentity(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxIdentityKey).(Identity)
	return id, ok && id.Subject != ""
}

func setRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey, requestID)
}

// GetRequestID obtiene el request ID del contexto.
func GetRequestID(ctx context.Context) string {
	s, _ := ctx.Value(ctxRequestIDKey).(string)
	return s
}
