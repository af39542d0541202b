package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
)

// ErrTokenInvalid cubre firma incorrecta, token malformado, algoritmo
// distinto al configurado, expiración y subject ausente.
var ErrTokenInvalid = errors.New("token invalid")

// Claims es la identidad extraída de un token válido.
type Claims struct {
	Subject   string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Verify valida firma, algoritmo, exp/nbf (con Leeway) e iss si está
// configurado. Cualquier fallo envuelve ErrTokenInvalid.
func (i *Issuer) Verify(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, fmt.Errorf("%w: empty token", ErrTokenInvalid)
	}

	opts := []jwtv5.ParserOption{
		jwtv5.WithValidMethods([]string{i.Keys.Alg()}),
		jwtv5.WithTimeFunc(i.now),
		jwtv5.WithExpirationRequired(),
		jwtv5.WithIssuedAt(),
	}
	if i.Leeway > 0 {
		opts = append(opts, jwtv5.WithLeeway(i.Leeway))
	}
	if i.Iss != "" {
		opts = append(opts, jwtv5.WithIssuer(i.Iss))
	}

	var claims accessClaims
	tok, err := jwtv5.ParseWithClaims(token, &claims, i.keyfunc, opts...)
	if err != nil || !tok.Valid {
		return Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return Claims{}, fmt.Errorf("%w: missing sub", ErrTokenInvalid)
	}

	out := Claims{Subject: claims.Subject, Role: claims.Role}
	if out.Role == "" {
		out.Role = model.DefaultUserRole
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

func (i *Issuer) keyfunc(t *jwtv5.Token) (any, error) {
	if kid, _ := t.Header["kid"].(string); kid != "" && i.Keys.KID != "" && kid != i.Keys.KID {
		return nil, errors.New("kid_mismatch")
	}
	return i.Keys.verifyKey, nil
}
