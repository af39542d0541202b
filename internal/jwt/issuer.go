// Package jwt emite y verifica los access tokens del servicio.
//
// Un token lleva sub (username), role, iat, exp y opcionalmente iss/nbf.
// No hay refresh ni revocación: el token vale hasta su exp.
package jwt

import (
	"errors"
	"strings"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// Issuer firma y verifica tokens con un KeySet fijo.
type Issuer struct {
	Iss       string        // "iss"; vacío = no se emite ni se exige
	Keys      *KeySet       // clave de firma compartida
	AccessTTL time.Duration // TTL del access token (ej: 1h)
	Leeway    time.Duration // tolerancia de reloj al validar exp/nbf

	// Now permite inyectar el reloj (tests). nil = time.Now.
	Now func() time.Time
}

func NewIssuer(iss string, ks *KeySet) *Issuer {
	return &Issuer{
		Iss:       iss,
		Keys:      ks,
		AccessTTL: time.Hour,
	}
}

func (i *Issuer) now() time.Time {
	if i.Now != nil {
		return i.Now().UTC()
	}
	return time.Now().UTC()
}

// accessClaims es el payload del access token.
type accessClaims struct {
	Role string `json:"role,omitempty"`
	jwtv5.RegisteredClaims
}

// Issue emite un access token para subject con el rol dado.
func (i *Issuer) Issue(subject, role string) (string, error) {
	tok, _, err := i.IssueAccess(subject, role)
	return tok, err
}

// IssueAccess emite un access token y devuelve también su expiración.
func (i *Issuer) IssueAccess(subject, role string) (string, time.Time, error) {
	if strings.TrimSpace(subject) == "" {
		return "", time.Time{}, errors.New("jwt: empty subject")
	}
	now := i.now()
	exp := now.Add(i.AccessTTL)

	claims := accessClaims{
		Role: role,
		RegisteredClaims: jwtv5.RegisteredClaims{
			Subject:   subject,
			Issuer:    i.Iss,
			IssuedAt:  jwtv5.NewNumericDate(now),
			NotBefore: jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(exp),
		},
	}
	tk := jwtv5.NewWithClaims(i.Keys.Method, claims)
	tk.Header["typ"] = "JWT"
	if i.Keys.KID != "" {
		tk.Header["kid"] = i.Keys.KID
	}

	signed, err := tk.SignedString(i.Keys.signKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}
