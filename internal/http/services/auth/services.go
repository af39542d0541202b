// Package auth contiene los casos de uso de registro y login.
package auth

import (
	"github.com/dropDatabas3/mantenimiento/internal/domain/repository"
	"github.com/dropDatabas3/mantenimiento/internal/security/password"
)

// TokenIssuer firma el token de acceso. *jwt.Issuer lo implementa.
type TokenIssuer interface {
	Issue(subject, role string) (string, error)
}

// AuthRecorder registra el resultado de cada intento. *metrics.Metrics lo
// implementa; nil desactiva el registro.
type AuthRecorder interface {
	RecordAuth(op, result string)
}

// Deps contiene las dependencias para crear los services auth.
type Deps struct {
	Users   repository.UserRepository
	Hasher  password.Hasher
	Issuer  TokenIssuer
	Metrics AuthRecorder
}

// Services agrupa los services del dominio auth.
type Services struct {
	Register RegisterService
	Login    LoginService
}

// NewServices crea el agregador de services auth.
func NewServices(d Deps) Services {
	return Services{
		Register: NewRegisterService(d.Users, d.Hasher, d.Metrics),
		Login:    NewLoginService(d.Users, d.Hasher, d.Issuer, d.Metrics),
	}
}

const (
	resultOK       = "ok"
	resultRejected = "rejected"
	resultError    = "error"
)

func record(m AuthRecorder, op, result string) {
	if m != nil {
		m.RecordAuth(op, result)
	}
}
