package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
	"github.com/dropDatabas3/mantenimiento/internal/domain/repository"
	"github.com/dropDatabas3/mantenimiento/internal/observability/logger"
	"github.com/dropDatabas3/mantenimiento/internal/security/password"
)

// LoginService autentica credenciales y emite el token de acceso.
type LoginService interface {
	// Authenticate retorna model.ErrInvalidCredentials tanto si el usuario no
	// existe como si la contraseña no coincide.
	Authenticate(ctx context.Context, username, plain string) (string, error)
}

type loginService struct {
	users   repository.UserRepository
	hasher  password.Hasher
	issuer  TokenIssuer
	metrics AuthRecorder

	dummyOnce sync.Once
	dummy     string
}

// NewLoginService crea el service de login.
func NewLoginService(users repository.UserRepository, h password.Hasher, iss TokenIssuer, m AuthRecorder) LoginService {
	return &loginService{users: users, hasher: h, issuer: iss, metrics: m}
}

func (s *loginService) Authenticate(ctx context.Context, username, plain string) (string, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.login"),
		logger.Op("Authenticate"),
	)

	username = strings.TrimSpace(username)
	if username == "" || plain == "" {
		record(s.metrics, "login", resultRejected)
		return "", model.ErrInvalidCredentials
	}
	log = log.With(logger.Username(username))

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if !repository.IsNotFound(err) {
			record(s.metrics, "login", resultError)
			return "", fmt.Errorf("find user: %w", err)
		}
		// Igualar el costo de la respuesta con el de un usuario existente.
		s.burnVerify(plain)
		log.Debug("user not found")
		record(s.metrics, "login", resultRejected)
		return "", model.ErrInvalidCredentials
	}

	if !password.Verify(plain, u.Password()) {
		log.Debug("password check failed")
		record(s.metrics, "login", resultRejected)
		return "", model.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(u.Username(), u.Role())
	if err != nil {
		record(s.metrics, "login", resultError)
		return "", fmt.Errorf("issue token: %w", err)
	}

	record(s.metrics, "login", resultOK)
	log.Info("login ok", logger.Role(u.Role()))
	return token, nil
}

func (s *loginService) burnVerify(plain string) {
	s.dummyOnce.Do(func() {
		if d, err := s.hasher.Hash("dummy-password"); err == nil {
			s.dummy = d
		}
	})
	if s.dummy != "" {
		_ = s.hasher.Verify(plain, s.dummy)
	}
}
