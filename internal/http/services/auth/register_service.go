package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
	"github.com/dropDatabas3/mantenimiento/internal/domain/repository"
	"github.com/dropDatabas3/mantenimiento/internal/observability/logger"
	"github.com/dropDatabas3/mantenimiento/internal/security/password"
)

// RegisterService da de alta usuarios.
type RegisterService interface {
	// Register valida los datos, hashea la contraseña y persiste. Un rol vacío
	// toma ROLE_USER. Si el username existe retorna repository.ErrConflict.
	Register(ctx context.Context, username, plain, role string) (model.User, error)
}

type registerService struct {
	users   repository.UserRepository
	hasher  password.Hasher
	metrics AuthRecorder
}

// NewRegisterService crea el service de registro.
func NewRegisterService(users repository.UserRepository, h password.Hasher, m AuthRecorder) RegisterService {
	return &registerService{users: users, hasher: h, metrics: m}
}

func (s *registerService) Register(ctx context.Context, username, plain, role string) (model.User, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.register"),
		logger.Op("Register"),
	)

	u, err := model.NewUser(uuid.Nil, username, plain, role)
	if err != nil {
		record(s.metrics, "register", resultRejected)
		return model.User{}, err
	}
	log = log.With(logger.Username(u.Username()))

	// Pre-chequeo para no gastar un hash en un username tomado. Save vuelve a
	// verificarlo de forma atómica.
	if _, err := s.users.FindByUsername(ctx, u.Username()); err == nil {
		log.Debug("username taken")
		record(s.metrics, "register", resultRejected)
		return model.User{}, fmt.Errorf("register %q: %w", u.Username(), repository.ErrConflict)
	} else if !repository.IsNotFound(err) {
		record(s.metrics, "register", resultError)
		return model.User{}, fmt.Errorf("find user: %w", err)
	}

	digest, err := s.hasher.Hash(u.Password())
	if err != nil {
		record(s.metrics, "register", resultError)
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}
	hashed, err := model.RestoreUser(u.ID(), u.Username(), digest, u.Role())
	if err != nil {
		record(s.metrics, "register", resultError)
		return model.User{}, err
	}

	saved, err := s.users.Save(ctx, hashed)
	if err != nil {
		if repository.IsConflict(err) {
			record(s.metrics, "register", resultRejected)
			return model.User{}, err
		}
		record(s.metrics, "register", resultError)
		return model.User{}, fmt.Errorf("save user: %w", err)
	}

	record(s.metrics, "register", resultOK)
	log.Info("user registered", logger.UserID(saved.ID().String()), logger.Role(saved.Role()))
	return saved, nil
}
