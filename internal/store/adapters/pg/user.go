package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
	"github.com/dropDatabas3/mantenimiento/internal/domain/repository"
)

type userRepo struct{ db *sql.DB }

const userColumns = `id, username, password, role`

func (r *userRepo) FindAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("pg: list users: %w", err)
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, strings.TrimSpace(username))
}

func (r *userRepo) findOne(ctx context.Context, q string, arg any) (model.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, q, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrNotFound
	}
	return u, err
}

func (r *userRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id)
}

// Save traduce la violación del índice único de username a ErrConflict.
func (r *userRepo) Save(ctx context.Context, u model.User) (model.User, error) {
	if u.ID() == uuid.Nil {
		u = u.WithID(uuid.New())
	}
	const q = `
		INSERT INTO users (id, username, password, role) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			password = EXCLUDED.password,
			role = EXCLUDED.role`
	if _, err := r.db.ExecContext(ctx, q, u.ID(), u.Username(), u.Password(), u.Role()); err != nil {
		if isUniqueViolation(err) {
			return model.User{}, fmt.Errorf("pg: save user %q: %w", u.Username(), repository.ErrConflict)
		}
		return model.User{}, fmt.Errorf("pg: save user: %w", err)
	}
	return u, nil
}

func (r *userRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, `DELETE FROM users WHERE id = $1`, id)
}

func scanUser(s scanner) (model.User, error) {
	var (
		id                   uuid.UUID
		username, hash, role string
	)
	if err := s.Scan(&id, &username, &hash, &role); err != nil {
		return model.User{}, err
	}
	u, err := model.RestoreUser(id, username, hash, role)
	if err != nil {
		return model.User{}, fmt.Errorf("pg: invalid user row %s: %w", id, err)
	}
	return u, nil
}
