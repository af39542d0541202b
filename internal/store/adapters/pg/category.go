package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
	"github.com/dropDatabas3/mantenimiento/internal/domain/repository"
)

type categoryRepo struct{ db *sql.DB }

func (r *categoryRepo) FindAll(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("pg: list categories: %w", err)
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *categoryRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Category, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Category{}, repository.ErrNotFound
	}
	return c, err
}

func (r *categoryRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id)
}

func (r *categoryRepo) Save(ctx context.Context, c model.Category) (model.Category, error) {
	if c.ID() == uuid.Nil {
		c = c.WithID(uuid.New())
	}
	const q = `
		INSERT INTO categories (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`
	if _, err := r.db.ExecContext(ctx, q, c.ID(), c.Name()); err != nil {
		return model.Category{}, fmt.Errorf("pg: save category: %w", err)
	}
	return c, nil
}

func (r *categoryRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, `DELETE FROM categories WHERE id = $1`, id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner) (model.Category, error) {
	var (
		id   uuid.UUID
		name string
	)
	if err := s.Scan(&id, &name); err != nil {
		return model.Category{}, err
	}
	c, err := model.NewCategory(id, name)
	if err != nil {
		return model.Category{}, fmt.Errorf("pg: invalid category row %s: %w", id, err)
	}
	return c, nil
}
