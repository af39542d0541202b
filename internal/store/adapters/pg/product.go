package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
	"github.com/dropDatabas3/mantenimiento/internal/domain/repository"
)

type productRepo struct{ db *sql.DB }

const productColumns = `id, name, description, price, category_id`

func (r *productRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("pg: list products: %w", err)
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, repository.ErrNotFound
	}
	return p, err
}

func (r *productRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id)
}

func (r *productRepo) Save(ctx context.Context, p model.Product) (model.Product, error) {
	if p.ID() == uuid.Nil {
		p = p.WithID(uuid.New())
	}
	var desc sql.NullString
	if d := p.Description(); d != nil {
		desc = sql.NullString{String: *d, Valid: true}
	}
	const q = `
		INSERT INTO products (id, name, description, price, category_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			category_id = EXCLUDED.category_id`
	if _, err := r.db.ExecContext(ctx, q, p.ID(), p.Name(), desc, p.Price(), p.CategoryID()); err != nil {
		return model.Product{}, fmt.Errorf("pg: save product: %w", err)
	}
	return p, nil
}

func (r *productRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, `DELETE FROM products WHERE id = $1`, id)
}

func scanProduct(s scanner) (model.Product, error) {
	var (
		id         uuid.UUID
		name       string
		desc       sql.NullString
		price      decimal.Decimal
		categoryID uuid.UUID
	)
	if err := s.Scan(&id, &name, &desc, &price, &categoryID); err != nil {
		return model.Product{}, err
	}
	f := model.ProductFields{Name: name, Price: &price, CategoryID: categoryID}
	if desc.Valid {
		f.Description = &desc.String
	}
	p, err := model.NewProduct(id, f)
	if err != nil {
		return model.Product{}, fmt.Errorf("pg: invalid product row %s: %w", id, err)
	}
	return p, nil
}
