package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
	"github.com/dropDatabas3/mantenimiento/internal/domain/repository"
	"github.com/dropDatabas3/mantenimiento/internal/observability/logger"
)

// ProductService define las operaciones sobre productos. La categoría
// referenciada no se verifica.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, f model.ProductFields) (model.Product, error)
	Update(ctx context.Context, id uuid.UUID, f model.ProductFields) (model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Product, bool, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService crea el service de productos.
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

const componentProduct = "catalog.product"

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	out, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

func (s *productService) Create(ctx context.Context, f model.ProductFields) (model.Product, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentProduct),
		logger.Op("Create"),
	)

	p, err := model.NewProduct(uuid.Nil, f)
	if err != nil {
		return model.Product{}, err
	}
	saved, err := s.repo.Save(ctx, p)
	if err != nil {
		return model.Product{}, fmt.Errorf("save product: %w", err)
	}
	log.Info("product created",
		logger.ProductID(saved.ID().String()),
		logger.CategoryID(saved.CategoryID().String()),
	)
	return saved, nil
}

// Update reemplaza todos los campos: una descripción ausente en f queda vacía.
func (s *productService) Update(ctx context.Context, id uuid.UUID, f model.ProductFields) (model.Product, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentProduct),
		logger.Op("Update"),
		logger.ProductID(id.String()),
	)

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return model.Product{}, productNotFound(id)
		}
		return model.Product{}, fmt.Errorf("find product: %w", err)
	}

	updated, err := existing.WithData(f)
	if err != nil {
		return model.Product{}, err
	}
	saved, err := s.repo.Save(ctx, updated)
	if err != nil {
		return model.Product{}, fmt.Errorf("save product: %w", err)
	}
	log.Info("product updated")
	return saved, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (model.Product, bool, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return model.Product{}, false, nil
		}
		return model.Product{}, false, fmt.Errorf("find product: %w", err)
	}
	return p, true, nil
}

func (s *productService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentProduct),
		logger.Op("DeleteByID"),
		logger.ProductID(id.String()),
	)

	ok, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("exists product: %w", err)
	}
	if !ok {
		return productNotFound(id)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return productNotFound(id)
		}
		return fmt.Errorf("delete product: %w", err)
	}
	log.Info("product deleted")
	return nil
}

func productNotFound(id uuid.UUID) error {
	return &model.NotFoundError{Resource: model.ResourceProduct, ID: id.String()}
}
