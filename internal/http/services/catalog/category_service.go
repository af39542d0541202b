package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
	"github.com/dropDatabas3/mantenimiento/internal/domain/repository"
	"github.com/dropDatabas3/mantenimiento/internal/observability/logger"
)

// CategoryService define las operaciones sobre categorías.
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, name string) (model.Category, error)
	// Update reemplaza el nombre conservando el id. NotFoundError si no existe.
	Update(ctx context.Context, id uuid.UUID, name string) (model.Category, error)
	// GetByID retorna found=false (sin error) si no existe.
	GetByID(ctx context.Context, id uuid.UUID) (model.Category, bool, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService crea el service de categorías.
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

const componentCategory = "catalog.category"

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	out, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

func (s *categoryService) Create(ctx context.Context, name string) (model.Category, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentCategory),
		logger.Op("Create"),
	)

	c, err := model.NewCategory(uuid.Nil, name)
	if err != nil {
		return model.Category{}, err
	}
	saved, err := s.repo.Save(ctx, c)
	if err != nil {
		return model.Category{}, fmt.Errorf("save category: %w", err)
	}
	log.Info("category created", logger.CategoryID(saved.ID().String()))
	return saved, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, name string) (model.Category, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentCategory),
		logger.Op("Update"),
		logger.CategoryID(id.String()),
	)

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return model.Category{}, categoryNotFound(id)
		}
		return model.Category{}, fmt.Errorf("find category: %w", err)
	}

	updated, err := existing.WithName(name)
	if err != nil {
		return model.Category{}, err
	}
	saved, err := s.repo.Save(ctx, updated)
	if err != nil {
		return model.Category{}, fmt.Errorf("save category: %w", err)
	}
	log.Info("category updated")
	return saved, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (model.Category, bool, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return model.Category{}, false, nil
		}
		return model.Category{}, false, fmt.Errorf("find category: %w", err)
	}
	return c, true, nil
}

func (s *categoryService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentCategory),
		logger.Op("DeleteByID"),
		logger.CategoryID(id.String()),
	)

	ok, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("exists category: %w", err)
	}
	if !ok {
		return categoryNotFound(id)
	}
	// Entre ExistsByID y DeleteByID otra request pudo borrarla.
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return categoryNotFound(id)
		}
		return fmt.Errorf("delete category: %w", err)
	}
	log.Info("category deleted")
	return nil
}

func categoryNotFound(id uuid.UUID) error {
	return &model.NotFoundError{Resource: model.ResourceCategory, ID: id.String()}
}
