package catalog

import (
	"context"

	"github.com/google/uuid"

	"restomenu/internal/domain"
	"restomenu/internal/repository"
)

type CategoryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error)
	List(ctx context.Context, f repository.ListFilters) ([]domain.Category, int64, error)
	Create(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, c *domain.Category) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type SubcategoryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subcategory, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Subcategory, error)
	List(ctx context.Context, f repository.ListFilters) ([]domain.Subcategory, int64, error)
	Create(ctx context.Context, s *domain.Subcategory) error
	Update(ctx context.Context, s *domain.Subcategory) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type ItemRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, f repository.ListFilters) ([]domain.Item, int64, error)
	Create(ctx context.Context, it *domain.Item) error
	Update(ctx context.Context, it *domain.Item) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
