package pricing

import (
	"context"

	"github.com/google/uuid"

	"restomenu/internal/domain"
)

type ItemRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
}

type CategoryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

type SubcategoryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subcategory, error)
}
