package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restomenu/internal/domain"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CategoryRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error) {
	var out []domain.Category
	if len(ids) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error
	return out, translate(err)
}

// List returns categories matching f and the unpaginated total.
func (r *CategoryRepository) List(ctx context.Context, f ListFilters) ([]domain.Category, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Category{})
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if f.Query != "" {
		q = q.Where("LOWER(name) LIKE ?", likePattern(f.Query))
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Category
	err := q.Order(orderClause("categories", f)).
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&out).Error
	return out, total, translate(err)
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	return translate(r.db.WithContext(ctx).Save(c).Error)
}

// SetActive is the soft delete toggle.
func (r *CategoryRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tx := r.db.WithContext(ctx).Model(&domain.Category{}).Where("id = ?", id).Update("is_active", active)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
