package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restomenu/internal/domain"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	var it domain.Item
	if err := r.db.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &it, nil
}

// List filters on the effective active state, which depends on the item's
// ancestors: the category is the item's own or its subcategory's.
func (r *ItemRepository) List(ctx context.Context, f ListFilters) ([]domain.Item, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Item{}).
		Joins("LEFT JOIN subcategories ON subcategories.id = items.subcategory_id").
		Joins("LEFT JOIN categories ON categories.id = COALESCE(items.category_id, subcategories.category_id)")

	if f.CategoryID != nil {
		q = q.Where("COALESCE(items.category_id, subcategories.category_id) = ?", *f.CategoryID)
	}
	if f.SubcategoryID != nil {
		q = q.Where("items.subcategory_id = ?", *f.SubcategoryID)
	}
	if f.ActiveOnly {
		q = q.Where(
			"items.is_active = ? AND categories.is_active = ? AND (items.subcategory_id IS NULL OR subcategories.is_active = ?)",
			true, true, true,
		)
	}
	if f.Query != "" {
		p := likePattern(f.Query)
		q = q.Where("(LOWER(items.name) LIKE ? OR LOWER(items.description) LIKE ?)", p, p)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Item
	err := q.Select("items.*").
		Order(orderClause("items", f)).
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&out).Error
	return out, total, translate(err)
}

func (r *ItemRepository) Create(ctx context.Context, it *domain.Item) error {
	return translate(r.db.WithContext(ctx).Create(it).Error)
}

func (r *ItemRepository) Update(ctx context.Context, it *domain.Item) error {
	return translate(r.db.WithContext(ctx).Save(it).Error)
}

func (r *ItemRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tx := r.db.WithContext(ctx).Model(&domain.Item{}).Where("id = ?", id).Update("is_active", active)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
