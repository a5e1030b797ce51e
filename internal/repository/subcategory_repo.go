package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restomenu/internal/domain"
)

type SubcategoryRepository struct {
	db *gorm.DB
}

func NewSubcategoryRepository(db *gorm.DB) *SubcategoryRepository {
	return &SubcategoryRepository{db: db}
}

func (r *SubcategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subcategory, error) {
	var s domain.Subcategory
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *SubcategoryRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Subcategory, error) {
	var out []domain.Subcategory
	if len(ids) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error
	return out, translate(err)
}

func (r *SubcategoryRepository) List(ctx context.Context, f ListFilters) ([]domain.Subcategory, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Subcategory{}).
		Joins("LEFT JOIN categories ON categories.id = subcategories.category_id")

	if f.CategoryID != nil {
		q = q.Where("subcategories.category_id = ?", *f.CategoryID)
	}
	if f.ActiveOnly {
		q = q.Where("subcategories.is_active = ? AND categories.is_active = ?", true, true)
	}
	if f.Query != "" {
		q = q.Where("LOWER(subcategories.name) LIKE ?", likePattern(f.Query))
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Subcategory
	err := q.Select("subcategories.*").
		Order(orderClause("subcategories", f)).
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&out).Error
	return out, total, translate(err)
}

func (r *SubcategoryRepository) Create(ctx context.Context, s *domain.Subcategory) error {
	return translate(r.db.WithContext(ctx).Create(s).Error)
}

func (r *SubcategoryRepository) Update(ctx context.Context, s *domain.Subcategory) error {
	return translate(r.db.WithContext(ctx).Save(s).Error)
}

func (r *SubcategoryRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tx := r.db.WithContext(ctx).Model(&domain.Subcategory{}).Where("id = ?", id).Update("is_active", active)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
