package pricing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"restomenu/internal/domain"
	"restomenu/internal/repository"
)

// TaxResolver loads an item's ancestry and applies domain.ResolveTax.
type TaxResolver struct {
	categories    CategoryRepository
	subcategories SubcategoryRepository
}

func NewTaxResolver(categories CategoryRepository, subcategories SubcategoryRepository) *TaxResolver {
	return &TaxResolver{categories: categories, subcategories: subcategories}
}

// Resolve returns the item's effective tax. Dangling parent references
// resolve to zero tax; lookup failures of any other kind are returned.
func (r *TaxResolver) Resolve(ctx context.Context, item *domain.Item) (domain.EffectiveTax, error) {
	var (
		sub *domain.Subcategory
		cat *domain.Category
		err error
	)

	if item.SubcategoryID != nil {
		if sub, err = r.subcategory(ctx, *item.SubcategoryID); err != nil {
			return domain.EffectiveTax{}, err
		}
		if sub != nil && sub.TaxMode != domain.TaxApplicable && sub.TaxMode != domain.TaxNotApplicable {
			if cat, err = r.category(ctx, sub.CategoryID); err != nil {
				return domain.EffectiveTax{}, err
			}
		}
	} else if item.CategoryID != nil {
		if cat, err = r.category(ctx, *item.CategoryID); err != nil {
			return domain.EffectiveTax{}, err
		}
	}

	return domain.ResolveTax(item, sub, cat), nil
}

func (r *TaxResolver) category(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	c, err := r.categories.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn().Str("category_id", id.String()).Msg("dangling category reference, charging no tax")
		return nil, nil
	}
	return c, err
}

func (r *TaxResolver) subcategory(ctx context.Context, id uuid.UUID) (*domain.Subcategory, error) {
	s, err := r.subcategories.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn().Str("subcategory_id", id.String()).Msg("dangling subcategory reference, charging no tax")
		return nil, nil
	}
	return s, err
}
