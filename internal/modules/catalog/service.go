package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"restomenu/internal/domain"
	"restomenu/internal/repository"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type Service struct {
	categories    CategoryRepository
	subcategories SubcategoryRepository
	items         ItemRepository
}

func NewService(
	categories CategoryRepository,
	subcategories SubcategoryRepository,
	items ItemRepository,
) *Service {
	return &Service{
		categories:    categories,
		subcategories: subcategories,
		items:         items,
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidID.Withf("Invalid id %q", raw)
	}
	return id, nil
}

// mapRepoErr turns storage sentinels into the caller-facing errors.
func mapRepoErr(err error, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return notFound
	case errors.Is(err, repository.ErrDuplicateKey):
		return duplicate
	default:
		return err
	}
}

func (q *ListQuery) filters() (repository.ListFilters, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}

	f := repository.ListFilters{
		Limit:      q.Limit,
		Offset:     (q.Page - 1) * q.Limit,
		SortBy:     q.SortBy,
		Desc:       !strings.EqualFold(q.SortOrder, "asc"),
		ActiveOnly: q.ActiveOnly,
		Query:      q.Q,
	}
	if q.CategoryID != "" {
		id, err := parseID(q.CategoryID)
		if err != nil {
			return f, err
		}
		f.CategoryID = &id
	}
	if q.SubcategoryID != "" {
		id, err := parseID(q.SubcategoryID)
		if err != nil {
			return f, err
		}
		f.SubcategoryID = &id
	}
	return f, nil
}

/* ---------- CATEGORIES ---------- */

func applyCategoryTax(c *domain.Category) error {
	if c.TaxApplicable && c.TaxPercentage == nil {
		return ErrTaxPercentage
	}
	c.NormalizeTax()
	return nil
}

func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	c := &domain.Category{
		Name:          strings.TrimSpace(req.Name),
		Image:         req.Image,
		Description:   req.Description,
		TaxApplicable: req.TaxApplicable,
		TaxPercentage: req.TaxPercentage,
		IsActive:      true,
	}
	if err := applyCategoryTax(c); err != nil {
		return nil, err
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, mapRepoErr(err, ErrCategoryNotFound, ErrDuplicateCategory)
	}
	if req.IsActive != nil && !*req.IsActive {
		if err := s.categories.SetActive(ctx, c.ID, false); err != nil {
			return nil, err
		}
		c.IsActive = false
	}
	return c, nil
}

func (s *Service) GetCategory(ctx context.Context, rawID string) (*domain.Category, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, ErrCategoryNotFound, err)
	}
	return c, nil
}

func (s *Service) ListCategories(ctx context.Context, q ListQuery) (*Page[domain.Category], error) {
	f, err := q.filters()
	if err != nil {
		return nil, err
	}
	out, total, err := s.categories.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return newPage(out, total, q), nil
}

func (s *Service) UpdateCategory(ctx context.Context, rawID string, req UpdateCategoryRequest) (*domain.Category, error) {
	c, err := s.GetCategory(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Image != nil {
		c.Image = *req.Image
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.TaxApplicable != nil {
		c.TaxApplicable = *req.TaxApplicable
	}
	if req.TaxPercentage != nil {
		c.TaxPercentage = req.TaxPercentage
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := applyCategoryTax(c); err != nil {
		return nil, err
	}

	if err := s.categories.Update(ctx, c); err != nil {
		return nil, mapRepoErr(err, ErrCategoryNotFound, ErrDuplicateCategory)
	}
	return c, nil
}

// SetCategoryActive is the soft delete. Children are not touched; they
// become effectively inactive through the listing rule.
func (s *Service) SetCategoryActive(ctx context.Context, rawID string, active bool) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return mapRepoErr(s.categories.SetActive(ctx, id, active), ErrCategoryNotFound, nil)
}

/* ---------- SUBCATEGORIES ---------- */

func applySubcategoryTax(sub *domain.Subcategory) error {
	if sub.TaxMode == domain.TaxApplicable && sub.TaxPercentage == nil {
		return ErrTaxPercentage
	}
	sub.NormalizeTax()
	return nil
}

func (s *Service) requireCategory(ctx context.Context, id uuid.UUID) error {
	_, err := s.categories.GetByID(ctx, id)
	return mapRepoErr(err, ErrCategoryNotFound.Withf("Parent category not found"), err)
}

func (s *Service) CreateSubcategory(ctx context.Context, req CreateSubcategoryRequest) (*domain.Subcategory, error) {
	catID, err := parseID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCategory(ctx, catID); err != nil {
		return nil, err
	}

	mode := domain.TaxInherit
	if req.TaxApplicable.Set {
		mode = req.TaxApplicable.Mode
	}
	sub := &domain.Subcategory{
		CategoryID:    catID,
		Name:          strings.TrimSpace(req.Name),
		Image:         req.Image,
		Description:   req.Description,
		TaxMode:       mode,
		TaxPercentage: req.TaxPercentage,
		IsActive:      true,
	}
	if err := applySubcategoryTax(sub); err != nil {
		return nil, err
	}

	if err := s.subcategories.Create(ctx, sub); err != nil {
		return nil, mapRepoErr(err, ErrSubcategoryNotFound, ErrDuplicateSubcategory)
	}
	if req.IsActive != nil && !*req.IsActive {
		if err := s.subcategories.SetActive(ctx, sub.ID, false); err != nil {
			return nil, err
		}
		sub.IsActive = false
	}
	return sub, nil
}

func (s *Service) GetSubcategory(ctx context.Context, rawID string) (*domain.Subcategory, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	sub, err := s.subcategories.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, ErrSubcategoryNotFound, err)
	}
	return sub, nil
}

func (s *Service) ListSubcategories(ctx context.Context, q ListQuery) (*Page[domain.Subcategory], error) {
	f, err := q.filters()
	if err != nil {
		return nil, err
	}
	out, total, err := s.subcategories.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return newPage(out, total, q), nil
}

func (s *Service) UpdateSubcategory(ctx context.Context, rawID string, req UpdateSubcategoryRequest) (*domain.Subcategory, error) {
	sub, err := s.GetSubcategory(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		catID, err := parseID(*req.CategoryID)
		if err != nil {
			return nil, err
		}
		if err := s.requireCategory(ctx, catID); err != nil {
			return nil, err
		}
		sub.CategoryID = catID
	}
	if req.Name != nil {
		sub.Name = strings.TrimSpace(*req.Name)
	}
	if req.Image != nil {
		sub.Image = *req.Image
	}
	if req.Description != nil {
		sub.Description = *req.Description
	}
	if req.TaxApplicable.Set {
		sub.TaxMode = req.TaxApplicable.Mode
	}
	if req.TaxPercentage != nil {
		sub.TaxPercentage = req.TaxPercentage
	}
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}
	if err := applySubcategoryTax(sub); err != nil {
		return nil, err
	}

	if err := s.subcategories.Update(ctx, sub); err != nil {
		return nil, mapRepoErr(err, ErrSubcategoryNotFound, ErrDuplicateSubcategory)
	}
	return sub, nil
}

func (s *Service) SetSubcategoryActive(ctx context.Context, rawID string, active bool) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return mapRepoErr(s.subcategories.SetActive(ctx, id, active), ErrSubcategoryNotFound, nil)
}

/* ---------- ITEMS ---------- */

// resolveParent validates the exactly-one-parent rule and that the parent exists.
func (s *Service) resolveParent(ctx context.Context, rawCat, rawSub *string) (cat, sub *uuid.UUID, err error) {
	hasCat := rawCat != nil && *rawCat != ""
	hasSub := rawSub != nil && *rawSub != ""
	if hasCat == hasSub {
		return nil, nil, ErrParent
	}

	if hasCat {
		id, err := parseID(*rawCat)
		if err != nil {
			return nil, nil, err
		}
		if err := s.requireCategory(ctx, id); err != nil {
			return nil, nil, err
		}
		return &id, nil, nil
	}

	id, err := parseID(*rawSub)
	if err != nil {
		return nil, nil, err
	}
	if _, err := s.subcategories.GetByID(ctx, id); err != nil {
		return nil, nil, mapRepoErr(err, ErrSubcategoryNotFound.Withf("Parent subcategory not found"), err)
	}
	return nil, &id, nil
}

func validateAvailability(a *domain.Availability) error {
	if a == nil {
		return nil
	}
	for _, d := range a.Days {
		if !d.Valid() {
			return ErrAvailability.Withf("Unknown day %q, expected SUN..SAT", d)
		}
	}
	for _, sl := range a.Slots {
		// valid HH:MM strings order lexically
		if sl.End <= sl.Start {
			return ErrAvailability.Withf("Slot %s-%s must end after it starts", sl.Start, sl.End)
		}
	}
	return nil
}

func (s *Service) CreateItem(ctx context.Context, req CreateItemRequest) (*ItemView, error) {
	catID, subID, err := s.resolveParent(ctx, req.CategoryID, req.SubcategoryID)
	if err != nil {
		return nil, err
	}
	pt, ok := domain.ParsePricingType(req.PricingType)
	if !ok {
		return nil, ErrPricingType
	}
	if err := validateAvailability(req.Availability); err != nil {
		return nil, err
	}

	it := &domain.Item{
		CategoryID:    catID,
		SubcategoryID: subID,
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Image:         req.Image,
		IsActive:      true,
		PricingType:   pt,
		PricingConfig: req.PricingConfig,
		IsBookable:    req.IsBookable,
		Availability:  req.Availability,
		Addons:        req.Addons,
	}
	if it.Addons == nil {
		it.Addons = []domain.Addon{}
	}

	if err := s.items.Create(ctx, it); err != nil {
		return nil, mapRepoErr(err, ErrItemNotFound, ErrDuplicateItem)
	}
	if req.IsActive != nil && !*req.IsActive {
		if err := s.items.SetActive(ctx, it.ID, false); err != nil {
			return nil, err
		}
		it.IsActive = false
	}
	return s.view(ctx, it)
}

func (s *Service) getItem(ctx context.Context, rawID string) (*domain.Item, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, ErrItemNotFound, err)
	}
	return it, nil
}

func (s *Service) GetItem(ctx context.Context, rawID string) (*ItemView, error) {
	it, err := s.getItem(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, it)
}

func (s *Service) UpdateItem(ctx context.Context, rawID string, req UpdateItemRequest) (*ItemView, error) {
	it, err := s.getItem(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil || req.SubcategoryID != nil {
		catID, subID, err := s.resolveParent(ctx, req.CategoryID, req.SubcategoryID)
		if err != nil {
			return nil, err
		}
		it.CategoryID, it.SubcategoryID = catID, subID
	}
	if req.Name != nil {
		it.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	if req.Image != nil {
		it.Image = *req.Image
	}
	if req.IsActive != nil {
		it.IsActive = *req.IsActive
	}
	if req.PricingType != nil {
		pt, ok := domain.ParsePricingType(*req.PricingType)
		if !ok {
			return nil, ErrPricingType
		}
		it.PricingType = pt
	}
	if req.PricingConfig != nil {
		it.PricingConfig = req.PricingConfig
	}
	if req.IsBookable != nil {
		it.IsBookable = *req.IsBookable
	}
	if req.Availability != nil {
		if err := validateAvailability(req.Availability); err != nil {
			return nil, err
		}
		it.Availability = req.Availability
	}
	if req.Addons != nil {
		it.Addons = req.Addons
	}

	if err := s.items.Update(ctx, it); err != nil {
		return nil, mapRepoErr(err, ErrItemNotFound, ErrDuplicateItem)
	}
	return s.view(ctx, it)
}

func (s *Service) SetItemActive(ctx context.Context, rawID string, active bool) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	return mapRepoErr(s.items.SetActive(ctx, id, active), ErrItemNotFound, nil)
}

func (s *Service) ListItems(ctx context.Context, q ListQuery) (*Page[ItemView], error) {
	f, err := q.filters()
	if err != nil {
		return nil, err
	}
	items, total, err := s.items.List(ctx, f)
	if err != nil {
		return nil, err
	}

	subs, cats, err := s.ancestors(ctx, items)
	if err != nil {
		return nil, err
	}

	views := make([]ItemView, 0, len(items))
	for i := range items {
		sub, cat := pickAncestors(&items[i], subs, cats)
		views = append(views, newItemView(&items[i], sub, cat))
	}
	return newPage(views, total, q), nil
}

func (s *Service) view(ctx context.Context, it *domain.Item) (*ItemView, error) {
	subs, cats, err := s.ancestors(ctx, []domain.Item{*it})
	if err != nil {
		return nil, err
	}
	sub, cat := pickAncestors(it, subs, cats)
	v := newItemView(it, sub, cat)
	return &v, nil
}

// ancestors batch-loads the subcategories and categories of items.
// References that no longer resolve are simply absent from the maps.
func (s *Service) ancestors(ctx context.Context, items []domain.Item) (map[uuid.UUID]*domain.Subcategory, map[uuid.UUID]*domain.Category, error) {
	subIDs := make([]uuid.UUID, 0)
	for _, it := range items {
		if it.SubcategoryID != nil {
			subIDs = append(subIDs, *it.SubcategoryID)
		}
	}
	subList, err := s.subcategories.GetByIDs(ctx, subIDs)
	if err != nil {
		return nil, nil, err
	}
	subs := make(map[uuid.UUID]*domain.Subcategory, len(subList))
	for i := range subList {
		subs[subList[i].ID] = &subList[i]
	}

	catIDs := make([]uuid.UUID, 0)
	for _, it := range items {
		switch {
		case it.CategoryID != nil:
			catIDs = append(catIDs, *it.CategoryID)
		case it.SubcategoryID != nil:
			if sub, ok := subs[*it.SubcategoryID]; ok {
				catIDs = append(catIDs, sub.CategoryID)
			}
		}
	}
	catList, err := s.categories.GetByIDs(ctx, catIDs)
	if err != nil {
		return nil, nil, err
	}
	cats := make(map[uuid.UUID]*domain.Category, len(catList))
	for i := range catList {
		cats[catList[i].ID] = &catList[i]
	}
	return subs, cats, nil
}

func pickAncestors(it *domain.Item, subs map[uuid.UUID]*domain.Subcategory, cats map[uuid.UUID]*domain.Category) (*domain.Subcategory, *domain.Category) {
	if it.SubcategoryID != nil {
		sub := subs[*it.SubcategoryID]
		if sub == nil {
			return nil, nil
		}
		return sub, cats[sub.CategoryID]
	}
	if it.CategoryID != nil {
		return nil, cats[*it.CategoryID]
	}
	return nil, nil
}

func newItemView(it *domain.Item, sub *domain.Subcategory, cat *domain.Category) ItemView {
	return ItemView{
		Item:              *it,
		EffectiveIsActive: domain.EffectiveActive(it, sub, cat),
		EffectiveTax:      domain.ResolveTax(it, sub, cat),
	}
}
