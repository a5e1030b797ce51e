package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restomenu/internal/domain"
	"restomenu/internal/repository"
)

// Mock repositories
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

type MockSubcategoryRepository struct {
	mock.Mock
}

func (m *MockSubcategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subcategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subcategory), args.Error(1)
}

func pct(v float64) *float64 { return &v }

type fixture struct {
	items *MockItemRepository
	cats  *MockCategoryRepository
	subs  *MockSubcategoryRepository
	svc   *Service
}

func newFixture() *fixture {
	f := &fixture{
		items: new(MockItemRepository),
		cats:  new(MockCategoryRepository),
		subs:  new(MockSubcategoryRepository),
	}
	f.svc = NewService(f.items, NewTaxResolver(f.cats, f.subs), time.UTC)
	return f
}

func TestService_Quote_StaticWithAddonAndTax(t *testing.T) {
	f := newFixture()
	cat := &domain.Category{ID: uuid.New(), Name: "Mains", TaxApplicable: true, TaxPercentage: pct(10), IsActive: true}
	item := &domain.Item{
		ID:            uuid.New(),
		Name:          "Burger",
		CategoryID:    &cat.ID,
		PricingType:   domain.PricingStatic,
		PricingConfig: map[string]any{"price": 50},
		Addons:        []domain.Addon{{"id": "cheese", "price": 5}, {"id": "egg", "price": 2}},
	}
	f.items.On("GetByID", mock.Anything, item.ID).Return(item, nil)
	f.cats.On("GetByID", mock.Anything, cat.ID).Return(cat, nil)

	got, err := f.svc.Quote(context.Background(), item.ID.String(), Query{AddonIDs: []string{"cheese"}})

	require.NoError(t, err)
	assert.Equal(t, 50.0, got.BasePrice)
	assert.Equal(t, 50.0, got.ResolvedPriceBeforeAddons)
	assert.Equal(t, 5.0, got.AddonsTotal)
	assert.Len(t, got.Addons, 1)
	assert.Equal(t, 55.0, got.SubTotal)
	assert.Equal(t, TaxLine{Applicable: true, Percentage: 10, Amount: 5.5, Source: domain.TaxSourceCategory}, got.Tax)
	assert.Equal(t, 60.5, got.GrandTotal)
	assert.Equal(t, got.GrandTotal, got.FinalPayable)
	assert.Nil(t, got.Discount)
}

func TestService_Quote_DiscountSupersedesBase(t *testing.T) {
	f := newFixture()
	cat := &domain.Category{ID: uuid.New(), TaxApplicable: false}
	item := &domain.Item{
		ID:            uuid.New(),
		CategoryID:    &cat.ID,
		PricingType:   domain.PricingDiscounted,
		PricingConfig: map[string]any{"base_price": 100, "discount_type": "PERCENT", "discount_value": 30},
	}
	f.items.On("GetByID", mock.Anything, item.ID).Return(item, nil)
	f.cats.On("GetByID", mock.Anything, cat.ID).Return(cat, nil)

	got, err := f.svc.Quote(context.Background(), item.ID.String(), Query{})

	require.NoError(t, err)
	assert.Equal(t, 100.0, got.BasePrice)
	assert.Equal(t, 70.0, got.ResolvedPriceBeforeAddons)
	require.NotNil(t, got.Discount)
	assert.Equal(t, DiscountLine{Type: DiscountPercent, Value: 30, Amount: 30}, *got.Discount)
	assert.Equal(t, 70.0, got.GrandTotal)
	assert.False(t, got.Tax.Applicable)
}

func TestService_Quote_TaxInheritance(t *testing.T) {
	cat := &domain.Category{ID: uuid.New(), TaxApplicable: true, TaxPercentage: pct(5)}

	tests := []struct {
		name string
		sub  *domain.Subcategory
		want TaxLine
	}{
		{
			name: "inherit",
			sub:  &domain.Subcategory{ID: uuid.New(), CategoryID: cat.ID, TaxMode: domain.TaxInherit},
			want: TaxLine{Applicable: true, Percentage: 5, Amount: 1, Source: domain.TaxSourceCategoryInherited},
		},
		{
			name: "override applicable",
			sub:  &domain.Subcategory{ID: uuid.New(), CategoryID: cat.ID, TaxMode: domain.TaxApplicable, TaxPercentage: pct(18)},
			want: TaxLine{Applicable: true, Percentage: 18, Amount: 3.6, Source: domain.TaxSourceSubcategory},
		},
		{
			name: "override not applicable",
			sub:  &domain.Subcategory{ID: uuid.New(), CategoryID: cat.ID, TaxMode: domain.TaxNotApplicable},
			want: TaxLine{Source: domain.TaxSourceSubcategory},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			item := &domain.Item{
				ID:            uuid.New(),
				SubcategoryID: &tt.sub.ID,
				PricingType:   domain.PricingStatic,
				PricingConfig: map[string]any{"price": 20},
			}
			f.items.On("GetByID", mock.Anything, item.ID).Return(item, nil)
			f.subs.On("GetByID", mock.Anything, tt.sub.ID).Return(tt.sub, nil)
			f.cats.On("GetByID", mock.Anything, cat.ID).Return(cat, nil)

			got, err := f.svc.Quote(context.Background(), item.ID.String(), Query{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Tax)
		})
	}
}

func TestService_Quote_DanglingParentFailsOpen(t *testing.T) {
	f := newFixture()
	subID := uuid.New()
	item := &domain.Item{
		ID:            uuid.New(),
		SubcategoryID: &subID,
		PricingType:   domain.PricingStatic,
		PricingConfig: map[string]any{"price": 20},
	}
	f.items.On("GetByID", mock.Anything, item.ID).Return(item, nil)
	f.subs.On("GetByID", mock.Anything, subID).Return(nil, repository.ErrNotFound)

	got, err := f.svc.Quote(context.Background(), item.ID.String(), Query{})

	require.NoError(t, err)
	assert.Equal(t, TaxLine{}, got.Tax)
	assert.Equal(t, 20.0, got.GrandTotal)
}

func TestService_Quote_Errors(t *testing.T) {
	f := newFixture()
	missing := uuid.New()
	f.items.On("GetByID", mock.Anything, missing).Return(nil, repository.ErrNotFound)

	_, err := f.svc.Quote(context.Background(), "nope", Query{})
	assert.ErrorIs(t, err, ErrInvalidItemID)

	_, err = f.svc.Quote(context.Background(), missing.String(), Query{})
	assert.ErrorIs(t, err, ErrItemNotFound)

	closed := &domain.Item{ID: uuid.New(), PricingType: domain.PricingDynamic, PricingConfig: dynamicConfig()}
	f.items.On("GetByID", mock.Anything, closed.ID).Return(closed, nil)
	_, err = f.svc.Quote(context.Background(), closed.ID.String(), Query{Time: "20:00"})
	assert.ErrorIs(t, err, ErrNotAvailableAtTime)

	// lookup failures other than not-found are not swallowed
	broken := uuid.New()
	boom := errors.New("connection reset")
	taxed := &domain.Item{ID: uuid.New(), CategoryID: &broken, PricingType: domain.PricingComplimentary}
	f.items.On("GetByID", mock.Anything, taxed.ID).Return(taxed, nil)
	f.cats.On("GetByID", mock.Anything, broken).Return(nil, boom)
	_, err = f.svc.Quote(context.Background(), taxed.ID.String(), Query{})
	assert.ErrorIs(t, err, boom)
}

func TestService_Quote_AtUsesConfiguredZone(t *testing.T) {
	f := newFixture()
	zone := time.FixedZone("UTC+3", 3*60*60)
	f.svc = NewService(f.items, NewTaxResolver(f.cats, f.subs), zone)

	item := &domain.Item{ID: uuid.New(), PricingType: domain.PricingDynamic, PricingConfig: dynamicConfig()}
	f.items.On("GetByID", mock.Anything, item.ID).Return(item, nil)

	// 08:30 UTC is 11:30 local
	at := time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)
	got, err := f.svc.Quote(context.Background(), item.ID.String(), Query{At: &at})

	require.NoError(t, err)
	assert.Equal(t, 5.0, got.BasePrice)
}
