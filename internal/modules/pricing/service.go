package pricing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restomenu/internal/repository"
)

type Service struct {
	items ItemRepository
	tax   *TaxResolver
	loc   *time.Location
}

// NewService builds the price assembler. Timestamps passed as "at" are read
// as wall-clock time in loc.
func NewService(items ItemRepository, tax *TaxResolver, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{items: items, tax: tax, loc: loc}
}

// Quote prices one item: strategy, then add-ons, then tax on the sum.
func (s *Service) Quote(ctx context.Context, itemID string, q Query) (*Breakdown, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, ErrInvalidItemID
	}
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	pc := Context{DurationHours: q.DurationHours, TimeHHMM: q.Time}
	if q.At != nil {
		at := q.At.In(s.loc)
		pc.At = &at
	}

	res, err := ComputeBase(item, pc)
	if err != nil {
		return nil, err
	}
	base := res.Effective()

	addonsTotal, applied := SumAddons(item.Addons, q.AddonIDs)
	subTotal := base.Add(addonsTotal)

	tax, err := s.tax.Resolve(ctx, item)
	if err != nil {
		return nil, err
	}
	taxAmount := decimal.Zero
	if tax.Applicable {
		taxAmount = subTotal.Mul(decimal.NewFromFloat(tax.Percentage)).Div(hundred)
	}
	grandTotal := subTotal.Add(taxAmount)

	out := &Breakdown{
		ItemID:                    item.ID.String(),
		ItemName:                  item.Name,
		PricingType:               item.PricingType,
		AppliedPricingRule:        res.AppliedRule,
		BasePrice:                 res.BasePrice.InexactFloat64(),
		ResolvedPriceBeforeAddons: base.InexactFloat64(),
		Addons:                    applied,
		AddonsTotal:               addonsTotal.InexactFloat64(),
		SubTotal:                  subTotal.InexactFloat64(),
		Tax: TaxLine{
			Applicable: tax.Applicable,
			Percentage: tax.Percentage,
			Amount:     taxAmount.InexactFloat64(),
			Source:     tax.Source,
		},
		GrandTotal:   grandTotal.InexactFloat64(),
		FinalPayable: grandTotal.InexactFloat64(),
	}
	if res.Discount != nil {
		out.Discount = &DiscountLine{
			Type:   res.Discount.Type,
			Value:  res.Discount.Value.InexactFloat64(),
			Amount: res.Discount.Amount.InexactFloat64(),
		}
	}
	return out, nil
}
