package pricing

import (
	"time"

	"restomenu/internal/domain"
)

// Query is the parsed GET /items/:id/price request.
type Query struct {
	DurationHours *float64
	Time          string
	At            *time.Time
	AddonIDs      []string
}

type DiscountLine struct {
	Type   DiscountType `json:"type"`
	Value  float64      `json:"value"`
	Amount float64      `json:"amount"`
}

type TaxLine struct {
	Applicable bool             `json:"applicable"`
	Percentage float64          `json:"percentage"`
	Amount     float64          `json:"amount"`
	Source     domain.TaxSource `json:"source,omitempty"`
}

// Breakdown exposes every intermediate figure of a price computation.
type Breakdown struct {
	ItemID                    string             `json:"item_id"`
	ItemName                  string             `json:"item_name"`
	PricingType               domain.PricingType `json:"pricing_type"`
	AppliedPricingRule        map[string]any     `json:"applied_pricing_rule"`
	BasePrice                 float64            `json:"base_price"`
	Discount                  *DiscountLine      `json:"discount"`
	ResolvedPriceBeforeAddons float64            `json:"resolved_price_before_addons"`
	Addons                    []domain.Addon     `json:"addons"`
	AddonsTotal               float64            `json:"addons_total"`
	SubTotal                  float64            `json:"sub_total"`
	Tax                       TaxLine            `json:"tax"`
	GrandTotal                float64            `json:"grand_total"`
	FinalPayable              float64            `json:"final_payable"`
}
