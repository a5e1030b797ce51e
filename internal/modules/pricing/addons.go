package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"restomenu/internal/domain"
)

// SumAddons selects the item's add-ons whose id is in requested and totals
// their prices. Ids compare as strings; a missing or non-numeric price
// counts as zero. Mandatory add-ons are not enforced.
func SumAddons(addons []domain.Addon, requested []string) (decimal.Decimal, []domain.Addon) {
	total := decimal.Zero
	applied := []domain.Addon{}
	if len(requested) == 0 {
		return total, applied
	}

	want := make(map[string]struct{}, len(requested))
	for _, id := range requested {
		want[id] = struct{}{}
	}

	for _, a := range addons {
		if _, ok := want[cast.ToString(a["id"])]; !ok {
			continue
		}
		price, err := cast.ToFloat64E(a["price"])
		if err != nil {
			price = 0
		}
		total = total.Add(decimal.NewFromFloat(price))
		applied = append(applied, a)
	}
	return total, applied
}
