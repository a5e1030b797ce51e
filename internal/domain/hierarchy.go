package domain

type TaxSource string

const (
	TaxSourceCategory          TaxSource = "CATEGORY"
	TaxSourceSubcategory       TaxSource = "SUBCATEGORY"
	TaxSourceCategoryInherited TaxSource = "CATEGORY_INHERITED"
)

// EffectiveTax is the tax actually charged on an item.
type EffectiveTax struct {
	Applicable bool      `json:"applicable"`
	Percentage float64   `json:"percentage"`
	Source     TaxSource `json:"source,omitempty"`
}

func categoryTax(cat *Category, source TaxSource) EffectiveTax {
	if cat == nil || !cat.TaxApplicable {
		return EffectiveTax{Source: source}
	}
	t := EffectiveTax{Applicable: true, Source: source}
	if cat.TaxPercentage != nil {
		t.Percentage = *cat.TaxPercentage
	}
	return t
}

// ResolveTax applies the inheritance rule to an item's resolved ancestry.
// sub is nil for items attached directly to a category. A missing ancestor
// resolves to zero tax.
func ResolveTax(item *Item, sub *Subcategory, cat *Category) EffectiveTax {
	if item.SubcategoryID == nil {
		if cat == nil {
			return EffectiveTax{}
		}
		return categoryTax(cat, TaxSourceCategory)
	}
	if sub == nil {
		return EffectiveTax{}
	}

	switch sub.TaxMode {
	case TaxApplicable:
		t := EffectiveTax{Applicable: true, Source: TaxSourceSubcategory}
		if sub.TaxPercentage != nil {
			t.Percentage = *sub.TaxPercentage
		}
		return t
	case TaxNotApplicable:
		return EffectiveTax{Source: TaxSourceSubcategory}
	default:
		return categoryTax(cat, TaxSourceCategoryInherited)
	}
}

// EffectiveActive is item.active AND (subcategory?.active ?? true) AND category.active.
func EffectiveActive(item *Item, sub *Subcategory, cat *Category) bool {
	if !item.IsActive || cat == nil || !cat.IsActive {
		return false
	}
	if item.SubcategoryID != nil {
		return sub != nil && sub.IsActive
	}
	return true
}
