package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"restomenu/internal/domain"
)

// ---------- CATEGORY ----------

type CreateCategoryRequest struct {
	Name          string   `json:"name" validate:"required,max=120"`
	Image         string   `json:"image" validate:"omitempty,url"`
	Description   string   `json:"description" validate:"max=1000"`
	TaxApplicable bool     `json:"tax_applicable"`
	TaxPercentage *float64 `json:"tax_percentage" validate:"omitempty,gte=0,lte=100"`
	IsActive      *bool    `json:"is_active"`
}

type UpdateCategoryRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Image         *string  `json:"image,omitempty" validate:"omitempty,url"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	TaxApplicable *bool    `json:"tax_applicable,omitempty"`
	TaxPercentage *float64 `json:"tax_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

// ---------- SUBCATEGORY ----------

// TaxFlag is the subcategory tax_applicable field: true, false, or
// null/"inherit" to defer to the category. Set is false when the field was
// absent from the payload.
type TaxFlag struct {
	Set  bool
	Mode domain.TaxMode
}

func (f *TaxFlag) UnmarshalJSON(b []byte) error {
	f.Set = true
	switch s := string(bytes.TrimSpace(b)); {
	case s == "null":
		f.Mode = domain.TaxInherit
	case s == "true":
		f.Mode = domain.TaxApplicable
	case s == "false":
		f.Mode = domain.TaxNotApplicable
	default:
		var str string
		if err := json.Unmarshal(b, &str); err != nil || !strings.EqualFold(str, "inherit") {
			return fmt.Errorf("tax_applicable must be true, false, null or \"inherit\"")
		}
		f.Mode = domain.TaxInherit
	}
	return nil
}

type CreateSubcategoryRequest struct {
	CategoryID    string   `json:"category_id" validate:"required,uuid"`
	Name          string   `json:"name" validate:"required,max=120"`
	Image         string   `json:"image" validate:"omitempty,url"`
	Description   string   `json:"description" validate:"max=1000"`
	TaxApplicable TaxFlag  `json:"tax_applicable"`
	TaxPercentage *float64 `json:"tax_percentage" validate:"omitempty,gte=0,lte=100"`
	IsActive      *bool    `json:"is_active"`
}

type UpdateSubcategoryRequest struct {
	CategoryID    *string  `json:"category_id,omitempty" validate:"omitempty,uuid"`
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Image         *string  `json:"image,omitempty" validate:"omitempty,url"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	TaxApplicable TaxFlag  `json:"tax_applicable"`
	TaxPercentage *float64 `json:"tax_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

// ---------- ITEM ----------

type CreateItemRequest struct {
	CategoryID    *string              `json:"category_id" validate:"omitempty,uuid"`
	SubcategoryID *string              `json:"subcategory_id" validate:"omitempty,uuid"`
	Name          string               `json:"name" validate:"required,max=120"`
	Description   string               `json:"description" validate:"max=1000"`
	Image         string               `json:"image" validate:"omitempty,url"`
	IsActive      *bool                `json:"is_active"`
	PricingType   string               `json:"pricing_type" validate:"required"`
	PricingConfig map[string]any       `json:"pricing_config"`
	IsBookable    bool                 `json:"is_bookable"`
	Availability  *domain.Availability `json:"availability"`
	Addons        []domain.Addon       `json:"addons"`
}

// UpdateItemRequest moves an item to a new parent when exactly one of the
// parent ids is given.
type UpdateItemRequest struct {
	CategoryID    *string              `json:"category_id,omitempty" validate:"omitempty,uuid"`
	SubcategoryID *string              `json:"subcategory_id,omitempty" validate:"omitempty,uuid"`
	Name          *string              `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Description   *string              `json:"description,omitempty" validate:"omitempty,max=1000"`
	Image         *string              `json:"image,omitempty" validate:"omitempty,url"`
	IsActive      *bool                `json:"is_active,omitempty"`
	PricingType   *string              `json:"pricing_type,omitempty"`
	PricingConfig map[string]any       `json:"pricing_config,omitempty"`
	IsBookable    *bool                `json:"is_bookable,omitempty"`
	Availability  *domain.Availability `json:"availability,omitempty"`
	Addons        []domain.Addon       `json:"addons,omitempty"`
}

// ItemView is an item as listed: its own fields plus the state derived
// from its ancestors.
type ItemView struct {
	domain.Item
	EffectiveIsActive bool                `json:"effective_is_active"`
	EffectiveTax      domain.EffectiveTax `json:"effective_tax"`
}

// ---------- LISTING ----------

type ListQuery struct {
	Page          int
	Limit         int
	SortBy        string
	SortOrder     string
	ActiveOnly    bool
	CategoryID    string
	SubcategoryID string
	Q             string
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func newPage[T any](items []T, total int64, q ListQuery) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items: items,
		Pagination: Pagination{
			Page:       q.Page,
			Limit:      q.Limit,
			Total:      total,
			TotalPages: (int(total) + q.Limit - 1) / q.Limit,
		},
	}
}
