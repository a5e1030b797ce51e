package catalog

import "restomenu/internal/pkg/apperr"

var (
	ErrInvalidID     = apperr.Validation("INVALID_ID", "Invalid id")
	ErrValidation    = apperr.Validation("VALIDATION_ERROR", "Invalid request")
	ErrTaxPercentage = apperr.Validation("TAX_PERCENTAGE_REQUIRED", "tax_percentage is required when tax_applicable is true")
	ErrParent        = apperr.Validation("INVALID_PARENT", "Item must belong to exactly one of category_id or subcategory_id")
	ErrPricingType   = apperr.Validation("INVALID_PRICING_TYPE", "pricing_type must be one of STATIC, COMPLIMENTARY, DISCOUNTED, TIERED, DYNAMIC")
	ErrAvailability  = apperr.Validation("INVALID_AVAILABILITY", "Invalid availability")

	ErrCategoryNotFound    = apperr.NotFound("CATEGORY_NOT_FOUND", "Category not found")
	ErrSubcategoryNotFound = apperr.NotFound("SUBCATEGORY_NOT_FOUND", "Subcategory not found")
	ErrItemNotFound        = apperr.NotFound("ITEM_NOT_FOUND", "Item not found")

	ErrDuplicateCategory    = apperr.Conflict("DUPLICATE_CATEGORY", "Category name must be unique")
	ErrDuplicateSubcategory = apperr.Conflict("DUPLICATE_SUBCATEGORY", "Subcategory name must be unique within its category")
	ErrDuplicateItem        = apperr.Conflict("DUPLICATE_ITEM", "Item name must be unique within its parent")
)
