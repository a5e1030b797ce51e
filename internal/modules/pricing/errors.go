package pricing

import "restomenu/internal/pkg/apperr"

var (
	ErrInvalidItemID = apperr.Validation("INVALID_ID", "Invalid item id")
	ErrItemNotFound  = apperr.NotFound("ITEM_NOT_FOUND", "Item not found")
	ErrInvalidQuery  = apperr.Validation("VALIDATION_ERROR", "Invalid price query")

	ErrDurationRequired = apperr.Validation("DURATION_REQUIRED", "TIERED requires durationHours > 0")
	ErrTimeRequired     = apperr.Validation("TIME_REQUIRED", "DYNAMIC requires time (HH:MM) or at (timestamp)")
	ErrInvalidTime      = apperr.Validation("INVALID_TIME", "time must be HH:MM")

	ErrInvalidConfig      = apperr.New(apperr.KindInvalidPricingConfig, "INVALID_PRICING_CONFIG", "Item pricing_config is invalid")
	ErrUnknownType        = apperr.New(apperr.KindInvalidPricingConfig, "INVALID_PRICING_TYPE", "Invalid pricing_type on item")
	ErrOverlappingTiers   = apperr.New(apperr.KindInvalidPricingConfig, "OVERLAPPING_TIERS", "Tiered pricing tiers must have strictly increasing upto values")
	ErrOverlappingWindows = apperr.New(apperr.KindInvalidPricingConfig, "OVERLAPPING_WINDOWS", "Dynamic pricing windows must not overlap")

	ErrNotAvailableAtTime = apperr.New(apperr.KindBusinessRule, "NOT_AVAILABLE_AT_TIME", "Item not available at this time")
)
