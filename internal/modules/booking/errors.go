package booking

import "restomenu/internal/pkg/apperr"

var (
	ErrValidation        = apperr.Validation("VALIDATION_ERROR", "date, startTime, endTime are required")
	ErrInvalidItemID     = apperr.Validation("INVALID_ID", "Invalid itemId")
	ErrInvalidDate       = apperr.Validation("INVALID_DATE", "date is required (YYYY-MM-DD)")
	ErrInvalidSlot       = apperr.Validation("INVALID_SLOT", "Invalid booking time range")
	ErrInvalidSlotConfig = apperr.Validation("INVALID_SLOT_CONFIG", "Item has a malformed availability slot")
	ErrItemNotFound      = apperr.NotFound("ITEM_NOT_FOUND", "Item not found")

	ErrNotBookable       = apperr.New(apperr.KindBusinessRule, "NOT_BOOKABLE", "Item is not bookable")
	ErrNotConfigured     = apperr.New(apperr.KindBusinessRule, "AVAILABILITY_NOT_CONFIGURED", "Item availability is not configured")
	ErrDayNotAvailable   = apperr.New(apperr.KindBusinessRule, "DAY_NOT_AVAILABLE", "Item not available on this day")
	ErrSlotNotConfigured = apperr.New(apperr.KindBusinessRule, "SLOT_NOT_CONFIGURED", "Requested slot is not part of item's availability slots")

	ErrSlotConflict = apperr.Conflict("SLOT_CONFLICT", "Slot already booked")
)
