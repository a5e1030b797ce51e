package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"restomenu/internal/domain"
	"restomenu/internal/repository"
)

type Service struct {
	items    ItemRepository
	bookings BookingRepository
}

func NewService(items ItemRepository, bookings BookingRepository) *Service {
	return &Service{
		items:    items,
		bookings: bookings,
	}
}

func (s *Service) loadItem(ctx context.Context, rawID string) (*domain.Item, error) {
	id, err := uuid.Parse(rawID)
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
	return item, nil
}

// GetAvailability lists an item's configured slots for date with their
// booked state.
func (s *Service) GetAvailability(ctx context.Context, itemID, date string) (*Availability, error) {
	if date == "" {
		return nil, ErrInvalidDate
	}
	if _, err := DayOf(date); err != nil {
		return nil, ErrInvalidDate.Withf("%v", err)
	}

	item, err := s.loadItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := requireSchedule(item); err != nil {
		return nil, err
	}

	confirmed, err := s.bookings.FindConfirmed(ctx, item.ID, date)
	if err != nil {
		return nil, err
	}
	return ComputeAvailability(item, date, confirmed)
}

// CreateBooking reserves one configured slot. Checks run in order: item
// exists and is bookable, schedule configured, day open, slot configured
// verbatim, no overlap with confirmed bookings. The overlap check is repeated
// inside the insert transaction and the exact-slot unique index backs it up;
// either failing is reported as ErrSlotConflict.
func (s *Service) CreateBooking(ctx context.Context, itemID string, req CreateBookingRequest) (*domain.Booking, error) {
	if req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		return nil, ErrValidation
	}
	day, err := DayOf(req.Date)
	if err != nil {
		return nil, ErrInvalidDate.Withf("%v", err)
	}

	item, err := s.loadItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := requireSchedule(item); err != nil {
		return nil, err
	}
	if !item.Availability.OpenOn(day) {
		return nil, ErrDayNotAvailable
	}

	requested, err := ParseInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, ErrInvalidSlot.Withf("%v", err)
	}
	if !slotConfigured(item.Availability, req.StartTime, req.EndTime) {
		return nil, ErrSlotNotConfigured
	}

	confirmed, err := s.bookings.FindConfirmed(ctx, item.ID, req.Date)
	if err != nil {
		return nil, err
	}
	taken, err := ConflictsWith(requested, confirmed)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotConflict
	}

	b := &domain.Booking{
		ItemID:    item.ID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    domain.BookingConfirmed,
		Notes:     req.Notes,
	}

	var checkErr error
	err = s.bookings.InsertIfNoConflict(ctx, b, func(existing []domain.Booking) bool {
		var hit bool
		hit, checkErr = ConflictsWith(requested, existing)
		// unreadable rows block the insert
		return hit || checkErr != nil
	})
	if checkErr != nil {
		return nil, checkErr
	}
	if err != nil {
		if errors.Is(err, repository.ErrSlotTaken) || errors.Is(err, repository.ErrDuplicateKey) {
			log.Warn().
				Str("item_id", item.ID.String()).
				Str("date", req.Date).
				Str("slot", req.StartTime+"-"+req.EndTime).
				Msg("booking lost race at insert")
			return nil, ErrSlotConflict.Wrap(err)
		}
		return nil, err
	}

	return b, nil
}

func slotConfigured(a *domain.Availability, start, end string) bool {
	for _, s := range a.Slots {
		if s.Start == start && s.End == end {
			return true
		}
	}
	return false
}
