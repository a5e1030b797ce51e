package booking

import (
	"context"

	"github.com/google/uuid"

	"restomenu/internal/domain"
)

// ItemRepository defines the item lookup the booking flow needs
type ItemRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
}

// BookingRepository defines the interface for booking operations
type BookingRepository interface {
	FindConfirmed(ctx context.Context, itemID uuid.UUID, date string) ([]domain.Booking, error)
	InsertIfNoConflict(ctx context.Context, b *domain.Booking, conflicts func(existing []domain.Booking) bool) error
}
