package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking reserves [StartTime, EndTime) of one item on a civil date.
type Booking struct {
	ID        uuid.UUID     `json:"id"`
	ItemID    uuid.UUID     `json:"itemId"`
	Date      string        `json:"date"`
	StartTime string        `json:"startTime"`
	EndTime   string        `json:"endTime"`
	Status    BookingStatus `json:"status"`
	Notes     string        `json:"notes"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
