package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restomenu/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// BookingModel is the storage row; exported for migrations only.
type BookingModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ItemID    uuid.UUID `gorm:"column:item_id;type:uuid;not null;index:idx_bookings_item_date"`
	Date      string    `gorm:"column:date;type:varchar(10);not null;index:idx_bookings_item_date"`
	StartTime string    `gorm:"column:start_time;type:varchar(5);not null"`
	EndTime   string    `gorm:"column:end_time;type:varchar(5);not null"`
	Status    string    `gorm:"column:status;type:varchar(16);not null;default:'CONFIRMED';index"`
	Notes     *string   `gorm:"column:notes"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (BookingModel) TableName() string { return "bookings" }

func (m *BookingModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func toDomainBooking(m BookingModel) *domain.Booking {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Booking{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Date:      m.Date,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Status:    domain.BookingStatus(m.Status),
		Notes:     notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) BookingModel {
	var notes *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}

	return BookingModel{
		ID:        b.ID,
		ItemID:    b.ItemID,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    string(b.Status),
		Notes:     notes,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FindConfirmed returns the CONFIRMED bookings of an item on a civil date.
func (r *BookingRepository) FindConfirmed(ctx context.Context, itemID uuid.UUID, date string) ([]domain.Booking, error) {
	return findConfirmed(r.db.WithContext(ctx), itemID, date)
}

func findConfirmed(db *gorm.DB, itemID uuid.UUID, date string) ([]domain.Booking, error) {
	var rows []BookingModel
	err := db.
		Where("item_id = ? AND date = ? AND status = ?", itemID, date, string(domain.BookingConfirmed)).
		Order("start_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// InsertIfNoConflict re-reads the confirmed bookings for (item, date) and
// inserts b only when conflicts reports none, all in one transaction. On
// Postgres the transaction also takes an advisory lock on (item, date) so two
// overlapping but non-identical requests cannot both pass the check. A
// violation of the exact-slot unique index surfaces as ErrDuplicateKey.
func (r *BookingRepository) InsertIfNoConflict(
	ctx context.Context,
	b *domain.Booking,
	conflicts func(existing []domain.Booking) bool,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			key := b.ItemID.String() + "|" + b.Date
			if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
				return err
			}
		}

		existing, err := findConfirmed(tx, b.ItemID, b.Date)
		if err != nil {
			return err
		}
		if conflicts(existing) {
			return ErrSlotTaken
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return translate(err)
		}
		*b = *toDomainBooking(m)
		return nil
	})
}
