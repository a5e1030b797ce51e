package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"restomenu/internal/database"
	"restomenu/internal/domain"
	"restomenu/internal/repository"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func never([]domain.Booking) bool { return false }

func TestBookingRepository_ExactDuplicateRejectedByIndex(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewBookingRepository(db)
	ctx := context.Background()
	itemID := uuid.New()

	first := &domain.Booking{ItemID: itemID, Date: "2026-10-19", StartTime: "09:00", EndTime: "10:00", Status: domain.BookingConfirmed}
	require.NoError(t, repo.InsertIfNoConflict(ctx, first, never))
	assert.NotEqual(t, uuid.Nil, first.ID)

	// the predicate lets it through, the partial unique index does not
	second := &domain.Booking{ItemID: itemID, Date: "2026-10-19", StartTime: "09:00", EndTime: "10:00", Status: domain.BookingConfirmed}
	err := repo.InsertIfNoConflict(ctx, second, never)
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestBookingRepository_CancelledRowsDoNotBlock(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewBookingRepository(db)
	ctx := context.Background()
	itemID := uuid.New()

	cancelled := repository.BookingModel{ItemID: itemID, Date: "2026-10-19", StartTime: "09:00", EndTime: "10:00", Status: string(domain.BookingCancelled)}
	require.NoError(t, db.Create(&cancelled).Error)

	confirmed, err := repo.FindConfirmed(ctx, itemID, "2026-10-19")
	require.NoError(t, err)
	assert.Empty(t, confirmed)

	b := &domain.Booking{ItemID: itemID, Date: "2026-10-19", StartTime: "09:00", EndTime: "10:00", Status: domain.BookingConfirmed}
	require.NoError(t, repo.InsertIfNoConflict(ctx, b, never))
}

func TestBookingRepository_PredicateSeesExistingRows(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewBookingRepository(db)
	ctx := context.Background()
	itemID := uuid.New()

	require.NoError(t, repo.InsertIfNoConflict(ctx, &domain.Booking{
		ItemID: itemID, Date: "2026-10-19", StartTime: "09:00", EndTime: "10:00", Status: domain.BookingConfirmed,
	}, never))

	var seen []domain.Booking
	err := repo.InsertIfNoConflict(ctx, &domain.Booking{
		ItemID: itemID, Date: "2026-10-19", StartTime: "09:30", EndTime: "10:30", Status: domain.BookingConfirmed,
	}, func(existing []domain.Booking) bool {
		seen = existing
		return true
	})

	assert.ErrorIs(t, err, repository.ErrSlotTaken)
	require.Len(t, seen, 1)
	assert.Equal(t, "09:00", seen[0].StartTime)

	other, err := repo.FindConfirmed(ctx, itemID, "2026-10-20")
	require.NoError(t, err)
	assert.Empty(t, other)
}
