package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restomenu/internal/domain"
	"restomenu/internal/repository"
)

// Mock repositories
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindConfirmed(ctx context.Context, itemID uuid.UUID, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, itemID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// InsertIfNoConflict runs the predicate against the optional second return
// value, simulating rows committed between the pre-check and the insert.
func (m *MockBookingRepository) InsertIfNoConflict(ctx context.Context, b *domain.Booking, conflicts func([]domain.Booking) bool) error {
	args := m.Called(ctx, b)
	if len(args) > 1 {
		if existing, ok := args.Get(1).([]domain.Booking); ok && conflicts(existing) {
			return repository.ErrSlotTaken
		}
	}
	if err := args.Error(0); err != nil {
		return err
	}
	b.ID = uuid.New() // simulate DB insert
	return nil
}

// 2026-10-19 is a Monday.
const monday = "2026-10-19"

func bookableItem() *domain.Item {
	return &domain.Item{
		ID:          uuid.New(),
		Name:        "Private dining room",
		IsActive:    true,
		PricingType: domain.PricingStatic,
		IsBookable:  true,
		Availability: &domain.Availability{
			Days: []domain.DayCode{domain.Monday, domain.Tuesday},
			Slots: []domain.Slot{
				{Start: "09:00", End: "10:00"},
				{Start: "09:30", End: "10:30"},
				{Start: "12:00", End: "13:00"},
			},
		},
	}
}

func confirmedAt(itemID uuid.UUID, start, end string) domain.Booking {
	return domain.Booking{ID: uuid.New(), ItemID: itemID, Date: monday, StartTime: start, EndTime: end, Status: domain.BookingConfirmed}
}

func TestService_CreateBooking_Success(t *testing.T) {
	items := new(MockItemRepository)
	bookings := new(MockBookingRepository)
	item := bookableItem()

	items.On("GetByID", mock.Anything, item.ID).Return(item, nil)
	bookings.On("FindConfirmed", mock.Anything, item.ID, monday).Return([]domain.Booking{}, nil)
	bookings.On("InsertIfNoConflict", mock.Anything, mock.Anything).Return(nil, []domain.Booking{})

	svc := NewService(items, bookings)
	b, err := svc.CreateBooking(context.Background(), item.ID.String(), CreateBookingRequest{
		Date: monday, StartTime: "09:00", EndTime: "10:00", Notes: "window table",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, item.ID, b.ItemID)
	assert.Equal(t, "window table", b.Notes)
	bookings.AssertExpectations(t)
}

func TestService_CreateBooking_Conflicts(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"identical interval", "09:00", "10:00"},
		{"overlapping configured slot", "09:30", "10:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := new(MockItemRepository)
			bookings := new(MockBookingRepository)
			item := bookableItem()

			items.On("GetByID", mock.Anything, item.ID).Return(item, nil)
			bookings.On("FindConfirmed", mock.Anything, item.ID, monday).
				Return([]domain.Booking{confirmedAt(item.ID, "09:00", "10:00")}, nil)

			svc := NewService(items, bookings)
			_, err := svc.CreateBooking(context.Background(), item.ID.String(), CreateBookingRequest{
				Date: monday, StartTime: tt.start, EndTime: tt.end,
			})

			assert.ErrorIs(t, err, ErrSlotConflict)
			bookings.AssertNotCalled(t, "InsertIfNoConflict", mock.Anything, mock.Anything)
		})
	}
}

func TestService_CreateBooking_AdjacentSlotIsFree(t *testing.T) {
	items := new(MockItemRepository)
	bookings := new(MockBookingRepository)
	item := bookableItem()
	item.Availability.Slots = append(item.Availability.Slots, domain.Slot{Start: "10:00", End: "11:00"})

	items.On("GetByID", mock.Anything, item.ID).Return(item, nil)
	bookings.On("FindConfirmed", mock.Anything, item.ID, monday).
		Return([]domain.Booking{confirmedAt(item.ID, "09:00", "10:00")}, nil)
	bookings.On("InsertIfNoConflict", mock.Anything, mock.Anything).Return(nil, []domain.Booking{confirmedAt(item.ID, "09:00", "10:00")})

	svc := NewService(items, bookings)
	_, err := svc.CreateBooking(context.Background(), item.ID.String(), CreateBookingRequest{
		Date: monday, StartTime: "10:00", EndTime: "11:00",
	})
	assert.NoError(t, err)
}

func TestService_CreateBooking_LostRaceIsConflict(t *testing.T) {
	tests := []struct {
		name     string
		insert   error
		existing []domain.Booking
	}{
		{"unique index", repository.ErrDuplicateKey, nil},
		{"overlap seen in transaction", nil, []domain.Booking{{StartTime: "09:30", EndTime: "10:30"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := new(MockItemRepository)
			bookings := new(MockBookingRepository)
			item := bookableItem()

			items.On("GetByID", mock.Anything, item.ID).Return(item, nil)
			bookings.On("FindConfirmed", mock.Anything, item.ID, monday).Return([]domain.Booking{}, nil)
			bookings.On("InsertIfNoConflict", mock.Anything, mock.Anything).Return(tt.insert, tt.existing)

			svc := NewService(items, bookings)
			_, err := svc.CreateBooking(context.Background(), item.ID.String(), CreateBookingRequest{
				Date: monday, StartTime: "09:00", EndTime: "10:00",
			})
			assert.ErrorIs(t, err, ErrSlotConflict)
		})
	}
}

func TestService_CreateBooking_Preconditions(t *testing.T) {
	notBookable := bookableItem()
	notBookable.IsBookable = false

	unconfigured := bookableItem()
	unconfigured.Availability = &domain.Availability{Days: []domain.DayCode{domain.Monday}}

	tests := []struct {
		name    string
		item    *domain.Item
		req     CreateBookingRequest
		wantErr error
	}{
		{"not bookable", notBookable, CreateBookingRequest{Date: monday, StartTime: "09:00", EndTime: "10:00"}, ErrNotBookable},
		{"no slots", unconfigured, CreateBookingRequest{Date: monday, StartTime: "09:00", EndTime: "10:00"}, ErrNotConfigured},
		{"closed day", bookableItem(), CreateBookingRequest{Date: "2026-10-18", StartTime: "09:00", EndTime: "10:00"}, ErrDayNotAvailable},
		{"custom interval", bookableItem(), CreateBookingRequest{Date: monday, StartTime: "09:00", EndTime: "09:45"}, ErrSlotNotConfigured},
		{"inverted interval", bookableItem(), CreateBookingRequest{Date: monday, StartTime: "10:00", EndTime: "09:00"}, ErrInvalidSlot},
		{"missing field", bookableItem(), CreateBookingRequest{Date: monday, StartTime: "09:00"}, ErrValidation},
		{"bad date", bookableItem(), CreateBookingRequest{Date: "19/10/2026", StartTime: "09:00", EndTime: "10:00"}, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := new(MockItemRepository)
			bookings := new(MockBookingRepository)
			items.On("GetByID", mock.Anything, tt.item.ID).Return(tt.item, nil)

			svc := NewService(items, bookings)
			_, err := svc.CreateBooking(context.Background(), tt.item.ID.String(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			bookings.AssertNotCalled(t, "InsertIfNoConflict", mock.Anything, mock.Anything)
		})
	}
}

func TestService_CreateBooking_ItemLookup(t *testing.T) {
	items := new(MockItemRepository)
	bookings := new(MockBookingRepository)
	missing := uuid.New()
	items.On("GetByID", mock.Anything, missing).Return(nil, repository.ErrNotFound)

	svc := NewService(items, bookings)
	req := CreateBookingRequest{Date: monday, StartTime: "09:00", EndTime: "10:00"}

	_, err := svc.CreateBooking(context.Background(), missing.String(), req)
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = svc.CreateBooking(context.Background(), "not-a-uuid", req)
	assert.ErrorIs(t, err, ErrInvalidItemID)
}

func TestService_GetAvailability(t *testing.T) {
	items := new(MockItemRepository)
	bookings := new(MockBookingRepository)
	item := bookableItem()

	items.On("GetByID", mock.Anything, item.ID).Return(item, nil)
	bookings.On("FindConfirmed", mock.Anything, item.ID, monday).
		Return([]domain.Booking{confirmedAt(item.ID, "09:00", "10:00")}, nil)

	svc := NewService(items, bookings)
	got, err := svc.GetAvailability(context.Background(), item.ID.String(), monday)

	require.NoError(t, err)
	assert.Equal(t, domain.Monday, got.Day)
	assert.Equal(t, []SlotStatus{
		{Start: "09:00", End: "10:00", Available: false},
		{Start: "09:30", End: "10:30", Available: false},
		{Start: "12:00", End: "13:00", Available: true},
	}, got.Slots)
}

func TestService_GetAvailability_ClosedDayIsEmpty(t *testing.T) {
	items := new(MockItemRepository)
	bookings := new(MockBookingRepository)
	item := bookableItem()

	items.On("GetByID", mock.Anything, item.ID).Return(item, nil)
	bookings.On("FindConfirmed", mock.Anything, item.ID, "2026-10-18").Return([]domain.Booking{}, nil)

	svc := NewService(items, bookings)
	got, err := svc.GetAvailability(context.Background(), item.ID.String(), "2026-10-18")

	require.NoError(t, err)
	assert.Equal(t, domain.Sunday, got.Day)
	assert.NotNil(t, got.Slots)
	assert.Empty(t, got.Slots)
}

func TestService_GetAvailability_Errors(t *testing.T) {
	items := new(MockItemRepository)
	bookings := new(MockBookingRepository)
	svc := NewService(items, bookings)

	_, err := svc.GetAvailability(context.Background(), uuid.NewString(), "")
	assert.ErrorIs(t, err, ErrInvalidDate)

	broken := bookableItem()
	broken.Availability.Slots = []domain.Slot{{Start: "11:00", End: "10:00"}}
	items.On("GetByID", mock.Anything, broken.ID).Return(broken, nil)
	bookings.On("FindConfirmed", mock.Anything, broken.ID, monday).Return([]domain.Booking{}, nil)

	_, err = svc.GetAvailability(context.Background(), broken.ID.String(), monday)
	assert.ErrorIs(t, err, ErrInvalidSlotConfig)
}
