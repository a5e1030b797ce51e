package booking

import (
	"restomenu/internal/domain"
)

type SlotStatus struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

type Availability struct {
	ItemID string         `json:"itemId"`
	Date   string         `json:"date"`
	Day    domain.DayCode `json:"day"`
	Slots  []SlotStatus   `json:"slots"`
}

// requireSchedule checks the item can take bookings at all.
func requireSchedule(item *domain.Item) error {
	if !item.IsBookable {
		return ErrNotBookable
	}
	if !item.Availability.Configured() {
		return ErrNotConfigured
	}
	return nil
}

// ComputeAvailability marks each configured slot of item on date as free or
// taken by one of the confirmed bookings. A day outside the item's day set
// yields no slots. A malformed configured slot fails the whole computation.
func ComputeAvailability(item *domain.Item, date string, confirmed []domain.Booking) (*Availability, error) {
	if err := requireSchedule(item); err != nil {
		return nil, err
	}
	day, err := DayOf(date)
	if err != nil {
		return nil, ErrInvalidDate.Withf("%v", err)
	}

	out := &Availability{
		ItemID: item.ID.String(),
		Date:   date,
		Day:    day,
		Slots:  []SlotStatus{},
	}
	if !item.Availability.OpenOn(day) {
		return out, nil
	}

	for _, slot := range item.Availability.Slots {
		iv, err := ParseInterval(slot.Start, slot.End)
		if err != nil {
			return nil, ErrInvalidSlotConfig.Withf("configured slot %s-%s: %v", slot.Start, slot.End, err)
		}
		taken, err := ConflictsWith(iv, confirmed)
		if err != nil {
			return nil, err
		}
		out.Slots = append(out.Slots, SlotStatus{
			Start:     slot.Start,
			End:       slot.End,
			Available: !taken,
		})
	}
	return out, nil
}
