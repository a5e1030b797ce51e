package booking

import (
	"fmt"
	"time"

	"restomenu/internal/domain"
)

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps is the half-open overlap test; touching intervals do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// ParseInterval validates a start/end pair and requires end > start.
func ParseInterval(start, end string) (Interval, error) {
	if start == "" || end == "" {
		return Interval{}, fmt.Errorf("slot must contain start and end")
	}
	s, err := domain.ParseClock(start, true)
	if err != nil {
		return Interval{}, err
	}
	e, err := domain.ParseClock(end, true)
	if err != nil {
		return Interval{}, err
	}
	if e <= s {
		return Interval{}, fmt.Errorf("slot end %s must be after start %s", end, start)
	}
	return Interval{Start: s, End: e}, nil
}

// ConflictsWith reports whether iv overlaps any of the given bookings.
func ConflictsWith(iv Interval, bookings []domain.Booking) (bool, error) {
	for _, b := range bookings {
		other, err := ParseInterval(b.StartTime, b.EndTime)
		if err != nil {
			return false, fmt.Errorf("stored booking %s: %w", b.ID, err)
		}
		if Overlaps(iv, other) {
			return true, nil
		}
	}
	return false, nil
}

// DayOf maps a "YYYY-MM-DD" civil date to its weekday code.
func DayOf(date string) (domain.DayCode, error) {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return "", fmt.Errorf("date %q must be YYYY-MM-DD", date)
	}
	return domain.DayCodeOf(d.Weekday()), nil
}
