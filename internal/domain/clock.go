package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock converts a 24h clock string into minutes since midnight.
// Strict mode requires exactly two hour and two minute digits ("09:00");
// otherwise a single-digit hour ("9:00") is accepted as well.
func ParseClock(s string, strict bool) (int, error) {
	if !strict {
		t, err := time.Parse("15:04", s)
		if err != nil {
			return 0, fmt.Errorf("time %q must be HH:MM", s)
		}
		return t.Hour()*60 + t.Minute(), nil
	}

	h, m, ok := strings.Cut(s, ":")
	if !ok || len(h) != 2 || len(m) != 2 {
		return 0, fmt.Errorf("time %q must be HH:MM", s)
	}
	hh, err := strconv.Atoi(h)
	if err != nil || hh < 0 || hh > 23 {
		return 0, fmt.Errorf("time %q has invalid hour", s)
	}
	mm, err := strconv.Atoi(m)
	if err != nil || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("time %q has invalid minute", s)
	}
	return hh*60 + mm, nil
}
