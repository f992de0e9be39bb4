package party

import (
	"fmt"
	"time"
)

// timeLayout is the accepted wall-clock format for start and end times.
const timeLayout = "15:04"

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	minutes int // minutes since midnight
}

// ParseTimeOfDay parses "HH:MM" (24-hour clock).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// OnDate anchors the time of day to a calendar date.
func (t TimeOfDay) OnDate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.minutes/60, t.minutes%60, 0, 0, d.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}
