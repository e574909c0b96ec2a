package valueobjects

import (
	"errors"
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// ScheduleSlot is a weekly recurring time window a class meets in.
// Times are minutes from midnight in the school's local time.
type ScheduleSlot struct {
	DayOfWeek   time.Weekday `json:"day_of_week"`
	StartMinute int          `json:"start_minute"`
	EndMinute   int          `json:"end_minute"`
}

func NewScheduleSlot(day time.Weekday, startMinute, endMinute int) (ScheduleSlot, error) {
	if day < time.Sunday || day > time.Saturday {
		return ScheduleSlot{}, errors.New("invalid day of week")
	}
	if startMinute < 0 || startMinute >= minutesPerDay {
		return ScheduleSlot{}, errors.New("start minute out of range")
	}
	if endMinute <= startMinute || endMinute > minutesPerDay {
		return ScheduleSlot{}, errors.New("end minute must be after start minute")
	}

	return ScheduleSlot{
		DayOfWeek:   day,
		StartMinute: startMinute,
		EndMinute:   endMinute,
	}, nil
}

// Overlaps reports whether two slots share any time on the same day.
func (s ScheduleSlot) Overlaps(other ScheduleSlot) bool {
	if s.DayOfWeek != other.DayOfWeek {
		return false
	}
	return s.StartMinute < other.EndMinute && other.StartMinute < s.EndMinute
}

func (s ScheduleSlot) String() string {
	return fmt.Sprintf("%s %02d:%02d-%02d:%02d",
		s.DayOfWeek,
		s.StartMinute/60, s.StartMinute%60,
		s.EndMinute/60, s.EndMinute%60,
	)
}
