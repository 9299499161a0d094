package worktime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidClock reports a clock string outside the "HH:MM" form.
var ErrInvalidClock = errors.New("invalid clock value")

const (
	// DailyRegularMinutes is the standard 8-hour working day.
	DailyRegularMinutes = 8 * 60

	// Night window is [22:00, 06:00), wrapping across midnight.
	nightStartHour = 22
	nightEndHour   = 6
)

// Buckets holds the accounted work minutes of one attendance day.
// Night overlaps with whichever of regular/overtime/holiday the minutes
// fall into; it is an informational tag, not a disjoint bucket.
type Buckets struct {
	Regular  int `json:"regular"`
	Overtime int `json:"overtime"`
	Night    int `json:"night"`
	Holiday  int `json:"holiday"`
	Total    int `json:"total"`
}

// ToMinutes converts a clock string "HH:MM" to minutes since midnight.
func ToMinutes(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidClock, clock)
	}
	return h*60 + m, nil
}

// FormatMinutes renders a minute count as "3h 40m" (or "40m" under an hour).
func FormatMinutes(mins int) string {
	h := mins / 60
	m := mins % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// WeekRange returns the Monday and Sunday of the ISO week containing date.
func WeekRange(date time.Time) (time.Time, time.Time) {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	start := date.AddDate(0, 0, -(weekday - 1))
	end := start.AddDate(0, 0, 6)
	return start, end
}

// Calculate converts one day's raw clock values into minute buckets.
// A nil in or out time means the day was not (fully) worked and yields
// all-zero buckets. If out is numerically earlier than in, an overnight
// shift is assumed and a full day is added before subtracting.
func Calculate(in, out *string, lunchMinutes int, date time.Time, isHoliday bool) (Buckets, error) {
	if in == nil || out == nil || *in == "" || *out == "" {
		return Buckets{}, nil
	}

	inMins, err := ToMinutes(*in)
	if err != nil {
		return Buckets{}, err
	}
	outMins, err := ToMinutes(*out)
	if err != nil {
		return Buckets{}, err
	}
	if outMins < inMins {
		outMins += 24 * 60
	}

	total := outMins - inMins - lunchMinutes

	// Night minutes are counted per clock-minute so the wrap across
	// midnight stays exact; shifts are bounded to 24h.
	night := 0
	for minute := inMins; minute < outMins; minute++ {
		h := (minute / 60) % 24
		if h >= nightStartHour || h < nightEndHour {
			night++
		}
	}

	b := Buckets{Night: night, Total: total}
	weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
	if isHoliday || weekend {
		b.Holiday = total
		return b, nil
	}

	b.Regular = total
	if total > DailyRegularMinutes {
		b.Regular = DailyRegularMinutes
		b.Overtime = total - DailyRegularMinutes
	}
	return b, nil
}
