// Package timeslot provides clock-time interval arithmetic for court
// bookings. Times are venue-local "HH:MM" strings; intervals are half-open
// [start, end) so back-to-back bookings never conflict.
package timeslot

import (
	"errors"
	"fmt"
	"math"
)

const minutesPerDay = 24 * 60

var ErrInvalidTime = errors.New("invalid time, expected HH:MM")

// ToMinutes converts a zero-padded "HH:MM" string to minutes since 00:00.
func ToMinutes(t string) (int, error) {
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, t)
	}
	h, err := twoDigits(t[0], t[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, t)
	}
	m, err := twoDigits(t[3], t[4])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, t)
	}
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, t)
	}
	return h*60 + m, nil
}

func twoDigits(a, b byte) (int, error) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, ErrInvalidTime
	}
	return int(a-'0')*10 + int(b-'0'), nil
}

// FormatMinutes renders minutes since 00:00 as zero-padded "HH:MM",
// normalized into a single day.
func FormatMinutes(m int) string {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddDuration returns start shifted forward by the given number of hours,
// wrapping silently past midnight.
func AddDuration(start string, hours float64) (string, error) {
	m, err := ToMinutes(start)
	if err != nil {
		return "", err
	}
	return FormatMinutes(m + int(math.Round(hours*60))), nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap. An interval
// whose end is not after its start is taken to cross midnight and is
// normalized onto the next day before comparison.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	aEnd = normalizeEnd(aStart, aEnd)
	bEnd = normalizeEnd(bStart, bEnd)
	return aStart < bEnd && aEnd > bStart
}

func normalizeEnd(start, end int) int {
	if end <= start {
		return end + minutesPerDay
	}
	return end
}
