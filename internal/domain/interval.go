package domain

import (
	"time"

	"github.com/m04kA/SMC-StadiumRental/pkg/types"
)

// Overlaps reports whether half-open intervals [s1, e1) and [s2, e2) intersect.
// Touching intervals (e1 == s2) do not overlap.
func Overlaps(s1, e1, s2, e2 types.TimeString) bool {
	return s1.IsBefore(e2) && s2.IsBefore(e1)
}

// FindOverlapping returns active bookings whose range intersects [start, end).
// excludeID skips the booking being re-checked (0 = none).
func FindOverlapping(bookings []*Booking, start, end types.TimeString, excludeID int64) []*Booking {
	result := make([]*Booking, 0)
	for _, b := range bookings {
		if b.ID == excludeID && excludeID != 0 {
			continue
		}
		if !b.IsActive() {
			continue
		}
		if Overlaps(start, end, b.StartTime, b.EndTime) {
			result = append(result, b)
		}
	}
	return result
}

// SameDate reports whether two timestamps fall on the same calendar date
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly truncates t to midnight UTC of its calendar date
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
