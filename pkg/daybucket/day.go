package daybucket

import "time"

// Day is a civil calendar date with no clock or zone attached.
// All streak/window math in the service runs on Days, never on instants,
// so that day attribution follows the owner's timezone.
type Day struct {
	Year  int
	Month time.Month
	Date  int
}

// DayOf extracts the calendar date from t as observed in t's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Date: d}
}

// String formats the day as YYYY-MM-DD.
func (d Day) String() string {
	return d.asTime().Format("2006-01-02")
}

// AddDays returns the day n calendar days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return DayOf(d.asTime().AddDate(0, 0, n))
}

// DaysUntil returns the number of calendar days from d to other.
// Positive when other is after d.
func (d Day) DaysUntil(other Day) int {
	return int(other.asTime().Sub(d.asTime()) / (24 * time.Hour))
}

// Before reports whether d is earlier than other.
func (d Day) Before(other Day) bool {
	return d.asTime().Before(other.asTime())
}

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool {
	return d == Day{}
}

// asTime pins the day to noon UTC, which makes AddDate and Sub immune to
// daylight-saving offsets while staying on the right calendar date.
func (d Day) asTime() time.Time {
	return time.Date(d.Year, d.Month, d.Date, 12, 0, 0, 0, time.UTC)
}
