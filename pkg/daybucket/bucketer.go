package daybucket

import (
	"fmt"
	"time"
)

// Bucketer converts instants to calendar days in a fixed timezone.
type Bucketer struct {
	location *time.Location
}

// New creates a Bucketer for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func New(timezone string) (*Bucketer, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Bucketer{location: loc}, nil
}

// NewOrUTC creates a Bucketer for the given timezone, falling back to UTC
// when the identifier is unknown. Used where a stored timezone must never
// break a read path.
func NewOrUTC(timezone string) *Bucketer {
	b, err := New(timezone)
	if err != nil {
		return &Bucketer{location: time.UTC}
	}
	return b
}

// Location returns the bucketer's timezone.
func (b *Bucketer) Location() *time.Location {
	return b.location
}

// LocalDay returns the calendar date of t as observed in the bucketer's
// timezone.
func (b *Bucketer) LocalDay(t time.Time) Day {
	return DayOf(t.In(b.location))
}

// Today returns the calendar date of now in the bucketer's timezone.
func (b *Bucketer) Today(now time.Time) Day {
	return b.LocalDay(now)
}

// StartOfDay returns midnight at the start of d in the bucketer's timezone.
func (b *Bucketer) StartOfDay(d Day) time.Time {
	return time.Date(d.Year, d.Month, d.Date, 0, 0, 0, 0, b.location)
}

// EndOfDay returns the first instant of the following day, so callers can
// express "within day d" as [StartOfDay, EndOfDay).
func (b *Bucketer) EndOfDay(d Day) time.Time {
	return b.StartOfDay(d.AddDays(1))
}

// WindowStart returns the first day of the trailing window of the given
// length ending at today inclusive. A 7-day window ending 2024-03-10
// starts at 2024-03-04.
func WindowStart(today Day, window int) Day {
	return today.AddDays(-(window - 1))
}
