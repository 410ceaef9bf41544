package daybucket

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Run("valid timezone", func(t *testing.T) {
		if _, err := New("Asia/Ho_Chi_Minh"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid timezone", func(t *testing.T) {
		if _, err := New("Mars/Olympus_Mons"); err == nil {
			t.Fatal("expected error for unknown timezone")
		}
	})

	t.Run("fallback to UTC", func(t *testing.T) {
		b := NewOrUTC("not-a-zone")
		if b.Location() != time.UTC {
			t.Errorf("expected UTC fallback, got %v", b.Location())
		}
	})
}

func TestLocalDay(t *testing.T) {
	// 03:00 UTC on Jan 1 is still Dec 31 in New York (UTC-5).
	instant := time.Date(2024, time.January, 1, 3, 0, 0, 0, time.UTC)

	ny, err := New("America/New_York")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	if got := ny.LocalDay(instant); got != (Day{2023, time.December, 31}) {
		t.Errorf("New York local day = %v, want 2023-12-31", got)
	}

	utc, _ := New("UTC")
	if got := utc.LocalDay(instant); got != (Day{2024, time.January, 1}) {
		t.Errorf("UTC local day = %v, want 2024-01-01", got)
	}

	// Same instant is already Jan 1 10:00 in Ho Chi Minh (UTC+7).
	hcm, _ := New("Asia/Ho_Chi_Minh")
	if got := hcm.LocalDay(instant); got != (Day{2024, time.January, 1}) {
		t.Errorf("HCM local day = %v, want 2024-01-01", got)
	}
}

func TestDayArithmetic(t *testing.T) {
	d := Day{2024, time.February, 28}

	if got := d.AddDays(1); got != (Day{2024, time.February, 29}) {
		t.Errorf("leap year add: got %v", got)
	}
	if got := d.AddDays(2); got != (Day{2024, time.March, 1}) {
		t.Errorf("month rollover: got %v", got)
	}
	if got := d.AddDays(-28); got != (Day{2024, time.January, 31}) {
		t.Errorf("negative add: got %v", got)
	}

	if got := d.DaysUntil(Day{2024, time.March, 3}); got != 4 {
		t.Errorf("DaysUntil = %d, want 4", got)
	}
	if got := d.DaysUntil(Day{2024, time.February, 25}); got != -3 {
		t.Errorf("DaysUntil backwards = %d, want -3", got)
	}
}

func TestDayBoundaries(t *testing.T) {
	ny, err := New("America/New_York")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}

	d := Day{2024, time.March, 10} // DST transition day in the US
	start := ny.StartOfDay(d)
	end := ny.EndOfDay(d)

	if ny.LocalDay(start) != d {
		t.Errorf("start of day not on %v: %v", d, start)
	}
	if ny.LocalDay(end) != d.AddDays(1) {
		t.Errorf("end of day should be the next midnight: %v", end)
	}
	// Spring-forward day is only 23 hours long.
	if end.Sub(start) != 23*time.Hour {
		t.Errorf("DST day length = %v, want 23h", end.Sub(start))
	}
}

func TestWindowStart(t *testing.T) {
	today := Day{2024, time.March, 10}
	if got := WindowStart(today, 7); got != (Day{2024, time.March, 4}) {
		t.Errorf("7-day window start = %v, want 2024-03-04", got)
	}
	if got := WindowStart(today, 1); got != today {
		t.Errorf("1-day window start = %v, want today", got)
	}
}

func TestDayString(t *testing.T) {
	d := Day{2024, time.January, 5}
	if d.String() != "2024-01-05" {
		t.Errorf("String() = %q, want 2024-01-05", d.String())
	}
}
