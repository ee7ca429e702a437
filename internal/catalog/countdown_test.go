package catalog

import (
	"testing"
	"time"
)

func TestRemaining_Decomposition(t *testing.T) {
	now := time.Date(2025, 6, 1, 16, 56, 50, 0, time.UTC)
	// 23:59:59.999 - 16:56:50.000 = 7h 3m 9s (and change)
	got := Remaining(now)
	want := TimeLeft{Hours: 7, Minutes: 3, Seconds: 9}
	if got != want {
		t.Errorf("Remaining = %+v, want %+v", got, want)
	}
}

func TestCountdown_LastSecondsAndClamp(t *testing.T) {
	start := time.Date(2025, 6, 1, 23, 59, 58, int(500*time.Millisecond), time.UTC)
	c := NewCountdown(start)

	if got := c.Remaining(start); got != (TimeLeft{Hours: 0, Minutes: 0, Seconds: 1}) {
		t.Errorf("at 23:59:58.500 got %+v, want 0h0m1s", got)
	}

	// 1.5s later the deadline has passed; the countdown clamps to zero
	tick := start.Add(1500 * time.Millisecond)
	if got := c.Remaining(tick); got != (TimeLeft{}) {
		t.Errorf("after deadline got %+v, want zero", got)
	}

	// and stays at zero, even well into the next day
	later := start.Add(26 * time.Hour)
	if got := c.Remaining(later); got != (TimeLeft{}) {
		t.Errorf("long after deadline got %+v, want zero", got)
	}
}

func TestEndOfDay(t *testing.T) {
	loc := time.FixedZone("BST", 6*3600)
	now := time.Date(2025, 6, 1, 4, 30, 0, 0, loc)
	end := EndOfDay(now)

	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("EndOfDay = %v, want 23:59:59.999", end)
	}
	if end.Location() != loc {
		t.Errorf("EndOfDay changed location to %v", end.Location())
	}
	if end.Day() != now.Day() {
		t.Errorf("EndOfDay moved to day %d, want %d", end.Day(), now.Day())
	}
}

func TestTimeLeftString(t *testing.T) {
	got := TimeLeft{Hours: 7, Minutes: 3, Seconds: 9}.String()
	if got != "07:03:09" {
		t.Errorf("String() = %q, want %q", got, "07:03:09")
	}
	if zero := (TimeLeft{}).String(); zero != "00:00:00" {
		t.Errorf("zero String() = %q, want %q", zero, "00:00:00")
	}
}
