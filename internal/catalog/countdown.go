package catalog

import (
	"fmt"
	"time"
)

// TimeLeft is the remaining time until today's deals expire, decomposed for
// display.
type TimeLeft struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// String renders the countdown with each unit zero-padded to two digits.
func (t TimeLeft) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// EndOfDay returns 23:59:59.999 of now's calendar day, in now's location.
func EndOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), now.Location())
}

// Countdown ticks down to a fixed deadline. The deadline never moves once
// the countdown is created, so after it passes the remaining time clamps to
// zero instead of rolling over to the next day.
type Countdown struct {
	deadline time.Time
}

// NewCountdown creates a countdown to the end of start's calendar day.
func NewCountdown(start time.Time) Countdown {
	return Countdown{deadline: EndOfDay(start)}
}

// Remaining computes max(0, deadline - now) decomposed into hours, minutes
// and seconds by integer division on milliseconds.
func (c Countdown) Remaining(now time.Time) TimeLeft {
	ms := c.deadline.Sub(now).Milliseconds()
	if ms <= 0 {
		return TimeLeft{}
	}
	return TimeLeft{
		Hours:   int(ms / 3_600_000),
		Minutes: int(ms % 3_600_000 / 60_000),
		Seconds: int(ms % 60_000 / 1_000),
	}
}

// Remaining is the single-shot form: the remaining time until the end of
// now's calendar day.
func Remaining(now time.Time) TimeLeft {
	return NewCountdown(now).Remaining(now)
}
