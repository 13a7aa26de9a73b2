package models

import (
	"fmt"
	"time"
)

// Schedule holds one day's prayer times. It is always replaced as a whole.
type Schedule struct {
	Date  string                 `json:"date"` // YYYY-MM-DD
	Times [PrayerCount]time.Time `json:"times"`
}

// At returns the time of the given prayer.
func (s Schedule) At(name PrayerName) time.Time {
	if !name.Valid() {
		return time.Time{}
	}
	return s.Times[name]
}

// IsZero reports whether the schedule is the "unknown" placeholder used before
// the first successful fetch.
func (s Schedule) IsZero() bool {
	if s.Date != "" {
		return false
	}
	for _, t := range s.Times {
		if !t.IsZero() {
			return false
		}
	}
	return true
}

// Validate checks that every prayer has a time, that times never go backwards
// and that they all fall on the schedule's date.
func (s Schedule) Validate() error {
	if s.Date == "" {
		return fmt.Errorf("schedule date cannot be empty")
	}
	for i, name := range Prayers {
		t := s.Times[name]
		if t.IsZero() {
			return fmt.Errorf("missing time for %s", name)
		}
		if got := t.Format("2006-01-02"); got != s.Date {
			return fmt.Errorf("%s falls on %s, expected %s", name, got, s.Date)
		}
		if i > 0 {
			prev := Prayers[i-1]
			if t.Before(s.Times[prev]) {
				return fmt.Errorf("%s (%s) is before %s (%s)", name, t.Format("15:04"), prev, s.Times[prev].Format("15:04"))
			}
		}
	}
	return nil
}

// NextEvent is the upcoming prayer and the whole time remaining until it.
type NextEvent struct {
	Name    PrayerName
	At      time.Time
	Hours   int
	Minutes int
}

// Due reports whether less than one full minute remains.
func (e NextEvent) Due() bool {
	return e.Hours == 0 && e.Minutes == 0
}
