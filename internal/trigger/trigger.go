// Package trigger decides when a prayer's cue should be played. Each prayer
// fires at most once per calendar day.
package trigger

import (
	"github.com/julianstephens/adhanclock/internal/models"
)

// Controller tracks the last prayer fired for the current date. It is owned by
// the display loop and is not safe for concurrent use.
type Controller struct {
	lastFired *models.PrayerName
	stateDate string
}

// New returns a Controller whose state applies to today (YYYY-MM-DD).
func New(today string) *Controller {
	return &Controller{stateDate: today}
}

// ShouldReset reports whether trigger state kept for prev is stale on today.
func ShouldReset(prev, today string) bool {
	return prev != today
}

// OnTick feeds the current next-event status into the controller. It returns
// the prayer to play when less than a minute remains until next and that prayer
// has not fired yet today. A nil next means no prayer remains today.
func (c *Controller) OnTick(next *models.NextEvent, today string) (models.PrayerName, bool) {
	if ShouldReset(c.stateDate, today) {
		c.lastFired = nil
		c.stateDate = today
	}

	if next == nil || !next.Due() {
		return 0, false
	}
	if c.lastFired != nil && *c.lastFired == next.Name {
		return 0, false
	}

	name := next.Name
	c.lastFired = &name
	return name, true
}

// Override returns name so the caller plays its cue right away. The gate used
// by OnTick is left untouched, so the prayer still fires normally later.
func (c *Controller) Override(name models.PrayerName) models.PrayerName {
	return name
}

// LastFired returns the last prayer fired on StateDate, if any.
func (c *Controller) LastFired() (models.PrayerName, bool) {
	if c.lastFired == nil {
		return 0, false
	}
	return *c.lastFired, true
}

// StateDate returns the date the trigger state applies to.
func (c *Controller) StateDate() string {
	return c.stateDate
}
