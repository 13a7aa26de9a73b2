// Package tracker finds the next upcoming prayer in a day's schedule.
package tracker

import (
	"time"

	"github.com/julianstephens/adhanclock/internal/models"
)

// FindNext returns the first prayer whose time is strictly after now, along
// with the whole hours and minutes remaining until it. A prayer whose time
// equals now has already been reached. It returns nil when every prayer of the
// schedule has passed.
func FindNext(schedule models.Schedule, now time.Time) *models.NextEvent {
	for _, name := range models.Prayers {
		at := schedule.At(name)
		if !at.After(now) {
			continue
		}
		totalMinutes := int(at.Sub(now) / time.Minute)
		return &models.NextEvent{
			Name:    name,
			At:      at,
			Hours:   totalMinutes / 60,
			Minutes: totalMinutes % 60,
		}
	}
	return nil
}
