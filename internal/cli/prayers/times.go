package prayers

import (
	"context"
	"fmt"

	"github.com/julianstephens/adhanclock/internal/cli"
	"github.com/julianstephens/adhanclock/internal/clock"
	"github.com/julianstephens/adhanclock/internal/constants"
	"github.com/julianstephens/adhanclock/internal/models"
	"github.com/julianstephens/adhanclock/internal/tracker"
	"github.com/julianstephens/adhanclock/internal/utils"
)

type TimesCmd struct {
	Date string `help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TimesCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	schedule, err := ctx.Provider.Fetch(context.Background(), date)
	if err != nil {
		return fmt.Errorf("failed to fetch prayer times for %s: %w", clock.Today(date), err)
	}

	// Only mark the upcoming prayer when showing today.
	var next *models.NextEvent
	now := ctx.Clock.Now()
	if schedule.Date == clock.Today(now) {
		next = tracker.FindNext(schedule, now)
	}

	ctx.Printf("Prayer times for %s", date.Format(constants.LongDateFormat))
	if label := ctx.Config.Location.Label; label != "" {
		ctx.Printf(" (%s)", label)
	}
	ctx.Printf(":\n\n")

	for _, name := range models.Prayers {
		marker := " "
		if next != nil && next.Name == name {
			marker = "→"
		}
		ctx.Printf("%s %-8s %8s\n", marker, name, utils.FormatClock(schedule.At(name)))
	}
	return nil
}
