package prayers

import (
	"context"
	"fmt"

	"github.com/julianstephens/adhanclock/internal/cli"
	"github.com/julianstephens/adhanclock/internal/tracker"
	"github.com/julianstephens/adhanclock/internal/utils"
)

type NextCmd struct{}

func (c *NextCmd) Run(ctx *cli.Context) error {
	now := ctx.Clock.Now()
	schedule, err := ctx.Provider.Fetch(context.Background(), now)
	if err != nil {
		return fmt.Errorf("failed to fetch today's prayer times: %w", err)
	}

	next := tracker.FindNext(schedule, now)
	if next == nil {
		ctx.Println("All prayers for today have passed")
		return nil
	}

	ctx.Printf("Next: %s at %s\n", next.Name, utils.FormatClock(next.At))
	ctx.Printf("%s\n", utils.FormatRemaining(next.Hours, next.Minutes))
	return nil
}
