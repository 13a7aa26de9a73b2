package system

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/adhanclock/internal/audio"
	"github.com/julianstephens/adhanclock/internal/cli"
	"github.com/julianstephens/adhanclock/internal/clock"
	"github.com/julianstephens/adhanclock/internal/constants"
	"github.com/julianstephens/adhanclock/internal/icon"
	"github.com/julianstephens/adhanclock/internal/models"
)

const doctorFetchTimeout = 30 * time.Second

type DoctorCmd struct {
	Offline bool `help:"Skip the timing service check."`
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	report := func(name string, err error) {
		if err != nil {
			ctx.Printf("❌ %s: FAIL\n", name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			return
		}
		ctx.Printf("✓ %s: OK\n", name)
	}

	// Check 1: Config valid
	report("Config valid", ctx.Config.Validate())

	// Check 2: Clock/timezone sanity
	report("Clock/timezone", checkClockTimezone(ctx))

	// Check 3: Every cue decodes
	for _, name := range models.Prayers {
		report(fmt.Sprintf("Adhan cue (%s)", name), checkCue(ctx, name))
	}

	// Check 4: Icon (warning only, the clock runs without it)
	if err := checkIcon(ctx); err != nil {
		ctx.Printf("⚠ Icon: WARNING\n")
		ctx.Printf("   %v\n", err)
	} else {
		ctx.Printf("✓ Icon: OK\n")
	}

	// Check 5: Timing service reachable
	if cmd.Offline {
		ctx.Printf("⊘ Timing service: SKIPPED (offline)\n")
	} else {
		report("Timing service", checkTimingService(ctx))
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	loc, err := ctx.Config.TimeLocation()
	if err != nil {
		return err
	}
	now := ctx.Clock.Now().In(loc)
	if now.Year() < 2000 {
		return fmt.Errorf("system clock looks unset: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkCue(ctx *cli.Context, name models.PrayerName) error {
	path, err := audio.ResolveCue(ctx.Config, name)
	if err != nil {
		return err
	}
	return audio.Probe(path)
}

func checkIcon(ctx *cli.Context) error {
	if ctx.Config.Display.Icon == "" || ctx.Config.Display.IconProtocol == "none" {
		return fmt.Errorf("icon disabled")
	}
	_, err := icon.Load(ctx.Config.IconFile(), "halfblocks", 8, 4)
	return err
}

func checkTimingService(ctx *cli.Context) error {
	if ctx.Provider == nil {
		return fmt.Errorf("no timing client (fix the config first)")
	}
	fetchCtx, cancel := context.WithTimeout(context.Background(), doctorFetchTimeout)
	defer cancel()

	now := ctx.Clock.Now()
	schedule, err := ctx.Provider.Fetch(fetchCtx, now)
	if err != nil {
		return err
	}
	if schedule.Date != clock.Today(now) {
		return fmt.Errorf("service returned %s, want %s", schedule.Date, now.Format(constants.DateFormat))
	}
	return nil
}
