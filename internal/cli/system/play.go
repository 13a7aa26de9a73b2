package system

import (
	"context"
	"os"
	"os/signal"

	"github.com/julianstephens/adhanclock/internal/audio"
	"github.com/julianstephens/adhanclock/internal/cli"
	"github.com/julianstephens/adhanclock/internal/models"
)

type PlayCmd struct {
	Prayer string `arg:"" optional:"" help:"Prayer whose adhan to play (fajr, dhuhr, asr, maghrib, isha)." default:"fajr"`
	DryRun bool   `help:"Resolve and decode the cue without playing it."`
}

func (c *PlayCmd) Run(ctx *cli.Context) error {
	name, err := models.ParsePrayerName(c.Prayer)
	if err != nil {
		return err
	}

	path, err := audio.ResolveCue(ctx.Config, name)
	if err != nil {
		return err
	}

	if c.DryRun {
		if err := audio.Probe(path); err != nil {
			return err
		}
		ctx.Printf("Would play %s adhan: %s\n", name, path)
		return nil
	}

	player := audio.NewSpeakerPlayer(ctx.Config)
	defer player.Close()

	if err := player.PlayFile(path); err != nil {
		return err
	}
	ctx.Printf("Playing %s adhan: %s (Ctrl+C to stop)\n", name, path)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := player.Wait(sigCtx); err != nil {
		ctx.Println("Stopped.")
	}
	return nil
}
