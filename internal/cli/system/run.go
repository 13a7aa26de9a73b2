package system

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/adhanclock/internal/audio"
	"github.com/julianstephens/adhanclock/internal/cli"
	"github.com/julianstephens/adhanclock/internal/config"
	apperrors "github.com/julianstephens/adhanclock/internal/errors"
	"github.com/julianstephens/adhanclock/internal/icon"
	"github.com/julianstephens/adhanclock/internal/logger"
	"github.com/julianstephens/adhanclock/internal/tui"
)

type RunCmd struct {
	Mute bool `help:"Log cues instead of playing them."`
	FPS  int  `help:"Override the display refresh rate." name:"fps"`
}

// displayConfig applies the command's flags to the loaded config.
func (c *RunCmd) displayConfig(cfg config.Config) (config.Config, error) {
	if c.Mute {
		cfg.Audio.Muted = true
	}
	if c.FPS != 0 {
		cfg.Display.FPS = c.FPS
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *RunCmd) Run(ctx *cli.Context) error {
	cfg, err := c.displayConfig(ctx.Config)
	if err != nil {
		return err
	}

	player := audio.New(cfg)
	if sp, ok := player.(*audio.SpeakerPlayer); ok {
		defer sp.Close()
	}

	model := tui.NewModel(context.Background(), cfg, ctx.Clock, ctx.Provider, player)

	cols, rows := tui.IconSize(cfg)
	art, err := icon.Load(cfg.IconFile(), cfg.Display.IconProtocol, cols, rows)
	if err != nil {
		logger.Warn("Icon unavailable", "path", cfg.IconFile(), "error", err)
	} else {
		model.SetIcon(art)
	}

	logger.Info("Starting clock", "label", cfg.Location.Label, "fps", cfg.Display.FPS, "muted", cfg.Audio.Muted)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("clock display failed: %v: %w", err, apperrors.ErrRender)
	}
	logger.Info("Clock stopped")
	return nil
}
