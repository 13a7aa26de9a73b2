// Package tui runs the clock: a bubbletea loop that ticks at the display
// frame rate, refreshes the schedule once per day, fires cues and renders the
// screen.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/adhanclock/internal/audio"
	"github.com/julianstephens/adhanclock/internal/clock"
	"github.com/julianstephens/adhanclock/internal/config"
	"github.com/julianstephens/adhanclock/internal/constants"
	"github.com/julianstephens/adhanclock/internal/models"
	"github.com/julianstephens/adhanclock/internal/timings"
	"github.com/julianstephens/adhanclock/internal/trigger"
)

type Model struct {
	ctx        context.Context
	cfg        config.Config
	clock      clock.Clock
	provider   timings.Provider
	player     audio.Player
	controller *trigger.Controller
	styles     Styles
	keys       KeyMap
	help       help.Model

	now      time.Time
	schedule models.Schedule
	next     *models.NextEvent
	status   string
	icon     string

	fetchDate string // date of the last fetch started
	fetching  bool
	fetchErr  error
	failedAt  time.Time

	showHelp bool
	quitting bool
	width    int
	height   int
}

// NewModel builds the loop. The first schedule fetch starts from Init.
func NewModel(ctx context.Context, cfg config.Config, clk clock.Clock, provider timings.Provider, player audio.Player) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	now := clk.Now()
	today := clock.Today(now)

	return Model{
		ctx:        ctx,
		cfg:        cfg,
		clock:      clk,
		provider:   provider,
		player:     player,
		controller: trigger.New(today),
		styles:     NewStyles(cfg.Display.Palette),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		now:        now,
		status:     constants.StatusFetching,
		fetchDate:  today,
		fetching:   true,
	}
}

// SetIcon sets the pre-rendered icon drawn beside the prayer list.
func (m *Model) SetIcon(icon string) {
	m.icon = icon
}

// IconSize returns the cell area available to the icon for a config.
func IconSize(cfg config.Config) (cols, rows int) {
	cols = cfg.Display.Width - 2*sideMargin - 2*rowNameWidth - 2
	if cols < 0 {
		cols = 0
	}
	return cols, models.PrayerCount
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(m.now), m.tick())
}

// Schedule returns the schedule currently displayed.
func (m Model) Schedule() models.Schedule {
	return m.schedule
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}
