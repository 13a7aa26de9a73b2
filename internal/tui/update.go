package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/adhanclock/internal/clock"
	"github.com/julianstephens/adhanclock/internal/constants"
	apperrors "github.com/julianstephens/adhanclock/internal/errors"
	"github.com/julianstephens/adhanclock/internal/logger"
	"github.com/julianstephens/adhanclock/internal/models"
	"github.com/julianstephens/adhanclock/internal/tracker"
)

// TickMsg drives one frame of the loop.
type TickMsg time.Time

// ScheduleMsg carries the result of a schedule fetch for Date.
type ScheduleMsg struct {
	Date     string
	Schedule models.Schedule
	Err      error
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fetch looks up the schedule for now's calendar day off the loop goroutine.
func (m Model) fetch(now time.Time) tea.Cmd {
	ctx, provider := m.ctx, m.provider
	date := clock.Today(now)
	return func() tea.Msg {
		schedule, err := provider.Fetch(ctx, now)
		return ScheduleMsg{Date: date, Schedule: schedule, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Play):
			logger.Debug("Manual cue requested", "prayer", models.Fajr)
			m.play(m.controller.Override(models.Fajr))
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		}

	case TickMsg:
		cmd := m.step()
		return m, tea.Batch(cmd, m.tick())

	case ScheduleMsg:
		m.applySchedule(msg)
	}

	return m, nil
}

// step runs one iteration: refresh the schedule if needed, update the next
// prayer and fire its cue when due.
func (m *Model) step() tea.Cmd {
	now := m.clock.Now()
	m.now = now
	today := clock.Today(now)

	var cmd tea.Cmd
	if m.needsFetch(now, today) {
		m.fetching = true
		m.fetchDate = today
		if m.schedule.IsZero() {
			m.status = constants.StatusFetching
		} else {
			m.status = constants.StatusUpdating
		}
		logger.Info("Fetching schedule", "date", today)
		cmd = m.fetch(now)
	}

	m.next = tracker.FindNext(m.schedule, now)
	if name, ok := m.controller.OnTick(m.next, today); ok {
		m.play(name)
	}
	return cmd
}

func (m Model) needsFetch(now time.Time, today string) bool {
	if m.fetching {
		return false
	}
	if today != m.fetchDate {
		return true
	}
	retry := m.cfg.Fetch.RetryInterval.Duration
	return m.fetchErr != nil && retry > 0 && now.Sub(m.failedAt) >= retry
}

func (m *Model) applySchedule(msg ScheduleMsg) {
	m.fetching = false
	if msg.Err != nil {
		m.fetchErr = msg.Err
		m.failedAt = m.clock.Now()
		m.status = "Failed to fetch times: " + apperrors.Kind(msg.Err)
		logger.Error("Schedule fetch failed", "date", msg.Date, "error", msg.Err)
		return
	}

	m.schedule = msg.Schedule
	m.fetchErr = nil
	m.failedAt = time.Time{}
	m.status = constants.StatusRunning
	logger.Info("Schedule updated", "date", msg.Date)
}

// play starts the cue for name. A failure is shown and logged but does not
// stop the loop.
func (m *Model) play(name models.PrayerName) {
	logger.Info("Playing adhan", "prayer", name)
	if err := m.player.Play(name); err != nil {
		logger.Error("Adhan playback failed", "prayer", name, "error", err)
		m.status = fmt.Sprintf("Adhan failed (%s): %s", name, apperrors.Kind(err))
		return
	}
	m.status = fmt.Sprintf("Playing Adhan (%s)", name)
}
