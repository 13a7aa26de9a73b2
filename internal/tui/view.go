package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/adhanclock/internal/constants"
	"github.com/julianstephens/adhanclock/internal/models"
	"github.com/julianstephens/adhanclock/internal/utils"
)

const (
	noTime       = "--:--"
	allPassed    = "All prayers for today have passed"
	sideMargin   = 2
	rowNameWidth = 10
)

// Frame is everything shown on one screen refresh.
type Frame struct {
	Label     string
	Date      string
	Clock     string
	Next      string
	Remaining string
	Rows      []PrayerRow
	Icon      string
	Status    string
	Help      string
}

// PrayerRow is one line of the daily list.
type PrayerRow struct {
	Name string
	Time string
	Next bool
}

// BuildFrame derives the display text for now. A zero schedule shows
// placeholders instead of times.
func BuildFrame(label string, now time.Time, schedule models.Schedule, next *models.NextEvent, status string) Frame {
	f := Frame{
		Label:  label,
		Date:   now.Format(constants.LongDateFormat),
		Clock:  now.Format(constants.ClockFormat),
		Status: status,
	}

	if next == nil {
		f.Next = allPassed
	} else {
		f.Next = "Next: " + next.Name.String() + " at " + utils.FormatClock(next.At)
		f.Remaining = utils.FormatRemaining(next.Hours, next.Minutes)
	}

	known := !schedule.IsZero()
	for _, name := range models.Prayers {
		row := PrayerRow{Name: name.String(), Time: noTime}
		if known {
			row.Time = utils.FormatClock(schedule.At(name))
		}
		row.Next = next != nil && next.Name == name
		f.Rows = append(f.Rows, row)
	}
	return f
}

// Render lays the frame out on a width x height cell screen.
func (s Styles) Render(f Frame, width, height int) string {
	inner := width - 2*sideMargin
	if inner < 1 {
		inner = width
	}

	center := func(st lipgloss.Style, text string) string {
		return st.Width(width).Align(lipgloss.Center).Render(text)
	}
	divider := s.Screen.Width(width).Align(lipgloss.Center).
		Render(s.Divider.Render(strings.Repeat("─", inner)))
	blank := s.Screen.Width(width).Render("")

	top := []string{
		center(s.Header, f.Label),
		center(s.Text, f.Date),
		divider,
		blank,
		center(s.Clock, f.Clock),
		blank,
		center(s.Accent, f.Next),
		center(s.Text, f.Remaining),
		blank,
	}

	bottom := []string{divider, center(s.Status, f.Status)}
	if f.Help != "" {
		bottom = append([]string{center(s.Status, f.Help)}, bottom...)
	}

	list := s.renderList(f, width)

	filler := height - len(top) - lipgloss.Height(list) - len(bottom)
	lines := append([]string{}, top...)
	lines = append(lines, list)
	for i := 0; i < filler; i++ {
		lines = append(lines, blank)
	}
	lines = append(lines, bottom...)

	screen := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return s.Screen.Width(width).Height(height).MaxHeight(height).Render(screen)
}

// renderList draws prayer names on the left, times on the right and the icon
// between them.
func (s Styles) renderList(f Frame, width int) string {
	names := make([]string, 0, len(f.Rows))
	times := make([]string, 0, len(f.Rows))
	for _, row := range f.Rows {
		st := s.Text
		if row.Next {
			st = s.NextRow
		}
		names = append(names, st.Width(rowNameWidth).Render(row.Name))
		times = append(times, st.Width(rowNameWidth).Align(lipgloss.Right).Render(row.Time))
	}

	margin := s.Screen.Width(sideMargin).Render("")
	left := lipgloss.JoinVertical(lipgloss.Left, names...)
	right := lipgloss.JoinVertical(lipgloss.Left, times...)

	middleWidth := width - 2*sideMargin - 2*rowNameWidth
	if middleWidth < 0 {
		middleWidth = 0
	}
	middle := s.Screen.Width(middleWidth).Height(len(f.Rows)).
		Align(lipgloss.Center).Render(f.Icon)

	return lipgloss.JoinHorizontal(lipgloss.Top, margin, left, middle, right, margin)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	f := BuildFrame(m.cfg.Location.Label, m.now, m.schedule, m.next, m.status)
	f.Icon = m.icon
	if m.showHelp {
		f.Help = m.help.View(m.keys)
	}

	screen := m.styles.Render(f, m.cfg.Display.Width, m.cfg.Display.Height)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, screen,
			lipgloss.WithWhitespaceBackground(m.styles.bg))
	}
	return screen
}
