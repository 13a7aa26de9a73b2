package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/adhanclock/internal/config"
	"github.com/julianstephens/adhanclock/internal/models"
	"github.com/julianstephens/adhanclock/internal/tracker"
)

func TestBuildFrame(t *testing.T) {
	schedule := testSchedule(day1)

	tests := []struct {
		name          string
		hour, minute  int
		wantNext      string
		wantRemaining string
		nextRow       string
	}{
		{"morning", 10, 5, "Next: Dhuhr at 12:15 PM", "2 hour(s), 10 min remaining", "Dhuhr"},
		{"under an hour", 19, 20, "Next: Isha at 7:50 PM", "30 min remaining", "Isha"},
		{"all passed", 21, 0, allPassed, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := at(day1, tt.hour, tt.minute, 0)
			f := BuildFrame("Home", now, schedule, tracker.FindNext(schedule, now), "Running")

			if f.Next != tt.wantNext {
				t.Errorf("Next = %q, want %q", f.Next, tt.wantNext)
			}
			if f.Remaining != tt.wantRemaining {
				t.Errorf("Remaining = %q, want %q", f.Remaining, tt.wantRemaining)
			}
			if len(f.Rows) != models.PrayerCount {
				t.Fatalf("got %d rows", len(f.Rows))
			}
			for _, row := range f.Rows {
				if row.Next != (row.Name == tt.nextRow) {
					t.Errorf("row %s Next = %v", row.Name, row.Next)
				}
			}
		})
	}
}

func TestBuildFrameFormats(t *testing.T) {
	now := at(day1, 15, 4, 5)
	f := BuildFrame("Home", now, testSchedule(day1), nil, "Running")

	if f.Date != "Monday, Mar 10, 2025" {
		t.Errorf("Date = %q", f.Date)
	}
	if f.Clock != "3:04:05 PM" {
		t.Errorf("Clock = %q", f.Clock)
	}
	if f.Rows[0].Time != "5:30 AM" {
		t.Errorf("Fajr time = %q", f.Rows[0].Time)
	}
}

func TestBuildFrameUnknownSchedule(t *testing.T) {
	f := BuildFrame("Home", at(day1, 8, 0, 0), models.Schedule{}, nil, "Failed to fetch times: network")
	for _, row := range f.Rows {
		if row.Time != noTime {
			t.Errorf("row %s time = %q, want placeholder", row.Name, row.Time)
		}
	}
}

func TestRenderFixedSize(t *testing.T) {
	cfg := config.DefaultConfig()
	styles := NewStyles(cfg.Display.Palette)
	now := at(day1, 10, 5, 0)
	schedule := testSchedule(day1)
	f := BuildFrame("77407 Richmond, TX", now, schedule, tracker.FindNext(schedule, now), "Running")

	out := styles.Render(f, cfg.Display.Width, cfg.Display.Height)

	if h := lipgloss.Height(out); h != cfg.Display.Height {
		t.Errorf("height = %d, want %d", h, cfg.Display.Height)
	}
	if w := lipgloss.Width(out); w != cfg.Display.Width {
		t.Errorf("width = %d, want %d", w, cfg.Display.Width)
	}
	for _, want := range []string{"77407 Richmond, TX", "Next: Dhuhr at 12:15 PM", "Maghrib", "7:50 PM", "Running"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[len(lines)-1], "Running") {
		t.Error("status should be on the last line")
	}
}

func TestIconSize(t *testing.T) {
	cfg := config.DefaultConfig()
	cols, rows := IconSize(cfg)
	if rows != models.PrayerCount {
		t.Errorf("rows = %d", rows)
	}
	if cols <= 0 || cols > cfg.Display.Width {
		t.Errorf("cols = %d", cols)
	}
}
