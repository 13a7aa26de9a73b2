package trigger

import (
	"testing"
	"time"

	"github.com/julianstephens/adhanclock/internal/models"
	"github.com/julianstephens/adhanclock/internal/tracker"
)

func due(name models.PrayerName) *models.NextEvent {
	return &models.NextEvent{Name: name}
}

func TestShouldReset(t *testing.T) {
	tests := []struct {
		name  string
		prev  string
		today string
		want  bool
	}{
		{"same day", "2025-03-09", "2025-03-09", false},
		{"next day", "2025-03-09", "2025-03-10", true},
		{"clock moved back", "2025-03-10", "2025-03-09", true},
		{"uninitialized", "", "2025-03-09", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldReset(tt.prev, tt.today); got != tt.want {
				t.Errorf("ShouldReset(%q, %q) = %v, want %v", tt.prev, tt.today, got, tt.want)
			}
		})
	}
}

func TestOnTickFiresOncePerDay(t *testing.T) {
	c := New("2025-03-09")
	fired := 0
	for i := 0; i < 1000; i++ {
		if name, ok := c.OnTick(due(models.Dhuhr), "2025-03-09"); ok {
			if name != models.Dhuhr {
				t.Fatalf("fired %s, want Dhuhr", name)
			}
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("expected exactly one fire, got %d", fired)
	}
	if last, ok := c.LastFired(); !ok || last != models.Dhuhr {
		t.Errorf("LastFired() = %v, %v; want Dhuhr, true", last, ok)
	}
}

func TestOnTickIgnoresNotDue(t *testing.T) {
	c := New("2025-03-09")
	tests := []struct {
		name string
		next *models.NextEvent
	}{
		{"none remaining", nil},
		{"one minute left", &models.NextEvent{Name: models.Asr, Minutes: 1}},
		{"hours left", &models.NextEvent{Name: models.Asr, Hours: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if name, ok := c.OnTick(tt.next, "2025-03-09"); ok {
				t.Errorf("unexpected fire for %s", name)
			}
		})
	}
	if _, ok := c.LastFired(); ok {
		t.Error("LastFired should be unset")
	}
}

func TestOnTickDayRolloverResets(t *testing.T) {
	c := New("2025-03-09")
	if _, ok := c.OnTick(due(models.Asr), "2025-03-09"); !ok {
		t.Fatal("expected Asr to fire on day one")
	}
	if _, ok := c.OnTick(due(models.Asr), "2025-03-09"); ok {
		t.Fatal("Asr fired twice on day one")
	}
	if _, ok := c.OnTick(due(models.Asr), "2025-03-10"); !ok {
		t.Fatal("expected Asr to fire again on day two")
	}
	if got := c.StateDate(); got != "2025-03-10" {
		t.Errorf("StateDate() = %s, want 2025-03-10", got)
	}
}

func TestOnTickRolloverWithoutEventClearsState(t *testing.T) {
	c := New("2025-03-09")
	c.OnTick(due(models.Isha), "2025-03-09")
	c.OnTick(nil, "2025-03-10")
	if _, ok := c.LastFired(); ok {
		t.Error("expected LastFired to be cleared on a new day")
	}
}

func TestOverrideDoesNotTouchGate(t *testing.T) {
	c := New("2025-03-09")
	if got := c.Override(models.Fajr); got != models.Fajr {
		t.Fatalf("Override() = %s, want Fajr", got)
	}
	if _, ok := c.LastFired(); ok {
		t.Fatal("Override must not set LastFired")
	}
	if name, ok := c.OnTick(due(models.Fajr), "2025-03-09"); !ok || name != models.Fajr {
		t.Errorf("expected natural Fajr fire after override, got %v, %v", name, ok)
	}

	// An override after a natural fire leaves the gate closed.
	c.Override(models.Fajr)
	if _, ok := c.OnTick(due(models.Fajr), "2025-03-09"); ok {
		t.Error("Fajr fired twice after override")
	}
}

func TestDhuhrScenario(t *testing.T) {
	cst := time.FixedZone("CST", -6*60*60)
	day := func(h, m, s int) time.Time { return time.Date(2025, 3, 9, h, m, s, 0, cst) }
	schedule := models.Schedule{
		Date: "2025-03-09",
		Times: [models.PrayerCount]time.Time{
			day(5, 30, 0), day(12, 15, 0), day(15, 45, 0), day(18, 20, 0), day(19, 50, 0),
		},
	}

	c := New("2025-03-09")
	var fires []models.PrayerName
	for now := day(12, 14, 30); now.Before(day(12, 15, 30)); now = now.Add(time.Second / 30) {
		next := tracker.FindNext(schedule, now)
		if !now.Before(day(12, 15, 0)) && next.Name != models.Asr {
			t.Fatalf("at %s expected Asr next, got %s", now.Format("15:04:05"), next.Name)
		}
		if name, ok := c.OnTick(next, "2025-03-09"); ok {
			fires = append(fires, name)
		}
	}
	if len(fires) != 1 || fires[0] != models.Dhuhr {
		t.Errorf("fires = %v, want [Dhuhr]", fires)
	}
}
