package tracker

import (
	"testing"
	"time"

	"github.com/julianstephens/adhanclock/internal/models"
)

var cst = time.FixedZone("CST", -6*60*60)

func at(hour, min, sec int) time.Time {
	return time.Date(2025, 3, 9, hour, min, sec, 0, cst)
}

func testSchedule() models.Schedule {
	return models.Schedule{
		Date: "2025-03-09",
		Times: [models.PrayerCount]time.Time{
			at(5, 30, 0),
			at(12, 15, 0),
			at(15, 45, 0),
			at(18, 20, 0),
			at(19, 50, 0),
		},
	}
}

func TestFindNext(t *testing.T) {
	tests := []struct {
		name        string
		now         time.Time
		wantNone    bool
		wantName    models.PrayerName
		wantHours   int
		wantMinutes int
	}{
		{
			name:        "before first prayer",
			now:         at(3, 25, 0),
			wantName:    models.Fajr,
			wantHours:   2,
			wantMinutes: 5,
		},
		{
			name:        "seconds truncate toward zero",
			now:         at(3, 24, 1),
			wantName:    models.Fajr,
			wantHours:   2,
			wantMinutes: 5,
		},
		{
			name:        "exactly at fajr excludes fajr",
			now:         at(5, 30, 0),
			wantName:    models.Dhuhr,
			wantHours:   6,
			wantMinutes: 45,
		},
		{
			name:        "thirty seconds before dhuhr",
			now:         at(12, 14, 30),
			wantName:    models.Dhuhr,
			wantHours:   0,
			wantMinutes: 0,
		},
		{
			name:        "dhuhr reached moves to asr",
			now:         at(12, 15, 0),
			wantName:    models.Asr,
			wantHours:   3,
			wantMinutes: 30,
		},
		{
			name:        "between maghrib and isha",
			now:         at(18, 20, 1),
			wantName:    models.Isha,
			wantHours:   1,
			wantMinutes: 29,
		},
		{
			name:     "exactly at isha",
			now:      at(19, 50, 0),
			wantNone: true,
		},
		{
			name:     "after isha",
			now:      at(23, 59, 59),
			wantNone: true,
		},
	}

	schedule := testSchedule()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindNext(schedule, tt.now)
			if tt.wantNone {
				if got != nil {
					t.Fatalf("FindNext() = %+v, want none", *got)
				}
				return
			}
			if got == nil {
				t.Fatal("FindNext() = nil, want an event")
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %s, want %s", got.Name, tt.wantName)
			}
			if got.Hours != tt.wantHours || got.Minutes != tt.wantMinutes {
				t.Errorf("remaining = %dh %dm, want %dh %dm", got.Hours, got.Minutes, tt.wantHours, tt.wantMinutes)
			}
			if !got.At.Equal(schedule.At(tt.wantName)) {
				t.Errorf("At = %v, want %v", got.At, schedule.At(tt.wantName))
			}
		})
	}
}

func TestFindNextRemainingMatchesFloor(t *testing.T) {
	schedule := testSchedule()
	first := schedule.At(models.Fajr)
	for offset := time.Duration(1); offset < 5*time.Hour; offset += 7*time.Minute + 13*time.Second {
		now := first.Add(-offset)
		got := FindNext(schedule, now)
		if got == nil || got.Name != models.Fajr {
			t.Fatalf("offset %v: expected Fajr, got %+v", offset, got)
		}
		wantTotal := int(offset.Seconds()) / 60
		if got.Hours*60+got.Minutes != wantTotal || got.Minutes >= 60 {
			t.Errorf("offset %v: got %dh %dm, want %d total minutes", offset, got.Hours, got.Minutes, wantTotal)
		}
	}
}

func TestFindNextIsPure(t *testing.T) {
	schedule := testSchedule()
	now := at(9, 0, 0)
	first := FindNext(schedule, now)
	second := FindNext(schedule, now)
	if *first != *second {
		t.Errorf("repeated calls differ: %+v vs %+v", *first, *second)
	}
}

func TestFindNextEmptySchedule(t *testing.T) {
	if got := FindNext(models.Schedule{}, at(4, 0, 0)); got != nil {
		t.Errorf("expected none for placeholder schedule, got %+v", *got)
	}
}
