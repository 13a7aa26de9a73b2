package models

import (
	"fmt"
	"strings"
)

// PrayerName identifies one of the five daily prayers. The numeric order is the
// chronological order within a day.
type PrayerName int

const (
	Fajr PrayerName = iota
	Dhuhr
	Asr
	Maghrib
	Isha
)

// PrayerCount is the number of prayers in a daily schedule.
const PrayerCount = 5

// Prayers lists every prayer in chronological order.
var Prayers = [PrayerCount]PrayerName{Fajr, Dhuhr, Asr, Maghrib, Isha}

var prayerLabels = [PrayerCount]string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

func (p PrayerName) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PrayerName(%d)", int(p))
	}
	return prayerLabels[p]
}

// Valid reports whether p is one of the five known prayers.
func (p PrayerName) Valid() bool {
	return p >= Fajr && p <= Isha
}

// ParsePrayerName resolves a prayer label, ignoring case and surrounding space.
func ParsePrayerName(s string) (PrayerName, error) {
	s = strings.TrimSpace(s)
	for i, label := range prayerLabels {
		if strings.EqualFold(label, s) {
			return PrayerName(i), nil
		}
	}
	return 0, fmt.Errorf("unknown prayer %q (expected one of %s)", s, strings.Join(prayerLabels[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (p PrayerName) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid prayer name %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PrayerName) UnmarshalText(text []byte) error {
	parsed, err := ParsePrayerName(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
