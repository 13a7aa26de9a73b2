package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/adhanclock/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) as midnight in loc.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(constants.DateFormat, dateStr, loc)
}

// ParseClockTime parses a time of day such as "05:12" or "05:12 (CST)". Any
// text after the first field is ignored.
func ParseClockTime(s string) (hour, minute int, err error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, 0, fmt.Errorf("empty time")
	}
	t, err := time.Parse(constants.TimeFormat, fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}
	return t.Hour(), t.Minute(), nil
}

// CombineDateAndTime combines a date and a time-of-day string into a single
// time.Time in loc. Only the date part of date is used.
func CombineDateAndTime(date time.Time, timeStr string, loc *time.Location) (time.Time, error) {
	hour, minute, err := ParseClockTime(timeStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc), nil
}

// FormatClock formats t in 12-hour form without a leading zero, e.g. "5:30 AM".
func FormatClock(t time.Time) string {
	return t.Format(constants.ShortFormat)
}

// FormatRemaining renders the hours and minutes left until the next prayer.
func FormatRemaining(hours, minutes int) string {
	if hours > 0 {
		return fmt.Sprintf("%d hour(s), %d min remaining", hours, minutes)
	}
	return fmt.Sprintf("%d min remaining", minutes)
}
