package constants

import "time"

const (
	AppName           = "adhanclock"
	DefaultConfigPath = "~/.config/adhanclock/config.toml"
	Version           = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// LookupDateFormat is the date format the timing service expects (DD-MM-YYYY)
	LookupDateFormat = "02-01-2006"

	// Display formats
	ClockFormat    = "3:04:05 PM"
	ShortFormat    = "3:04 PM"
	LongDateFormat = "Monday, Jan 02, 2006"

	// Status lines
	StatusFetching = "Fetching today's times..."
	StatusUpdating = "Updating times..."
	StatusRunning  = "Running"

	// Fetch constants
	FetchMaxAttempts   = 3
	FetchRetryDelay    = 2 * time.Second
	FetchTimeout       = 10 * time.Second
	FetchRetryInterval = 15 * time.Minute

	// Audio
	SpeakerSampleRate = 44100
	ResampleQuality   = 4
)
