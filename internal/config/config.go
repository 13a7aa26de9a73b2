// Package config holds the static settings for the clock. A Config is loaded
// once at startup and passed by value to every component.
package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/julianstephens/adhanclock/internal/models"
	"github.com/julianstephens/adhanclock/internal/utils"
)

// Config is the complete application configuration.
type Config struct {
	AssetDir string         `toml:"asset_dir"` // audio cues and the icon live here
	Location LocationConfig `toml:"location"`
	Fetch    FetchConfig    `toml:"fetch"`
	Display  DisplayConfig  `toml:"display"`
	Audio    AudioConfig    `toml:"audio"`
	Log      LogConfig      `toml:"log"`
}

// LocationConfig selects where and how prayer times are computed.
type LocationConfig struct {
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
	Method    int     `toml:"method"` // timing service calculation method code
	Timezone  string  `toml:"timezone"`
	Label     string  `toml:"label"`
}

// FetchConfig controls the daily schedule lookup.
type FetchConfig struct {
	BaseURL       string   `toml:"base_url"`
	Timeout       Duration `toml:"timeout"`
	Attempts      int      `toml:"attempts"`
	RetryDelay    Duration `toml:"retry_delay"`
	RetryInterval Duration `toml:"retry_interval"` // 0 waits for the next day
}

// DisplayConfig describes the screen. Width and Height are in terminal cells;
// a 480x320 panel with an 8x16 console font is 60x20.
type DisplayConfig struct {
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	FPS          int     `toml:"fps"`
	Icon         string  `toml:"icon"`
	IconProtocol string  `toml:"icon_protocol"`
	Palette      Palette `toml:"palette"`
}

// Palette holds hex colors for the display.
type Palette struct {
	Background string `toml:"background"`
	Text       string `toml:"text"`
	Accent     string `toml:"accent"`
	Divider    string `toml:"divider"`
}

// AudioConfig maps prayers to the cue files played when they arrive.
type AudioConfig struct {
	Volume float64           `toml:"volume"`
	Muted  bool              `toml:"muted"`
	Cues   map[string]string `toml:"cues"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

var (
	hexColor      = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	iconProtocols = map[string]bool{"halfblocks": true, "kitty": true, "sixel": true, "iterm2": true, "none": true}
)

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	loc := c.Location
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return fmt.Errorf("location.latitude %v out of range [-90, 90]", loc.Latitude)
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return fmt.Errorf("location.longitude %v out of range [-180, 180]", loc.Longitude)
	}
	if loc.Method < 0 {
		return fmt.Errorf("location.method must not be negative")
	}
	if _, err := c.TimeLocation(); err != nil {
		return err
	}

	if c.Fetch.BaseURL == "" {
		return fmt.Errorf("fetch.base_url cannot be empty")
	}
	if c.Fetch.Attempts < 1 {
		return fmt.Errorf("fetch.attempts must be at least 1")
	}

	d := c.Display
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("display size %dx%d must be positive", d.Width, d.Height)
	}
	if d.FPS < 1 || d.FPS > 120 {
		return fmt.Errorf("display.fps %d out of range [1, 120]", d.FPS)
	}
	if !iconProtocols[d.IconProtocol] {
		return fmt.Errorf("display.icon_protocol %q is not one of halfblocks, kitty, sixel, iterm2, none", d.IconProtocol)
	}
	for name, color := range map[string]string{
		"background": d.Palette.Background,
		"text":       d.Palette.Text,
		"accent":     d.Palette.Accent,
		"divider":    d.Palette.Divider,
	} {
		if !hexColor.MatchString(color) {
			return fmt.Errorf("display.palette.%s %q is not a #RRGGBB color", name, color)
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %v out of range [0, 1]", c.Audio.Volume)
	}
	for key := range c.Audio.Cues {
		if _, err := models.ParsePrayerName(key); err != nil {
			return fmt.Errorf("audio.cues: %w", err)
		}
	}
	return nil
}

// TimeLocation loads the configured IANA time zone.
func (c Config) TimeLocation() (*time.Location, error) {
	loc, err := utils.LoadLocation(c.Location.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Location.Timezone, err)
	}
	return loc, nil
}

// TickInterval is the display refresh period.
func (c Config) TickInterval() time.Duration {
	if c.Display.FPS <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(c.Display.FPS)
}

// CueFile returns the path of the cue played for a prayer and whether one is
// configured. Cue keys are matched without regard to case.
func (c Config) CueFile(name models.PrayerName) (string, bool) {
	for key, file := range c.Audio.Cues {
		parsed, err := models.ParsePrayerName(key)
		if err == nil && parsed == name && file != "" {
			return c.AssetPath(file), true
		}
	}
	return "", false
}

// IconFile returns the path of the display icon, or "" when none is set.
func (c Config) IconFile() string {
	return c.AssetPath(c.Display.Icon)
}

// AssetPath resolves a file name against the asset directory.
func (c Config) AssetPath(name string) string {
	if name == "" || filepath.IsAbs(name) || c.AssetDir == "" {
		return name
	}
	return filepath.Join(c.AssetDir, name)
}
