package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/julianstephens/adhanclock/internal/constants"
	"github.com/julianstephens/adhanclock/internal/models"
)

// Load reads configuration from path. A missing file yields DefaultConfig.
// Relative asset and log directories resolve against the file's directory.
// Environment overrides are applied last.
func Load(path string) (Config, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		cfg, err = LoadFromReader(f)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		if err := applyEnvOverrides(&cfg); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}

	baseDir := filepath.Dir(path)
	cfg.AssetDir = resolveDir(cfg.AssetDir, baseDir)
	cfg.Log.Dir = resolveDir(cfg.Log.Dir, baseDir)
	return cfg, nil
}

// LoadFromReader decodes TOML on top of the defaults and applies
// environment overrides.
func LoadFromReader(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	cfg.Audio.Cues = nil
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Audio.Cues = mergeCues(defaultCues(), cfg.Audio.Cues)
	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating parent directories.
func Save(path string, cfg Config) error {
	path, err := ExpandHome(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment. Missing files are skipped; variables already set win.
func LoadDotEnv(paths ...string) error {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// DefaultConfig returns the configuration for Richmond, TX on a 480x320 panel.
func DefaultConfig() Config {
	return Config{
		Location: LocationConfig{
			Latitude:  29.6585,
			Longitude: -95.7336,
			Method:    2,
			Timezone:  "America/Chicago",
			Label:     "77407 – Richmond, TX",
		},
		Fetch: FetchConfig{
			BaseURL:       "https://api.aladhan.com/v1",
			Timeout:       Duration{constants.FetchTimeout},
			Attempts:      constants.FetchMaxAttempts,
			RetryDelay:    Duration{constants.FetchRetryDelay},
			RetryInterval: Duration{constants.FetchRetryInterval},
		},
		Display: DisplayConfig{
			Width:        60,
			Height:       20,
			FPS:          30,
			Icon:         "adhan_icon_final.png",
			IconProtocol: "halfblocks",
			Palette: Palette{
				Background: "#0D0D0D",
				Text:       "#F2F2F2",
				Accent:     "#009688",
				Divider:    "#3C3C3C",
			},
		},
		Audio: AudioConfig{
			Volume: 1.0,
			Cues:   defaultCues(),
		},
	}
}

// defaultCues gives Fajr its own adhan; the other prayers share one.
func defaultCues() map[string]string {
	return map[string]string{
		models.Fajr.String():    "fajr_adhan_final.mp3",
		models.Dhuhr.String():   "normal_adhan_final.mp3",
		models.Asr.String():     "normal_adhan_final.mp3",
		models.Maghrib.String(): "normal_adhan_final.mp3",
		models.Isha.String():    "normal_adhan_final.mp3",
	}
}

// mergeCues overlays user cues on base, folding keys like "fajr" onto the
// canonical prayer label. Unknown keys are kept for Validate to report.
func mergeCues(base, user map[string]string) map[string]string {
	for key, file := range user {
		if name, err := models.ParsePrayerName(key); err == nil {
			key = name.String()
		}
		base[key] = file
	}
	return base
}

// applyEnvOverrides lets deployment environments pin the location without
// editing the file.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("ADHAN_LATITUDE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid ADHAN_LATITUDE %q: %w", v, err)
		}
		cfg.Location.Latitude = f
	}
	if v := os.Getenv("ADHAN_LONGITUDE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid ADHAN_LONGITUDE %q: %w", v, err)
		}
		cfg.Location.Longitude = f
	}
	if v := os.Getenv("ADHAN_METHOD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ADHAN_METHOD %q: %w", v, err)
		}
		cfg.Location.Method = n
	}
	if v := os.Getenv("ADHAN_TIMEZONE"); v != "" {
		cfg.Location.Timezone = v
	}
	if v := os.Getenv("ADHAN_LABEL"); v != "" {
		cfg.Location.Label = v
	}
	if v := os.Getenv("ADHAN_ASSET_DIR"); v != "" {
		cfg.AssetDir = v
	}
	if v := os.Getenv("ADHAN_MUTED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid ADHAN_MUTED %q: %w", v, err)
		}
		cfg.Audio.Muted = b
	}
	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func resolveDir(dir, base string) string {
	if dir == "" {
		return base
	}
	if expanded, err := ExpandHome(dir); err == nil {
		dir = expanded
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}
