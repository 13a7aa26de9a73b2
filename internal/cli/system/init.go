package system

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/adhanclock/internal/backup"
	"github.com/julianstephens/adhanclock/internal/cli"
	"github.com/julianstephens/adhanclock/internal/config"
	"github.com/julianstephens/adhanclock/internal/logger"
	"github.com/julianstephens/adhanclock/internal/utils"
)

type InitCmd struct {
	Force bool `help:"Overwrite an existing config file."`
}

// LocationFormModel holds the raw form input.
type LocationFormModel struct {
	Label     string
	Latitude  string
	Longitude string
	Timezone  string
	Method    int
}

// calculationMethods are the timing service's method codes.
var calculationMethods = []huh.Option[int]{
	huh.NewOption("Islamic Society of North America (ISNA)", 2),
	huh.NewOption("Muslim World League", 3),
	huh.NewOption("Umm Al-Qura, Makkah", 4),
	huh.NewOption("Egyptian General Authority of Survey", 5),
	huh.NewOption("University of Islamic Sciences, Karachi", 1),
	huh.NewOption("Institute of Geophysics, Tehran", 7),
	huh.NewOption("Gulf Region", 8),
	huh.NewOption("Kuwait", 9),
	huh.NewOption("Qatar", 10),
	huh.NewOption("Majlis Ugama Islam Singapura", 11),
	huh.NewOption("Union Organization Islamic de France", 12),
	huh.NewOption("Diyanet İşleri Başkanlığı, Turkey", 13),
	huh.NewOption("Spiritual Administration of Muslims of Russia", 14),
	huh.NewOption("Moonsighting Committee Worldwide", 15),
}

// runLocationForm is replaced in tests.
var runLocationForm = func(fm *LocationFormModel) error {
	return NewLocationForm(fm).Run()
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path, err := config.ExpandHome(ctx.ConfigPath)
	if err != nil {
		return err
	}

	existing := false
	if _, err := os.Stat(path); err == nil {
		if !c.Force {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		}
		existing = true
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing config: %w", err)
	}

	fm := newLocationFormModel(ctx.Config.Location)
	if err := runLocationForm(fm); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			ctx.Println("Cancelled.")
			return nil
		}
		return err
	}

	cfg, err := fm.Apply(ctx.Config)
	if err != nil {
		return err
	}
	if existing {
		backupPath, err := backup.NewManager(path).CreateBackup()
		if err != nil {
			// Keep going; the user asked to overwrite.
			logger.Warn("Config backup failed", "error", err)
			ctx.Printf("⚠ Could not back up the existing config: %v\n", err)
		} else {
			ctx.Printf("Backed up existing config to: %s\n", backupPath)
		}
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	ctx.Printf("Wrote config to: %s\n", path)
	ctx.Printf("Place the adhan audio files and icon in: %s\n", cfg.AssetDir)
	return nil
}

func newLocationFormModel(loc config.LocationConfig) *LocationFormModel {
	return &LocationFormModel{
		Label:     loc.Label,
		Latitude:  strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		Longitude: strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
		Timezone:  loc.Timezone,
		Method:    loc.Method,
	}
}

// Apply copies the form values into cfg and validates the result.
func (fm *LocationFormModel) Apply(cfg config.Config) (config.Config, error) {
	lat, err := parseCoordinate(fm.Latitude, 90)
	if err != nil {
		return cfg, fmt.Errorf("latitude: %w", err)
	}
	lon, err := parseCoordinate(fm.Longitude, 180)
	if err != nil {
		return cfg, fmt.Errorf("longitude: %w", err)
	}

	cfg.Location = config.LocationConfig{
		Latitude:  lat,
		Longitude: lon,
		Method:    fm.Method,
		Timezone:  strings.TrimSpace(fm.Timezone),
		Label:     strings.TrimSpace(fm.Label),
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseCoordinate(s string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("%v out of range [%v, %v]", v, -limit, limit)
	}
	return v, nil
}

// NewLocationForm creates the form used by init.
func NewLocationForm(fm *LocationFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Location label").
				Description("Shown at the top of the clock").
				Value(&fm.Label),
			huh.NewInput().
				Title("Latitude").
				Value(&fm.Latitude).
				Validate(func(s string) error {
					_, err := parseCoordinate(s, 90)
					return err
				}),
			huh.NewInput().
				Title("Longitude").
				Value(&fm.Longitude).
				Validate(func(s string) error {
					_, err := parseCoordinate(s, 180)
					return err
				}),
			huh.NewInput().
				Title("Timezone").
				Description("IANA name, e.g. America/Chicago").
				Value(&fm.Timezone).
				Validate(func(s string) error {
					if _, err := utils.LoadLocation(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("unknown timezone")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Calculation method").
				Options(calculationMethods...).
				Value(&fm.Method),
		),
	).WithTheme(huh.ThemeDracula())
}
