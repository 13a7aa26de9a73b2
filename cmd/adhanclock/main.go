package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/adhanclock/internal/cli"
	"github.com/julianstephens/adhanclock/internal/cli/prayers"
	"github.com/julianstephens/adhanclock/internal/cli/system"
	"github.com/julianstephens/adhanclock/internal/clock"
	"github.com/julianstephens/adhanclock/internal/config"
	"github.com/julianstephens/adhanclock/internal/constants"
	"github.com/julianstephens/adhanclock/internal/errors"
	"github.com/julianstephens/adhanclock/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Log debug output to stderr as well as the log file."`

	Run    system.RunCmd    `cmd:"" help:"Show the prayer clock." default:"1"`
	Times  prayers.TimesCmd `cmd:"" help:"Print the prayer times for a day."`
	Next   prayers.NextCmd  `cmd:"" help:"Print the next prayer and the time remaining."`
	Play   system.PlayCmd   `cmd:"" help:"Play an adhan cue."`
	Init   system.InitCmd   `cmd:"" help:"Create a config file interactively."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
}

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Prayer time clock for a small always-on display"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Log.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Log.Debug, Dir: cfg.Log.Dir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	// init and doctor report config problems themselves.
	tolerant := ctx.Command() == "init" || ctx.Command() == "doctor"
	if !tolerant {
		if err := cfg.Validate(); err != nil {
			errors.Fatalf("invalid config %s: %v", CLI.Config, err)
		}
	}

	appCtx, err := cli.NewContext(cfg, CLI.Config)
	if err != nil {
		if !tolerant {
			errors.Fatal(err)
		}
		appCtx = &cli.Context{Config: cfg, ConfigPath: CLI.Config, Clock: clock.NewReal(nil), Out: os.Stdout}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
