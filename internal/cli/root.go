package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/adhanclock/internal/clock"
	"github.com/julianstephens/adhanclock/internal/config"
	"github.com/julianstephens/adhanclock/internal/constants"
	"github.com/julianstephens/adhanclock/internal/timings"
	"github.com/julianstephens/adhanclock/internal/utils"
)

type Context struct {
	Config     config.Config
	ConfigPath string
	Clock      clock.Clock
	Provider   timings.Provider
	Out        io.Writer
}

// NewContext wires the real clock and timing client for cfg.
func NewContext(cfg config.Config, configPath string) (*Context, error) {
	loc, err := cfg.TimeLocation()
	if err != nil {
		return nil, err
	}
	client, err := timings.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &Context{
		Config:     cfg,
		ConfigPath: configPath,
		Clock:      clock.NewReal(loc),
		Provider:   client,
		Out:        os.Stdout,
	}, nil
}

// Printf writes formatted output for a command.
func (c *Context) Printf(format string, args ...interface{}) {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, format, args...)
}

// Println writes a line of output for a command.
func (c *Context) Println(args ...interface{}) {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintln(out, args...)
}

// ParseDate resolves "today" or a YYYY-MM-DD date in the configured zone.
func (c *Context) ParseDate(s string) (time.Time, error) {
	if s == "" || s == "today" {
		return c.Clock.Now(), nil
	}
	loc, err := c.Config.TimeLocation()
	if err != nil {
		return time.Time{}, err
	}
	date, err := utils.ParseDateInLocation(s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use %s or 'today': %w", constants.DateFormat, err)
	}
	return date, nil
}
