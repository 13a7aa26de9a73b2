// Package timings fetches a day's prayer schedule from the Aladhan timings API.
package timings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/adhanclock/internal/config"
	"github.com/julianstephens/adhanclock/internal/constants"
	apperrors "github.com/julianstephens/adhanclock/internal/errors"
	"github.com/julianstephens/adhanclock/internal/logger"
	"github.com/julianstephens/adhanclock/internal/models"
	"github.com/julianstephens/adhanclock/internal/utils"
)

// Provider returns the prayer schedule for a calendar date.
type Provider interface {
	Fetch(ctx context.Context, date time.Time) (models.Schedule, error)
}

// Client is an Aladhan API client for one fixed location.
type Client struct {
	baseURL    string
	httpClient *http.Client
	location   config.LocationConfig
	tz         *time.Location
	attempts   int
	retryDelay time.Duration
}

// NewClient creates a client for the configured location.
func NewClient(cfg config.Config) (*Client, error) {
	tz, err := cfg.TimeLocation()
	if err != nil {
		return nil, err
	}
	attempts := cfg.Fetch.Attempts
	if attempts < 1 {
		attempts = 1
	}
	timeout := cfg.Fetch.Timeout.Duration
	if timeout <= 0 {
		timeout = constants.FetchTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.Fetch.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		location:   cfg.Location,
		tz:         tz,
		attempts:   attempts,
		retryDelay: cfg.Fetch.RetryDelay.Duration,
	}, nil
}

type timingsResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

// Fetch returns the schedule for date's calendar day in the configured zone.
// Network failures are retried with a doubling delay; malformed responses are
// not.
func (c *Client) Fetch(ctx context.Context, date time.Time) (models.Schedule, error) {
	day := date.In(c.tz)
	delay := c.retryDelay

	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		schedule, err := c.fetchOnce(ctx, day)
		if err == nil {
			return schedule, nil
		}
		lastErr = err
		if !isRetryable(err) || attempt == c.attempts {
			break
		}

		logger.Warn("Schedule fetch failed, retrying", "attempt", attempt, "delay", delay, "error", err)
		select {
		case <-ctx.Done():
			return models.Schedule{}, fmt.Errorf("fetch cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}
	return models.Schedule{}, lastErr
}

func isRetryable(err error) bool {
	return errors.Is(err, apperrors.ErrNetwork)
}

func (c *Client) fetchOnce(ctx context.Context, day time.Time) (models.Schedule, error) {
	body, err := c.doRequest(ctx, c.timingsURL(day))
	if err != nil {
		return models.Schedule{}, err
	}

	var resp timingsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.Schedule{}, fmt.Errorf("decode timings: %v: %w", err, apperrors.ErrResponseParse)
	}
	return ParseTimings(resp.Data.Timings, day, c.tz)
}

func (c *Client) timingsURL(day time.Time) string {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(c.location.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(c.location.Longitude, 'f', -1, 64))
	params.Set("method", strconv.Itoa(c.location.Method))
	params.Set("timezonestring", c.tz.String())
	params.Set("date", day.Format(constants.LookupDateFormat))
	return c.baseURL + "/timings?" + params.Encode()
}

// doRequest performs a GET and returns the body of a 200 response.
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.AppName+"/"+constants.Version)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %v: %w", err, apperrors.ErrNetwork)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %v: %w", err, apperrors.ErrNetwork)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error %d: %s: %w", resp.StatusCode, truncate(string(body), 200), apperrors.ErrNetwork)
	}
	return body, nil
}

// ParseTimings builds a schedule from the service's name → "HH:MM" map,
// placing every time on day's date in loc.
func ParseTimings(timings map[string]string, day time.Time, loc *time.Location) (models.Schedule, error) {
	day = day.In(loc)
	schedule := models.Schedule{Date: day.Format(constants.DateFormat)}
	for _, name := range models.Prayers {
		raw, ok := timings[name.String()]
		if !ok {
			return models.Schedule{}, fmt.Errorf("timings.%s missing: %w", name, apperrors.ErrResponseParse)
		}
		at, err := utils.CombineDateAndTime(day, raw, loc)
		if err != nil {
			return models.Schedule{}, fmt.Errorf("timings.%s %q: %v: %w", name, raw, err, apperrors.ErrResponseParse)
		}
		schedule.Times[name] = at
	}
	if err := schedule.Validate(); err != nil {
		return models.Schedule{}, fmt.Errorf("%v: %w", err, apperrors.ErrResponseParse)
	}
	return schedule, nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
