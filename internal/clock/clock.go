// Package clock provides the wall-clock time source for the display loop.
// Core logic never calls time.Now directly so that tests can pin the time.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Real returns the system time converted to a fixed location.
type Real struct {
	Location *time.Location
}

// NewReal returns a Clock reporting wall-clock time in loc.
func NewReal(loc *time.Location) Real {
	if loc == nil {
		loc = time.Local
	}
	return Real{Location: loc}
}

// Now returns the current system time in the clock's location.
func (c Real) Now() time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

// Fixed always returns the same instant.
type Fixed struct {
	T time.Time
}

// Now returns the fixed time.
func (c Fixed) Now() time.Time {
	return c.T
}

// Func wraps a function as a Clock.
type Func func() time.Time

// Now calls the wrapped function.
func (f Func) Now() time.Time {
	return f()
}

// Today returns the calendar date of t as YYYY-MM-DD in t's own location.
func Today(t time.Time) string {
	return t.Format("2006-01-02")
}
