package datetime

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 365 * day
)

// Each bucket applies while the distance is below D.
var relMagnitudes = []humanize.RelTimeMagnitude{
	{D: 45 * time.Second, Format: "a few seconds %s", DivBy: 1},
	{D: 90 * time.Second, Format: "a minute %s", DivBy: 1},
	{D: 45 * time.Minute, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 90 * time.Minute, Format: "an hour %s", DivBy: 1},
	{D: 22 * time.Hour, Format: "%d hours %s", DivBy: time.Hour},
	{D: 36 * time.Hour, Format: "a day %s", DivBy: 1},
	{D: 26 * day, Format: "%d days %s", DivBy: day},
	{D: 46 * day, Format: "a month %s", DivBy: 1},
	{D: 320 * day, Format: "%d months %s", DivBy: month},
	{D: 548 * day, Format: "a year %s", DivBy: 1},
	{D: math.MaxInt64, Format: "%d years %s", DivBy: year},
}

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Calendar answers date questions relative to its clock and location.
type Calendar struct {
	clock Clock
	loc   *time.Location
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(cal *Calendar) {
		if c != nil {
			cal.clock = c
		}
	}
}

// WithLocation sets the location used for day boundaries and parsing.
// Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(cal *Calendar) {
		if loc != nil {
			cal.loc = loc
		}
	}
}

// New returns a Calendar backed by the system clock in time.Local.
func New(opts ...Option) *Calendar {
	c := &Calendar{
		clock: SystemClock{},
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now returns the current instant in the calendar location.
func (c *Calendar) Now() time.Time {
	return c.clock.Now().In(c.loc)
}

// Today returns the start of the current day.
func (c *Calendar) Today() time.Time {
	return startOf(c.Now(), Day, c.loc)
}

// Tomorrow returns the start of the next day.
func (c *Calendar) Tomorrow() time.Time {
	return startOf(c.Now().AddDate(0, 0, 1), Day, c.loc)
}

// Yesterday returns the start of the previous day.
func (c *Calendar) Yesterday() time.Time {
	return startOf(c.Now().AddDate(0, 0, -1), Day, c.loc)
}

// IsBetween reports whether t lies between start and end, compared at unit
// granularity. Bounds may be given in either order. incl decides whether each
// bound itself counts; an unrecognised value includes both bounds.
func (c *Calendar) IsBetween(t, start, end time.Time, unit Unit, incl Inclusivity) bool {
	t = startOf(t, unit, c.loc)
	a := startOf(start, unit, c.loc)
	b := startOf(end, unit, c.loc)

	afterA := !t.Before(a)
	if incl.excludesStart() {
		afterA = t.After(a)
	}
	beforeB := !t.After(b)
	if incl.excludesEnd() {
		beforeB = t.Before(b)
	}
	if afterA && beforeB {
		return true
	}

	// reversed range
	beforeA := !t.After(a)
	if incl.excludesStart() {
		beforeA = t.Before(a)
	}
	afterB := !t.Before(b)
	if incl.excludesEnd() {
		afterB = t.After(b)
	}
	return beforeA && afterB
}

// FromNow describes t relative to now, e.g. "a few seconds ago",
// "3 days ago" or "in 2 hours". Counts are rounded to the nearest unit.
func (c *Calendar) FromNow(t time.Time) string {
	now := c.clock.Now()
	diff := now.Sub(t)
	future := diff < 0
	if future {
		diff = -diff
	}

	mag := relMagnitudes[len(relMagnitudes)-1]
	for _, m := range relMagnitudes {
		if diff < m.D {
			mag = m
			break
		}
	}
	if mag.DivBy > 1 {
		diff = diff.Round(mag.DivBy)
	}

	s := humanize.CustomRelTime(now.Add(-diff), now, "ago", "", []humanize.RelTimeMagnitude{mag})
	if future {
		return "in " + strings.TrimSpace(s)
	}
	return s
}

// IsToday reports whether t falls on the current day.
func (c *Calendar) IsToday(t time.Time) bool {
	return startOf(t, Day, c.loc).Equal(c.Today())
}

// IsPast reports whether t is before now.
func (c *Calendar) IsPast(t time.Time) bool {
	return t.Before(c.clock.Now())
}

// IsFuture reports whether t is after now.
func (c *Calendar) IsFuture(t time.Time) bool {
	return t.After(c.clock.Now())
}

// Parse reads an RFC 3339 timestamp, a local "2006-01-02T15:04:05" or
// "2006-01-02 15:04:05" timestamp, or a bare "2006-01-02" date. Inputs without
// an offset are interpreted in the calendar location.
func (c *Calendar) Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, c.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
