package datetime

import "time"

var std = New()

// Now returns the current local time.
func Now() time.Time { return std.Now() }

// Today returns the start of the current local day.
func Today() time.Time { return std.Today() }

// Tomorrow returns the start of the next local day.
func Tomorrow() time.Time { return std.Tomorrow() }

// Yesterday returns the start of the previous local day.
func Yesterday() time.Time { return std.Yesterday() }

// IsBetween is Calendar.IsBetween on the local system calendar.
func IsBetween(t, start, end time.Time, unit Unit, incl Inclusivity) bool {
	return std.IsBetween(t, start, end, unit, incl)
}

// FromNow is Calendar.FromNow on the local system calendar.
func FromNow(t time.Time) string { return std.FromNow(t) }

func IsToday(t time.Time) bool  { return std.IsToday(t) }
func IsPast(t time.Time) bool   { return std.IsPast(t) }
func IsFuture(t time.Time) bool { return std.IsFuture(t) }

// Parse is Calendar.Parse in time.Local.
func Parse(s string) (time.Time, error) { return std.Parse(s) }
