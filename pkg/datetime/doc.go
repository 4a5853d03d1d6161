// Package datetime provides calendar helpers: start-of-day values, range
// checks at a chosen granularity, relative descriptions ("3 hours ago") and
// lenient parsing.
//
// A Calendar reads time from a Clock and resolves day boundaries in a
// location. Package-level functions use the system clock in time.Local:
//
//	cal := datetime.New(
//	    datetime.WithLocation(time.UTC),
//	    datetime.WithClock(datetime.FixedClock(ref)),
//	)
//
//	cal.IsBetween(t, start, end, datetime.Day, datetime.InclusiveStart)
//	cal.FromNow(ref.Add(-2 * time.Hour)) // "2 hours ago"
//
// Relative descriptions are rendered with github.com/dustin/go-humanize.
package datetime
