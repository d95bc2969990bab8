package domain

import "time"

// Day returns the calendar day of t as observed in loc, normalized to
// midnight UTC. Two instants on the same local day map to equal values,
// and consecutive local days are exactly 24h apart.
func Day(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b. Both values
// must already be normalized with Day.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// FormatDay renders a normalized day as YYYY-MM-DD.
func FormatDay(d time.Time) string {
	return d.Format(time.DateOnly)
}

// ParseDay parses a YYYY-MM-DD string into a normalized day.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, time.UTC)
}

// ParseTimezone parses a timezone name, returning the server's local zone
// for "" or "Local" and UTC for unknown names.
func ParseTimezone(tz string) *time.Location {
	if tz == "" || tz == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
