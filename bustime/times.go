package bustime

import (
	"time"
)

// Unavailable is the sentinel used for timestamp and distance fields that
// were missing from the feed or failed to parse.
const Unavailable = "Unavailable"

// displayTimeLayout renders instants the way the sensors expose them,
// e.g. "June 01, 2024 at 02:05 PM".
const displayTimeLayout = "January 02, 2006 at 03:04 PM"

// ParseArrivalTime parses a provider-supplied ISO-8601 timestamp, offset
// included. An empty input is not an error, just absent.
func ParseArrivalTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// FormatDisplayTime renders an arrival instant in the human-readable form
// used for sensor states and attributes.
func FormatDisplayTime(t time.Time) string {
	return t.Format(displayTimeLayout)
}

// ParseDisplayTime recovers a minute-level instant from a FormatDisplayTime
// string, interpreted in loc. The display form carries no offset, so the
// caller chooses the location the wall-clock reading belongs to.
func ParseDisplayTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(displayTimeLayout, s, loc)
}
