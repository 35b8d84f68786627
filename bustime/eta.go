package bustime

import (
	"fmt"
	"time"
)

// NoETA is the sentinel for an ETA that could not be derived because the
// estimated arrival instant was absent or unparsable.
const NoETA = "N/A"

// Departed is reported once the estimated arrival instant lies in the past.
const Departed = "Departed"

// RelativeETA renders the countdown from now to the estimated arrival.
// Whole minutes are obtained by flooring the second delta, so 89 seconds out
// is "in 1 minutes" and anything even one second past is Departed.
//
// The result depends on now and must be recomputed on every read, never
// stored alongside the fetch result it was derived from.
func RelativeETA(estimated, now time.Time) string {
	minutes := floorDiv(int64(estimated.Sub(now)), int64(time.Minute))
	if minutes < 0 {
		return Departed
	}
	return fmt.Sprintf("in %d minutes", minutes)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
