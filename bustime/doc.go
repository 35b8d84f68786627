// Package bustime implements the MTA Bus Time stop-monitoring pipeline:
// fetching the SIRI stop-monitoring feed, normalizing monitored stop visits
// into display-ready arrival records, deriving a relative-minutes ETA for the
// soonest arrival, and caching per-stop results behind a shared refresh
// throttle.
//
// The main types are Client, which performs one fetch per monitored target,
// and StopCache, which holds the latest results for a set of targets and
// refreshes all of them together at most once per interval.
package bustime
