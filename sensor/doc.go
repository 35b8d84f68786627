// Package sensor exposes monitored stops as host-facing entities: a state
// string plus an attribute map, refreshed on every update tick.
//
// StopSensor fetches the feed directly on each tick and distinguishes error,
// no-data and no-arrivals states. DepartureSensor reads through a shared
// StopCache, so a group of sensors updated in one cycle triggers at most one
// provider fetch per target per interval.
package sensor
