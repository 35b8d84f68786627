package sensor

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/chintito4ever/mta-bus-time/bustime"
)

// DepartureSensor monitors one stop out of a group sharing a StopCache.
// Every sensor's update calls Refresh on the cache, but the cache's throttle
// ensures one provider pass per interval covers the whole group. State and
// attributes may be read while an update is in flight, so both are guarded.
type DepartureSensor struct {
	cache  *bustime.StopCache
	target bustime.Target
	logger *log.Logger

	mu    sync.RWMutex
	state string
	attrs map[string]any
}

// NewDepartureSensor creates a cache-backed sensor for one target.
func NewDepartureSensor(cache *bustime.StopCache, target bustime.Target, logger *log.Logger) *DepartureSensor {
	if logger == nil {
		logger = log.Default()
	}
	return &DepartureSensor{cache: cache, target: target, logger: logger}
}

// Name returns the departure's configured name.
func (s *DepartureSensor) Name() string { return s.target.Name }

// State returns the first arrival's formatted estimated time, or
// "No arrivals" when there is none worth showing. Fetch failures and missing
// deliveries collapse into the same state: the cache stores them as empty
// results.
func (s *DepartureSensor) State() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Attributes returns the arrival list, the monitoring ref, and the ETA
// countdown under both its historical keys.
func (s *DepartureSensor) Attributes() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attrs
}

// Update refreshes the shared cache (a no-op inside the throttle interval)
// and recomputes this sensor's state and attributes from its entry.
//
// The ETA is re-derived from the formatted estimate rather than the parsed
// instant: the display form round-trips at minute precision, interpreted in
// now's location.
func (s *DepartureSensor) Update(ctx context.Context, now time.Time) {
	s.cache.Refresh(ctx, now)
	res := s.cache.Result(s.target.Name)

	arrivals := res.Arrivals
	if arrivals == nil {
		arrivals = []bustime.Arrival{}
	}

	state := StateNoArrivals
	eta := bustime.NoETA
	if len(arrivals) > 0 && arrivals[0].EstimatedArrival != bustime.Unavailable {
		state = arrivals[0].EstimatedArrival
		if at, err := bustime.ParseDisplayTime(arrivals[0].EstimatedArrival, now.Location()); err != nil {
			s.logger.Printf("error computing ETA for %s: %v", s.target.Name, err)
		} else {
			eta = bustime.RelativeETA(at, now)
		}
	}

	s.mu.Lock()
	s.state = state
	s.attrs = map[string]any{
		"Arrivals":       arrivals,
		"Monitoring Ref": s.target.MonitoringRef,
		"ETA in minutes": eta,
		"Arrives":        eta,
	}
	s.mu.Unlock()
}
