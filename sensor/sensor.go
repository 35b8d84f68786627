package sensor

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/chintito4ever/mta-bus-time/bustime"
)

// Sensor states beyond a formatted arrival time.
const (
	StateError      = "Error"
	StateNoData     = "No data"
	StateNoArrivals = "No arrivals"
)

// Entity is the host-facing surface of one sensor: a primary display value,
// an attribute map, and an update hook the host scheduler drives.
type Entity interface {
	Name() string
	State() string
	Attributes() map[string]any
	Update(ctx context.Context, now time.Time)
}

// StopSensor monitors a single stop by fetching the feed directly on every
// update tick, no cache in between. State and attributes may be read while
// an update is in flight, so both are guarded.
type StopSensor struct {
	client *bustime.Client
	target bustime.Target
	logger *log.Logger

	mu    sync.RWMutex
	state string
	attrs map[string]any
}

// NewStopSensor creates a direct-fetch sensor for one target.
func NewStopSensor(client *bustime.Client, target bustime.Target, logger *log.Logger) *StopSensor {
	if logger == nil {
		logger = log.Default()
	}
	return &StopSensor{client: client, target: target, logger: logger}
}

// Name returns the sensor's display name.
func (s *StopSensor) Name() string { return s.target.Name }

// State returns the first arrival's formatted estimated time, or one of the
// Error / "No data" / "No arrivals" states.
func (s *StopSensor) State() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Attributes returns the full arrival list plus, when at least one arrival
// exists, the "ETA in minutes" countdown for the soonest one.
func (s *StopSensor) Attributes() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attrs
}

// Update fetches the feed once and recomputes state and attributes. A failed
// fetch is logged and flips the state to Error, leaving the previous
// attributes in place.
func (s *StopSensor) Update(ctx context.Context, now time.Time) {
	res, err := s.client.FetchStopMonitoring(ctx, s.target)
	if err != nil {
		s.logger.Printf("error fetching MTA bus data: %v", err)
		s.mu.Lock()
		s.state = StateError
		s.mu.Unlock()
		return
	}

	arrivals := res.Arrivals
	if arrivals == nil {
		arrivals = []bustime.Arrival{}
	}
	attrs := map[string]any{"Arrivals": arrivals}

	var state string
	switch res.Status {
	case bustime.StatusNoData:
		state = StateNoData
	case bustime.StatusNoArrivals:
		state = StateNoArrivals
	default:
		first := res.Arrivals[0]
		state = first.EstimatedArrival
		eta := bustime.NoETA
		if at, ok := first.ExpectedAt(); ok {
			eta = bustime.RelativeETA(at, now)
		}
		attrs["ETA in minutes"] = eta
	}

	s.mu.Lock()
	s.state = state
	s.attrs = attrs
	s.mu.Unlock()
}
