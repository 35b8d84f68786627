package bustime

import (
	"log"
	"time"

	"github.com/chintito4ever/mta-bus-time/siri"
)

// Arrival is one normalized prediction for a monitored stop. The JSON keys
// mirror the attribute names the sensors expose, so marshaling an Arrival
// yields the host-facing attribute shape directly.
//
// Fields default to explicit sentinels or null, never omitted keys: the
// attribute shape is constant from fetch to fetch.
type Arrival struct {
	Route             string                `json:"Route"`
	Destination       string                `json:"Destination"`
	VehicleLocation   *siri.VehicleLocation `json:"Current Vehicle Location"`
	ProgressRate      string                `json:"Progress Rate"`
	AimedArrival      string                `json:"Aimed Arrival Time"`
	EstimatedArrival  string                `json:"Estimated Arrival Time"`
	Distance          string                `json:"Distance"`
	DistanceMeters    *float64              `json:"Distance (m)"`
	PassengerCount    *int                  `json:"Passenger Count"`
	PassengerCapacity *int                  `json:"Passenger Capacity"`
	StopName          string                `json:"Stop Name"`

	expectedAt  time.Time
	hasExpected bool
}

// ExpectedAt returns the parsed estimated arrival instant, offset preserved.
// The second return is false when the feed carried no usable
// ExpectedArrivalTime.
func (a Arrival) ExpectedAt() (time.Time, bool) {
	return a.expectedAt, a.hasExpected
}

// NormalizeVisit flattens one monitored stop visit into an Arrival.
//
// Missing sub-records at any nesting level decode as zero values upstream and
// simply yield sentinel or null fields here. The two timestamp fields are
// parsed independently: a malformed AimedArrivalTime is logged and rendered
// Unavailable without touching the estimate, and vice versa.
func NormalizeVisit(visit siri.MonitoredStopVisit, logger *log.Logger) Arrival {
	if logger == nil {
		logger = log.Default()
	}
	journey := visit.MonitoredVehicleJourney
	call := journey.MonitoredCall
	distances := call.Extensions.Distances
	capacities := call.Extensions.Capacities

	aimed := Unavailable
	if t, err := ParseArrivalTime(call.AimedArrivalTime); err != nil {
		logger.Printf("error parsing AimedArrivalTime %q: %v", call.AimedArrivalTime, err)
	} else if !t.IsZero() {
		aimed = FormatDisplayTime(t)
	}

	estimated := Unavailable
	var expectedAt time.Time
	hasExpected := false
	if t, err := ParseArrivalTime(call.ExpectedArrivalTime); err != nil {
		logger.Printf("error parsing ExpectedArrivalTime %q: %v", call.ExpectedArrivalTime, err)
	} else if !t.IsZero() {
		estimated = FormatDisplayTime(t)
		expectedAt = t
		hasExpected = true
	}

	distance := distances.PresentableDistance
	if distance == "" {
		distance = Unavailable
	}

	return Arrival{
		Route:             journey.PublishedLineName,
		Destination:       journey.DestinationName,
		VehicleLocation:   journey.VehicleLocation,
		ProgressRate:      journey.ProgressRate,
		AimedArrival:      aimed,
		EstimatedArrival:  estimated,
		Distance:          distance,
		DistanceMeters:    distances.DistanceFromCall,
		PassengerCount:    capacities.EstimatedPassengerCount,
		PassengerCapacity: capacities.EstimatedPassengerCapacity,
		StopName:          call.StopPointName,
		expectedAt:        expectedAt,
		hasExpected:       hasExpected,
	}
}
