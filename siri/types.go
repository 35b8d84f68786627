package siri

// StopMonitoringResponse is the top-level envelope of a stop-monitoring call.
type StopMonitoringResponse struct {
	Siri ServiceDeliveryWrapper `json:"Siri"`
}

// ServiceDeliveryWrapper wraps the ServiceDelivery element.
type ServiceDeliveryWrapper struct {
	ServiceDelivery ServiceDelivery `json:"ServiceDelivery"`
}

// ServiceDelivery carries the per-module deliveries of the response.
type ServiceDelivery struct {
	ResponseTimestamp      string                   `json:"ResponseTimestamp"`
	StopMonitoringDelivery []StopMonitoringDelivery `json:"StopMonitoringDelivery"`
}

// StopMonitoringDelivery holds the monitored visits for one request.
// Only the first delivery element is consumed.
type StopMonitoringDelivery struct {
	ResponseTimestamp  string               `json:"ResponseTimestamp"`
	ValidUntil         string               `json:"ValidUntil"`
	MonitoredStopVisit []MonitoredStopVisit `json:"MonitoredStopVisit"`
}

// MonitoredStopVisit is one vehicle prediction for the monitored stop.
type MonitoredStopVisit struct {
	RecordedAtTime          string                  `json:"RecordedAtTime"`
	MonitoredVehicleJourney MonitoredVehicleJourney `json:"MonitoredVehicleJourney"`
}

// MonitoredVehicleJourney describes the approaching vehicle's journey.
type MonitoredVehicleJourney struct {
	PublishedLineName string           `json:"PublishedLineName"`
	DestinationName   string           `json:"DestinationName"`
	VehicleLocation   *VehicleLocation `json:"VehicleLocation,omitempty"`
	ProgressRate      string           `json:"ProgressRate"`
	MonitoredCall     MonitoredCall    `json:"MonitoredCall"`
}

// VehicleLocation is the vehicle's reported position.
type VehicleLocation struct {
	Latitude  float64 `json:"Latitude"`
	Longitude float64 `json:"Longitude"`
}

// MonitoredCall is the call (stop visit) the prediction refers to.
// A missing call on the wire decodes to the zero value, which yields
// absent/sentinel fields downstream rather than an error.
type MonitoredCall struct {
	AimedArrivalTime    string     `json:"AimedArrivalTime"`
	ExpectedArrivalTime string     `json:"ExpectedArrivalTime"`
	StopPointName       string     `json:"StopPointName"`
	Extensions          Extensions `json:"Extensions"`
}

// Extensions carries the MTA-specific distance and capacity blocks.
type Extensions struct {
	Distances  Distances  `json:"Distances"`
	Capacities Capacities `json:"Capacities"`
}

// Distances describes how far the vehicle is from the monitored call.
type Distances struct {
	PresentableDistance string   `json:"PresentableDistance"`
	DistanceFromCall    *float64 `json:"DistanceFromCall,omitempty"`
}

// Capacities carries estimated ridership for the vehicle.
type Capacities struct {
	EstimatedPassengerCount    *int `json:"EstimatedPassengerCount,omitempty"`
	EstimatedPassengerCapacity *int `json:"EstimatedPassengerCapacity,omitempty"`
}
