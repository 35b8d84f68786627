// Package siri defines the SIRI (Service Interface for Real-time Information)
// stop-monitoring response types consumed from the MTA Bus Time feed.
//
// Only the paths this project reads are modeled:
//
//	Siri.ServiceDelivery.StopMonitoringDelivery[].MonitoredStopVisit[]
//	  .MonitoredVehicleJourney.{PublishedLineName, DestinationName, VehicleLocation, ProgressRate}
//	  .MonitoredVehicleJourney.MonitoredCall.{AimedArrivalTime, ExpectedArrivalTime, StopPointName}
//	  .MonitoredVehicleJourney.MonitoredCall.Extensions.{Distances, Capacities}
//
// Everything else in the provider response is ignored on decode.
package siri
