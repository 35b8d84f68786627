// Package handlers registers the JSON read surface over the configured
// sensors: health plus per-departure state and attributes.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/unrolled/logger"

	"github.com/chintito4ever/mta-bus-time/sensor"
)

// RegisterRoutes wires the API routes and request logging onto the router.
// Handlers only read entity state; updating is the poll loop's job.
func RegisterRoutes(r *mux.Router, entities []sensor.Entity) {
	h := handlers{entities: entities}

	l := logger.New()
	r.Use(l.Handler)

	r.HandleFunc("/api/health", h.handleHealth).Methods("GET")
	r.HandleFunc("/api/departures", h.handleDepartures).Methods("GET")
	r.HandleFunc("/api/departures/{name}", h.handleDeparture).Methods("GET")
}

type handlers struct {
	entities []sensor.Entity
}

type healthResponse struct {
	Status           string `json:"status"`
	MonitoredTargets int    `json:"monitored_targets"`
}

type departureResponse struct {
	Name       string         `json:"name"`
	State      string         `json:"state"`
	Attributes map[string]any `json:"attributes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", MonitoredTargets: len(h.entities)})
}

func (h handlers) handleDepartures(w http.ResponseWriter, r *http.Request) {
	out := make([]departureResponse, 0, len(h.entities))
	for _, e := range h.entities {
		out = append(out, departureResponse{Name: e.Name(), State: e.State(), Attributes: e.Attributes()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h handlers) handleDeparture(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	for _, e := range h.entities {
		if e.Name() == name {
			writeJSON(w, http.StatusOK, departureResponse{Name: e.Name(), State: e.State(), Attributes: e.Attributes()})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown departure: " + name})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
