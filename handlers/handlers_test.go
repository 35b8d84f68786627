package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/chintito4ever/mta-bus-time/sensor"
)

type fakeEntity struct {
	name  string
	state string
	attrs map[string]any
}

func (f *fakeEntity) Name() string                          { return f.name }
func (f *fakeEntity) State() string                         { return f.state }
func (f *fakeEntity) Attributes() map[string]any            { return f.attrs }
func (f *fakeEntity) Update(_ context.Context, _ time.Time) {}

func newTestRouter() *mux.Router {
	r := mux.NewRouter()
	RegisterRoutes(r, []sensor.Entity{
		&fakeEntity{
			name:  "5th Ave",
			state: "June 01, 2024 at 02:03 PM",
			attrs: map[string]any{"ETA in minutes": "in 3 minutes"},
		},
		&fakeEntity{
			name:  "Atlantic Ave",
			state: "No arrivals",
			attrs: map[string]any{"ETA in minutes": "N/A"},
		},
	})
	return r
}

func doRequest(t *testing.T, r *mux.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	w := doRequest(t, newTestRouter(), "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Status           string `json:"status"`
		MonitoredTargets int    `json:"monitored_targets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.MonitoredTargets != 2 {
		t.Errorf("response = %+v", resp)
	}
}

func TestHandleDepartures(t *testing.T) {
	w := doRequest(t, newTestRouter(), "/api/departures")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp []struct {
		Name       string         `json:"name"`
		State      string         `json:"state"`
		Attributes map[string]any `json:"attributes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("got %d departures, want 2", len(resp))
	}
	if resp[0].Name != "5th Ave" || resp[1].Name != "Atlantic Ave" {
		t.Errorf("order not preserved: %q, %q", resp[0].Name, resp[1].Name)
	}
	if resp[0].State != "June 01, 2024 at 02:03 PM" {
		t.Errorf("state = %q", resp[0].State)
	}
}

func TestHandleDeparture(t *testing.T) {
	w := doRequest(t, newTestRouter(), "/api/departures/Atlantic%20Ave")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Name       string         `json:"name"`
		State      string         `json:"state"`
		Attributes map[string]any `json:"attributes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Name != "Atlantic Ave" || resp.State != "No arrivals" {
		t.Errorf("response = %+v", resp)
	}
	if resp.Attributes["ETA in minutes"] != "N/A" {
		t.Errorf("attributes = %v", resp.Attributes)
	}
}

func TestHandleDepartureUnknown(t *testing.T) {
	w := doRequest(t, newTestRouter(), "/api/departures/nowhere")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
