package bustime

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/chintito4ever/mta-bus-time/siri"
)

// DefaultBaseURL is the MTA Bus Time API host.
const DefaultBaseURL = "https://bustime.mta.info"

// DefaultTimeout bounds a single stop-monitoring request.
const DefaultTimeout = 10 * time.Second

const stopMonitoringPath = "/api/siri/stop-monitoring.json"

// Target is one stop plus optional route filter configured for monitoring.
type Target struct {
	Name          string
	MonitoringRef string
	LineRef       string
}

// Status classifies a fetch result. The provider's "no data" (delivery
// missing from the response) and "no arrivals" (delivery present, visit list
// empty) are kept apart here and collapsed, or not, by the caller.
type Status int

const (
	StatusNoData Status = iota
	StatusNoArrivals
	StatusOK
)

// Result is the outcome of one fetch for one target: the provider-ordered
// arrival list, first element soonest. The ordering is taken from the feed
// as-is and never re-sorted.
type Result struct {
	Status   Status
	Arrivals []Arrival
}

// First returns the soonest arrival, if any.
func (r Result) First() (Arrival, bool) {
	if len(r.Arrivals) == 0 {
		return Arrival{}, false
	}
	return r.Arrivals[0], true
}

// Client fetches the SIRI stop-monitoring feed for monitored targets.
// One blocking call per fetch; no retries, no backoff. It is safe for
// concurrent use, though nothing in this project fetches in parallel.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	operatorRef string
	logger      *log.Logger
}

// NewClient creates a stop-monitoring client. An empty baseURL selects the
// production MTA endpoint and a non-positive timeout the 10 second default.
func NewClient(baseURL, apiKey, operatorRef string, timeout time.Duration, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		apiKey:      apiKey,
		operatorRef: operatorRef,
		logger:      logger,
	}
}

// FetchStopMonitoring performs one stop-monitoring request for the target and
// normalizes every visit of the first delivery element, preserving order.
// Subsequent delivery elements, if the provider sends any, are ignored.
//
// Transport failures, non-200 statuses and malformed bodies are returned as
// errors; callers decide whether that degrades to an empty result or an
// error state.
func (c *Client) FetchStopMonitoring(ctx context.Context, target Target) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(target), nil)
	if err != nil {
		return Result{}, fmt.Errorf("build stop-monitoring request for %s: %w", target.MonitoringRef, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("fetch stop monitoring for %s: %w", target.MonitoringRef, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("HTTP %d fetching stop monitoring for %s", resp.StatusCode, target.MonitoringRef)
	}

	var sm siri.StopMonitoringResponse
	if err := json.NewDecoder(resp.Body).Decode(&sm); err != nil {
		return Result{}, fmt.Errorf("decode stop monitoring for %s: %w", target.MonitoringRef, err)
	}

	deliveries := sm.Siri.ServiceDelivery.StopMonitoringDelivery
	if len(deliveries) == 0 {
		return Result{Status: StatusNoData}, nil
	}
	visits := deliveries[0].MonitoredStopVisit
	if len(visits) == 0 {
		return Result{Status: StatusNoArrivals}, nil
	}

	arrivals := make([]Arrival, 0, len(visits))
	for _, visit := range visits {
		arrivals = append(arrivals, NormalizeVisit(visit, c.logger))
	}
	return Result{Status: StatusOK, Arrivals: arrivals}, nil
}

func (c *Client) requestURL(target Target) string {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("OperatorRef", c.operatorRef)
	q.Set("MonitoringRef", target.MonitoringRef)
	if target.LineRef != "" {
		q.Set("LineRef", target.LineRef)
	}
	return c.baseURL + stopMonitoringPath + "?" + q.Encode()
}
