package bustime

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultRefreshInterval is the minimum time between actual provider fetches
// when multiple targets share one cache.
const DefaultRefreshInterval = 60 * time.Second

// StopCache holds the latest fetch result per monitored target and throttles
// re-fetching to at most once per interval. One refresh pass covers every
// target, so a single shared timestamp gates the whole mapping.
//
// Refresh replaces the mapping wholesale with a freshly built one; readers
// always see a consistent snapshot. There is exactly one logical updater per
// configuration, but readers may run concurrently with it, so the snapshot
// swap is guarded.
type StopCache struct {
	client   *Client
	targets  []Target
	interval time.Duration
	logger   *log.Logger

	mu          sync.RWMutex
	lastRefresh time.Time
	results     map[string]Result
}

// NewStopCache creates a cache over the given targets. A non-positive
// interval selects the 60 second default.
func NewStopCache(client *Client, targets []Target, interval time.Duration, logger *log.Logger) *StopCache {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	if logger == nil {
		logger = log.Default()
	}
	return &StopCache{
		client:   client,
		targets:  targets,
		interval: interval,
		logger:   logger,
		results:  map[string]Result{},
	}
}

// Refresh fetches every target sequentially and swaps in the new result map,
// unless less than the interval has elapsed since the previous refresh, in
// which case it is a no-op. The caller supplies now so the throttle is
// deterministic under test.
//
// A failed fetch is logged and leaves that target with an empty result; the
// timestamp advances even when every fetch failed, so a bad cycle is not
// retried before the interval elapses.
func (sc *StopCache) Refresh(ctx context.Context, now time.Time) {
	if last := sc.LastRefresh(); !last.IsZero() && now.Sub(last) < sc.interval {
		return
	}

	next := make(map[string]Result, len(sc.targets))
	for _, target := range sc.targets {
		res, err := sc.client.FetchStopMonitoring(ctx, target)
		if err != nil {
			sc.logger.Printf("error fetching data for %s: %v", target.Name, err)
			next[target.Name] = Result{}
			continue
		}
		next[target.Name] = res
	}

	sc.mu.Lock()
	sc.results = next
	sc.lastRefresh = now
	sc.mu.Unlock()
}

// Result returns the latest result for a target name. Targets never fetched,
// or not part of this cache at all, read as an empty result rather than an
// error.
func (sc *StopCache) Result(name string) Result {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.results[name]
}

// LastRefresh reports when the mapping was last rebuilt; zero before the
// first refresh.
func (sc *StopCache) LastRefresh() time.Time {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.lastRefresh
}

// Targets returns the monitored targets this cache refreshes.
func (sc *StopCache) Targets() []Target {
	return sc.targets
}
