package sensor

import (
	"context"
	"net/http"
	"testing"
	"time"
)

// Reading a sensor while the poll loop updates it must be safe: run these
// with -race to catch unsynchronized access to state or attributes.

func TestStopSensorConcurrentReadDuringUpdate(t *testing.T) {
	s := newStopSensor(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(twoVisitBody))
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			_ = s.State()
			_ = s.Attributes()
		}
	}()

	ctx := context.Background()
	for i := 0; i < 50; i++ {
		s.Update(ctx, edtNow())
	}
	<-done

	if s.State() != "June 01, 2024 at 02:03 PM" {
		t.Errorf("State() = %q after concurrent reads", s.State())
	}
}

func TestDepartureSensorConcurrentReadDuringUpdate(t *testing.T) {
	a, b, _ := newDepartureFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(twoVisitBody))
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			_ = a.State()
			_ = a.Attributes()
			_ = b.State()
			_ = b.Attributes()
		}
	}()

	ctx := context.Background()
	now := edtNow()
	for i := 0; i < 50; i++ {
		// Advance past the throttle so every cycle swaps the cache snapshot
		// while the reader goroutine is running.
		tick := now.Add(time.Duration(i) * 61 * time.Second)
		a.Update(ctx, tick)
		b.Update(ctx, tick)
	}
	<-done

	if a.State() != "June 01, 2024 at 02:03 PM" {
		t.Errorf("State() = %q after concurrent reads", a.State())
	}
}
