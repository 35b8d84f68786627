package bustime

import (
	"testing"
	"time"
)

func TestRelativeETA(t *testing.T) {
	loc := time.FixedZone("EDT", -4*3600)
	now := time.Date(2024, 6, 1, 14, 0, 0, 0, loc)

	tests := []struct {
		name      string
		estimated time.Time
		expected  string
	}{
		{
			name:      "five minutes out",
			estimated: time.Date(2024, 6, 1, 14, 5, 0, 0, loc),
			expected:  "in 5 minutes",
		},
		{
			name:      "89 seconds floors to one minute",
			estimated: now.Add(89 * time.Second),
			expected:  "in 1 minutes",
		},
		{
			name:      "due now",
			estimated: now,
			expected:  "in 0 minutes",
		},
		{
			name:      "one second past is departed",
			estimated: now.Add(-1 * time.Second),
			expected:  Departed,
		},
		{
			name:      "half a second past still floors to departed",
			estimated: now.Add(-500 * time.Millisecond),
			expected:  Departed,
		},
		{
			name:      "thirty seconds past floors to minus one",
			estimated: now.Add(-30 * time.Second),
			expected:  Departed,
		},
		{
			name:      "cross-offset comparison uses the instant",
			estimated: time.Date(2024, 6, 1, 18, 5, 0, 0, time.UTC), // 14:05 EDT
			expected:  "in 5 minutes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeETA(tt.estimated, now); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{89, 60, 1},
		{60, 60, 1},
		{59, 60, 0},
		{0, 60, 0},
		{-1, 60, -1},
		{-60, 60, -1},
		{-61, 60, -2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
