package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanDuration(t *testing.T) {
	tests := []struct {
		name     string
		millis   int64
		expected string
	}{
		{"zero", 0, "under a second"},
		{"sub-second", 999, "under a second"},
		{"one second", 1000, "1 second"},
		{"seconds", 42 * millisPerSecond, "42 seconds"},
		{"minute and second", millisPerMinute + millisPerSecond, "1 minute 1 second"},
		{"hour skips zero minutes", millisPerHour + 5*millisPerSecond, "1 hour 5 seconds"},
		{"full breakdown", millisPerDay + 2*millisPerHour + 3*millisPerMinute + 4*millisPerSecond, "1 day 2 hours 3 minutes 4 seconds"},
		{"years use fixed 365 days", millisPerYear + 2*millisPerDay, "1 year 2 days"},
		{"exact year", 2 * millisPerYear, "2 years"},
		{"sub-second remainder dropped", millisPerMinute + 999, "1 minute"},
		{"negative", -(millisPerMinute + millisPerSecond), "-1 minute 1 second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HumanDuration(tt.millis))
		})
	}
}
