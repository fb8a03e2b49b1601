package report

import (
	"fmt"
	"strings"
)

const (
	millisPerSecond = int64(1000)
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour

	// Years are a fixed 365 days; the breakdown is calendar-agnostic.
	millisPerYear = 365 * millisPerDay
)

// HumanDuration formats a millisecond span as a years/days/hours/minutes/
// seconds breakdown, omitting zero units. Sub-second spans collapse to
// "under a second"; negative spans keep a leading minus.
func HumanDuration(millis int64) string {
	sign := ""
	if millis < 0 {
		sign = "-"
		millis = -millis
	}

	units := []struct {
		size     int64
		singular string
	}{
		{millisPerYear, "year"},
		{millisPerDay, "day"},
		{millisPerHour, "hour"},
		{millisPerMinute, "minute"},
		{millisPerSecond, "second"},
	}

	var parts []string
	for _, u := range units {
		n := millis / u.size
		millis %= u.size
		if n == 0 {
			continue
		}
		name := u.singular
		if n != 1 {
			name += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, name))
	}

	if len(parts) == 0 {
		return "under a second"
	}
	return sign + strings.Join(parts, " ")
}
