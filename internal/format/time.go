// Package format renders durations and ages for human readers.
package format

import (
	"fmt"
	"time"
)

// FormatAge describes how long before now t was: "just now", "45s ago",
// "2h 15m ago". A zero t is "never".
func FormatAge(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)
	if d < 10*time.Second {
		return "just now"
	}
	return FormatDuration(d) + " ago"
}

// FormatDuration renders d with its two most significant units: "1s",
// "5m 30s", "2h 15m", "3d 4h". Negative durations are measured by their
// magnitude.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	days := int(d / (24 * time.Hour))
	hours := int(d/time.Hour) % 24
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
