// Package utils provides small formatting helpers shared by the CLI.
package utils

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration the way the CLI talks about waits:
// the two most significant units, with millisecond resolution below one
// second. E.g., "2h 5m", "1m 30s", "45s", "500ms"
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	totalSeconds := int(d.Round(time.Second).Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
