// utils/clock_utils.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultClockMinutes is 09:00; every malformed or missing time string
// falls back to it so scheduling never stops on bad data.
const DefaultClockMinutes = 9 * 60

// ParseClock converts "HH:MM" to minutes from midnight.
func ParseClock(s string) int {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return DefaultClockMinutes
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return DefaultClockMinutes
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return DefaultClockMinutes
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return DefaultClockMinutes
	}

	return hours*60 + minutes
}

// FormatClock renders minutes from midnight as "HH:MM". Values past
// midnight wrap so a late dinner still prints a valid clock time.
func FormatClock(minutes int) string {
	if minutes < 0 {
		minutes = DefaultClockMinutes
	}
	minutes = minutes % (24 * 60)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
