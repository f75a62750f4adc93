package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	assert.Equal(t, 570, ParseClock("09:30"))
	assert.Equal(t, 425, ParseClock("7:05"))
	assert.Equal(t, 0, ParseClock("00:00"))
	assert.Equal(t, 23*60+59, ParseClock("23:59"))
}

func TestParseClockFallsBackOnBadInput(t *testing.T) {
	for _, bad := range []string{"", "25:00", "12:60", "noon", "12", "a:b"} {
		assert.Equal(t, DefaultClockMinutes, ParseClock(bad), "input %q", bad)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:30", FormatClock(570))
	assert.Equal(t, "00:00", FormatClock(0))
}

func TestFormatClockWrapsPastMidnight(t *testing.T) {
	assert.Equal(t, "01:00", FormatClock(25*60))
}
