package staticdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandForKnownAndUnknown(t *testing.T) {
	band := BandFor("packed")
	assert.Equal(t, 6, band.Min)
	assert.Equal(t, 8, band.Max)

	fallback := BandFor("leisurely")
	assert.Equal(t, "moderate", fallback.Name)
}

func TestEnergyPercentCurve(t *testing.T) {
	assert.Equal(t, 30, EnergyPercent(1, 7))
	assert.Equal(t, 60, EnergyPercent(2, 7))
	assert.Equal(t, 100, EnergyPercent(3, 7))
	assert.Equal(t, 100, EnergyPercent(4, 7))
	assert.Equal(t, 90, EnergyPercent(5, 7))
	assert.Equal(t, 70, EnergyPercent(6, 7))
	assert.Equal(t, 70, EnergyPercent(7, 7))
}

func TestCompanionMultipliers(t *testing.T) {
	family, ok := CompanionFor("family")
	assert.True(t, ok)
	assert.Equal(t, 0.7, family.Multiplier)

	elderly, ok := CompanionFor("elderly")
	assert.True(t, ok)
	assert.Equal(t, 0.6, elderly.Multiplier)

	_, ok = CompanionFor("")
	assert.False(t, ok)
}
