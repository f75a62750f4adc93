package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmTokyoToKyoto(t *testing.T) {
	tokyo := Coordinate{Lat: 35.6812, Lng: 139.7671}
	kyoto := Coordinate{Lat: 34.9858, Lng: 135.7588}

	km := DistanceKm(tokyo, kyoto)
	assert.InDelta(t, 372, km, 15)
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := Coordinate{Lat: 35.7148, Lng: 139.7967}
	b := Coordinate{Lat: 35.6595, Lng: 139.7004}

	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
}

func TestDistanceKmSamePoint(t *testing.T) {
	p := Coordinate{Lat: 35.0, Lng: 135.0}
	assert.Equal(t, 0.0, DistanceKm(p, p))
}
