package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQiblaDirectionKnownCities(t *testing.T) {
	tests := []struct {
		name       string
		lat, lng   float64
		bearing    float64
		distanceKM float64
	}{
		{"Delhi", 28.6139, 77.2090, 266.60, 3834.56},
		{"Jakarta", -6.2088, 106.8456, 295.15, 7920.13},
		{"London", 51.5074, -0.1278, 118.99, 4793.78},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QiblaDirection(tt.lat, tt.lng)
			require.NoError(t, err)
			assert.InDelta(t, tt.bearing, got.Bearing, 0.01)
			assert.InDelta(t, tt.distanceKM, got.DistanceKM, 0.5)
		})
	}
}

func TestQiblaDirectionAtKaaba(t *testing.T) {
	got, err := QiblaDirection(KaabaLat, KaabaLng)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.DistanceKM)
}

func TestQiblaDirectionRejectsInvalidCoordinates(t *testing.T) {
	cases := [][2]float64{
		{91, 0},
		{-91, 0},
		{0, 181},
		{0, -181},
		{math.NaN(), 0},
		{0, math.Inf(1)},
	}
	for _, c := range cases {
		_, err := QiblaDirection(c[0], c[1])
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	}
}

func TestQiblaBearingRange(t *testing.T) {
	for _, loc := range [][2]float64{{28.6139, 77.2090}, {-33.8688, 151.2093}, {40.7128, -74.0060}} {
		got, err := QiblaDirection(loc[0], loc[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.Bearing, 0.0)
		assert.Less(t, got.Bearing, 360.0)
	}
}
