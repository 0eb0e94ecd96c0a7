package utils

import (
	"testing"

	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	tests := []struct {
		name      string
		point1    models.Location
		point2    models.Location
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			point1:    models.Location{Latitude: 9.931233, Longitude: 76.267303},
			point2:    models.Location{Latitude: 9.931233, Longitude: 76.267303},
			expected:  0.0,
			tolerance: 0.001,
		},
		{
			name:      "Across a stand geofence",
			point1:    models.Location{Latitude: 9.931233, Longitude: 76.267303},
			point2:    models.Location{Latitude: 9.931633, Longitude: 76.267303},
			expected:  44.5, // ~0.0004 degrees of latitude
			tolerance: 1.0,
		},
		{
			name:      "Kochi to Trivandrum (approximately)",
			point1:    models.Location{Latitude: 9.931233, Longitude: 76.267303},
			point2:    models.Location{Latitude: 8.524139, Longitude: 76.936638},
			expected:  173000.0,
			tolerance: 5000.0,
		},
		{
			name:      "Cross equator",
			point1:    models.Location{Latitude: -1.0, Longitude: 100.0},
			point2:    models.Location{Latitude: 1.0, Longitude: 100.0},
			expected:  222400.0, // 2 degrees of latitude
			tolerance: 1000.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceMeters(tt.point1, tt.point2)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
		})
	}
}

func TestDistanceKm(t *testing.T) {
	point1 := models.Location{Latitude: -1.0, Longitude: 100.0}
	point2 := models.Location{Latitude: 1.0, Longitude: 100.0}

	assert.InDelta(t, 222.4, DistanceKm(point1, point2), 1.0)
}

func TestEncodeDecodeLocation(t *testing.T) {
	loc := models.Location{Latitude: 9.931233, Longitude: 76.267303}

	hash := EncodeLocation(loc, GeohashPrecision)
	assert.Len(t, hash, GeohashPrecision)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, loc.Latitude, lat, 0.01)
	assert.InDelta(t, loc.Longitude, lng, 0.01)
}

func TestGeohashNeighbors(t *testing.T) {
	hash := EncodeLocation(models.Location{Latitude: 9.931233, Longitude: 76.267303}, GeohashPrecision)

	neighbors := GeohashNeighbors(hash)
	assert.Len(t, neighbors, 8)
	for _, n := range neighbors {
		assert.Len(t, n, GeohashPrecision)
	}
}
