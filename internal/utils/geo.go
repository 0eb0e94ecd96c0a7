package utils

import (
	"math"

	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// GeohashPrecision is the cell precision used for stand geohashes,
// roughly a 150 m x 150 m cell.
const GeohashPrecision = 7

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// GeohashNeighbors returns the neighboring geohashes of a given geohash
func GeohashNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}

// DistanceMeters calculates the great-circle distance between two
// points in meters using the Haversine formula
func DistanceMeters(point1, point2 models.Location) float64 {
	// Earth's radius in meters
	const earthRadius = 6371000.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// DistanceKm calculates the great-circle distance in kilometers
func DistanceKm(point1, point2 models.Location) float64 {
	return DistanceMeters(point1, point2) / 1000.0
}
