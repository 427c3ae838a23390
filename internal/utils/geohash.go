package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/unirides/unirides/internal/pkg/models"
)

const earthRadiusKm = 6371.0

// EncodeCoordinates converts a point to a geohash string
func EncodeCoordinates(c models.Coordinates, precision uint) string {
	return geohash.EncodeWithPrecision(c.Lat, c.Lng, precision)
}

// NeighborCells returns hash and its eight neighbours
func NeighborCells(hash string) []string {
	return append([]string{hash}, geohash.Neighbors(hash)...)
}

// ValidCoordinates reports whether c is a real position on the globe
func ValidCoordinates(c models.Coordinates) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// CalculateDistance returns the great-circle distance between two points
// in kilometers using the Haversine formula
func CalculateDistance(p1, p2 models.Coordinates) float64 {
	lat1 := p1.Lat * math.Pi / 180.0
	lon1 := p1.Lng * math.Pi / 180.0
	lat2 := p2.Lat * math.Pi / 180.0
	lon2 := p2.Lng * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Interpolate returns segments+1 evenly spaced points from start to end,
// both endpoints included
func Interpolate(start, end models.Coordinates, segments int) []models.Coordinates {
	if segments < 1 {
		segments = 1
	}
	points := make([]models.Coordinates, 0, segments+1)
	for i := 0; i <= segments; i++ {
		f := float64(i) / float64(segments)
		points = append(points, models.Coordinates{
			Lat: start.Lat + (end.Lat-start.Lat)*f,
			Lng: start.Lng + (end.Lng-start.Lng)*f,
		})
	}
	return points
}
