package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unirides/unirides/internal/pkg/models"
)

var (
	hargeisa = models.Coordinates{Lat: 9.5624, Lng: 44.0770}
	berbera  = models.Coordinates{Lat: 10.4396, Lng: 45.0143}
)

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		p1, p2    models.Coordinates
		expected  float64
		tolerance float64
	}{
		{"Same point", hargeisa, hargeisa, 0, 0.001},
		{"Hargeisa to Berbera", hargeisa, berbera, 141, 3},
		{"One degree of latitude", models.Coordinates{Lat: 0, Lng: 0}, models.Coordinates{Lat: 1, Lng: 0}, 111.19, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CalculateDistance(tt.p1, tt.p2), tt.tolerance)
			assert.InDelta(t, CalculateDistance(tt.p1, tt.p2), CalculateDistance(tt.p2, tt.p1), 1e-9)
		})
	}
}

func TestEncodeCoordinates(t *testing.T) {
	hash := EncodeCoordinates(hargeisa, 6)
	assert.Len(t, hash, 6)
	assert.Equal(t, hash[:4], EncodeCoordinates(hargeisa, 4))
}

func TestNeighborCells(t *testing.T) {
	hash := EncodeCoordinates(hargeisa, 6)
	cells := NeighborCells(hash)

	require.Len(t, cells, 9)
	assert.Equal(t, hash, cells[0])
	seen := map[string]bool{}
	for _, c := range cells {
		assert.Len(t, c, 6)
		seen[c] = true
	}
	assert.Len(t, seen, 9)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(hargeisa))
	assert.False(t, ValidCoordinates(models.Coordinates{Lat: 91, Lng: 0}))
	assert.False(t, ValidCoordinates(models.Coordinates{Lat: 0, Lng: -181}))
}

func TestInterpolate(t *testing.T) {
	points := Interpolate(hargeisa, berbera, 10)

	require.Len(t, points, 11)
	assert.Equal(t, hargeisa, points[0])
	assert.InDelta(t, berbera.Lat, points[10].Lat, 1e-9)
	assert.InDelta(t, berbera.Lng, points[10].Lng, 1e-9)
	assert.InDelta(t, (hargeisa.Lat+berbera.Lat)/2, points[5].Lat, 1e-9)

	assert.Len(t, Interpolate(hargeisa, berbera, 0), 2)
}
