package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_Symmetry(t *testing.T) {
	pairs := [][4]float64{
		{3.1390, 101.6869, 5.4141, 100.3288},  // KL <-> Penang
		{1.4927, 103.7414, 6.3088, 99.8432},   // JB <-> Langkawi
		{2.1944, 102.2491, 3.1390, 101.6869},  // Malacca <-> KL
		{-33.8688, 151.2093, 3.1390, 101.6869}, // Sydney <-> KL
	}
	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1], p[2], p[3])
		ba := DistanceKm(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1e-9)
		assert.GreaterOrEqual(t, ab, 0.0)
	}
}

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	assert.InDelta(t, 0, DistanceKm(3.1390, 101.6869, 3.1390, 101.6869), 1e-9)
	assert.InDelta(t, 0, DistanceKm(0, 0, 0, 0), 1e-9)
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// KL city centre to George Town is roughly 290-300 km great-circle.
	d := DistanceKm(3.1390, 101.6869, 5.4141, 100.3288)
	assert.InDelta(t, 290, d, 15)
}

func TestDistanceKm_NaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(DistanceKm(math.NaN(), 0, 1, 1)))
}
