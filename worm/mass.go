package worm

import (
	"math"

	"github.com/lixenwraith/worms/parameter"
	"github.com/lixenwraith/worms/physics"
)

// Mass returns the mass in kg of a worm of the given radius
func Mass(radius float64) float64 {
	return parameter.WormDensity * physics.SphereVolume(radius)
}

// MaxActionPoints returns the action point capacity for a mass, rounded half away from zero
func MaxActionPoints(mass float64) int {
	return roundPoints(mass)
}

// roundPoints rounds a non-negative point amount half away from zero
// Saturates at math.MaxInt; NaN maps to math.MaxInt so it never passes a budget check
func roundPoints(f float64) int {
	r := math.Round(f)
	if math.IsNaN(r) || r >= math.MaxInt {
		return math.MaxInt
	}
	if r <= 0 {
		return 0
	}
	return int(r)
}

// clampActionPoints bounds n into [0, limit]
func clampActionPoints(n, limit int) int {
	if n > limit {
		return limit
	}
	if n < 0 {
		return 0
	}
	return n
}
