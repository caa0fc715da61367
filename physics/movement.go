package physics

import (
	"math"
)

// Displacement returns the position delta of a stride-scaled linear step along heading
// Negative steps move backward
func Displacement(steps int, heading, stride float64) (dx, dy float64) {
	n := float64(steps)
	return n * math.Cos(heading) * stride, n * math.Sin(heading) * stride
}

// AnisotropicCost returns a weighted effort for n steps along heading
// cost = |n| * (wx*|cos(θ)| + wy*|sin(θ)|), always non-negative
func AnisotropicCost(steps int, heading, wx, wy float64) float64 {
	n := math.Abs(float64(steps))
	return n * (wx*math.Abs(math.Cos(heading)) + wy*math.Abs(math.Sin(heading)))
}

// RotationCost returns the effort of turning through angle at perRevolution per 2π
// Sign of the angle does not matter
func RotationCost(angle, perRevolution float64) float64 {
	return math.Abs(perRevolution * angle / (2 * math.Pi))
}

// SphereVolume returns the volume of a sphere of the given radius
func SphereVolume(radius float64) float64 {
	return 4.0 / 3.0 * math.Pi * math.Pow(radius, 3)
}
