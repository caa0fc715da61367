package physics

import (
	"math"
)

// LaunchVelocity returns takeoff speed from an impulse: v = F / m * dt
// force: total launch force (N), mass: body mass (kg), duration: impulse time (s)
func LaunchVelocity(force, mass, duration float64) float64 {
	return force / mass * duration
}

// Range returns horizontal distance of a projectile landing at launch height
// R = v² * sin(2θ) / g, negative when the launch angle points backward
func Range(speed, angle, gravity float64) float64 {
	return speed * speed * math.Sin(2*angle) / gravity
}

// FlightTime returns time to cover the given horizontal distance at launch angle
// Callers guard against cos(θ) == 0; the result is ±Inf there
func FlightTime(distance, speed, angle float64) float64 {
	return distance / (speed * math.Cos(angle))
}

// BallisticPosition returns position at t seconds after launch from (x0, y0)
// x = x0 + v*cos(θ)*t, y = y0 + v*sin(θ)*t - g*t²/2
func BallisticPosition(x0, y0, speed, angle, gravity, t float64) (x, y float64) {
	x = x0 + speed*math.Cos(angle)*t
	y = y0 + speed*math.Sin(angle)*t - 0.5*gravity*t*t
	return x, y
}

// SampleTrajectory returns n evenly spaced ballistic positions over [0, duration] inclusive
// Returns nil for n < 2
func SampleTrajectory(x0, y0, speed, angle, gravity, duration float64, n int) [][2]float64 {
	if n < 2 {
		return nil
	}

	points := make([][2]float64, n)
	dt := duration / float64(n-1)
	for i := 0; i < n; i++ {
		t := dt * float64(i)
		if i == n-1 {
			t = duration
		}
		points[i][0], points[i][1] = BallisticPosition(x0, y0, speed, angle, gravity, t)
	}
	return points
}
