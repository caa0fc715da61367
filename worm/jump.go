package worm

import (
	"math"

	"github.com/pkg/errors"

	"github.com/lixenwraith/worms/parameter"
	"github.com/lixenwraith/worms/physics"
)

// CanJump reports whether the worm has action points left and is not facing into the
// open interval (π, 2π) of the raw, unwrapped direction
func (w *Worm) CanJump() bool {
	facingDown := w.direction > math.Pi && w.direction < 2*math.Pi
	return w.actionPoints > 0 && !facingDown
}

// JumpVelocity returns the launch speed produced by spending all remaining action points
func (w *Worm) JumpVelocity() float64 {
	force := parameter.JumpForcePerActionPoint*float64(w.actionPoints) + w.mass*parameter.Gravity
	return physics.LaunchVelocity(force, w.mass, parameter.JumpImpulseDuration)
}

// JumpDistance returns the horizontal displacement of a jump from the current state
func (w *Worm) JumpDistance() float64 {
	return physics.Range(w.JumpVelocity(), w.direction, parameter.Gravity)
}

// JumpTime returns the flight duration of a jump, 0 when the worm cannot jump
func (w *Worm) JumpTime() float64 {
	if !w.CanJump() {
		return 0
	}
	return physics.FlightTime(w.JumpDistance(), w.JumpVelocity(), w.direction)
}

// JumpStep returns the in-flight position t seconds after launch
// Returns the current position when the worm cannot jump
func (w *Worm) JumpStep(t float64) (x, y float64) {
	if !w.CanJump() {
		return w.x, w.y
	}
	return physics.BallisticPosition(w.x, w.y, w.JumpVelocity(), w.direction, parameter.Gravity, t)
}

// Trajectory returns samples evenly spaced in-flight positions from launch to landing
// Returns nil when the worm cannot jump or samples < 2
func (w *Worm) Trajectory(samples int) [][2]float64 {
	if !w.CanJump() {
		return nil
	}
	return physics.SampleTrajectory(w.x, w.y, w.JumpVelocity(), w.direction, parameter.Gravity, w.JumpTime(), samples)
}

// Jump commits a jump: x advances by JumpDistance and all action points are spent
// The landing height is not applied; y keeps its launch value
func (w *Worm) Jump() error {
	if !w.CanJump() {
		return errors.Wrapf(ErrCannotJump, "jump with %d action points facing %v", w.actionPoints, w.direction)
	}

	nx := w.x + w.JumpDistance()
	if !IsValidPosition(nx) {
		return errors.Wrapf(ErrInvalidPosition, "jump lands at x %v", nx)
	}

	w.x = nx
	w.actionPoints = 0
	return nil
}
