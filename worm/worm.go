// Package worm models a single worm actor: position, facing, size, derived mass and the
// action point budget that gates moving, turning and jumping.
//
// Every mutating method validates before it writes; a rejected call returns one of the
// package sentinel errors (wrapped with context) and leaves the worm unchanged.
// A *Worm is not safe for concurrent use; the owner serializes access.
package worm

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/worms/parameter"
)

// Worm is the actor state. Mass and max action points are derived from radius and are
// only ever written together through SetRadius
type Worm struct {
	x, y      float64
	direction float64

	radius           float64
	radiusLowerBound float64
	mass             float64

	maxActionPoints int
	actionPoints    int

	name string
}

// State is a value copy of every observable worm field
type State struct {
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	Direction       float64 `json:"direction"`
	Radius          float64 `json:"radius"`
	MinimalRadius   float64 `json:"minimal_radius"`
	Mass            float64 `json:"mass"`
	ActionPoints    int     `json:"action_points"`
	MaxActionPoints int     `json:"max_action_points"`
	Name            string  `json:"name"`
}

// New creates a worm with full action points
// Returns the first failing validation in argument order
func New(x, y, direction, radius float64, name string) (*Worm, error) {
	if !IsValidPosition(x) || !IsValidPosition(y) {
		return nil, errors.Wrapf(ErrInvalidPosition, "new worm at (%v, %v)", x, y)
	}
	if !IsValidDirection(direction) {
		return nil, errors.Wrapf(ErrInvalidDirection, "new worm facing %v", direction)
	}
	if !IsValidRadius(radius, parameter.WormRadiusLowerBound) {
		return nil, errors.Wrapf(ErrInvalidRadius, "new worm radius %v below %v", radius, parameter.WormRadiusLowerBound)
	}
	if !IsValidName(name) {
		return nil, errors.Wrapf(ErrInvalidName, "new worm name %q", name)
	}

	w := &Worm{
		x:                x,
		y:                y,
		direction:        direction,
		radiusLowerBound: parameter.WormRadiusLowerBound,
		name:             name,
	}
	w.applyRadius(radius)
	w.actionPoints = w.maxActionPoints
	return w, nil
}

func (w *Worm) X() float64             { return w.x }
func (w *Worm) Y() float64             { return w.y }
func (w *Worm) Direction() float64     { return w.direction }
func (w *Worm) Radius() float64        { return w.radius }
func (w *Worm) MinimalRadius() float64 { return w.radiusLowerBound }
func (w *Worm) Mass() float64          { return w.mass }
func (w *Worm) ActionPoints() int      { return w.actionPoints }
func (w *Worm) MaxActionPoints() int   { return w.maxActionPoints }
func (w *Worm) Name() string           { return w.name }

// Snapshot returns the current observable state
func (w *Worm) Snapshot() State {
	return State{
		X:               w.x,
		Y:               w.y,
		Direction:       w.direction,
		Radius:          w.radius,
		MinimalRadius:   w.radiusLowerBound,
		Mass:            w.mass,
		ActionPoints:    w.actionPoints,
		MaxActionPoints: w.maxActionPoints,
		Name:            w.name,
	}
}

// SetX moves the worm horizontally without spending action points
func (w *Worm) SetX(x float64) error {
	if !IsValidPosition(x) {
		return errors.Wrapf(ErrInvalidPosition, "set x %v", x)
	}
	w.x = x
	return nil
}

// SetY moves the worm vertically without spending action points
func (w *Worm) SetY(y float64) error {
	if !IsValidPosition(y) {
		return errors.Wrapf(ErrInvalidPosition, "set y %v", y)
	}
	w.y = y
	return nil
}

// SetDirection faces the worm without spending action points; the angle is stored as given
func (w *Worm) SetDirection(direction float64) error {
	if !IsValidDirection(direction) {
		return errors.Wrapf(ErrInvalidDirection, "set direction %v", direction)
	}
	w.direction = direction
	return nil
}

// CanHaveAsRadius reports whether r satisfies this worm's radius lower bound
func (w *Worm) CanHaveAsRadius(r float64) bool {
	return IsValidRadius(r, w.radiusLowerBound)
}

// SetRadius resizes the worm, re-deriving mass and max action points
// Current action points are clamped down to the new max, never raised
func (w *Worm) SetRadius(radius float64) error {
	if !w.CanHaveAsRadius(radius) {
		return errors.Wrapf(ErrInvalidRadius, "set radius %v below %v", radius, w.radiusLowerBound)
	}
	w.applyRadius(radius)
	w.actionPoints = clampActionPoints(w.actionPoints, w.maxActionPoints)
	return nil
}

// applyRadius is the only writer of radius, mass and maxActionPoints
func (w *Worm) applyRadius(radius float64) {
	w.radius = radius
	w.mass = Mass(radius)
	w.maxActionPoints = MaxActionPoints(w.mass)
}

// Rename gives the worm a new name
func (w *Worm) Rename(name string) error {
	if !IsValidName(name) {
		return errors.Wrapf(ErrInvalidName, "rename to %q", name)
	}
	w.name = name
	return nil
}

// SetActionPoints sets the budget, clamped into [0, MaxActionPoints]
func (w *Worm) SetActionPoints(n int) {
	w.actionPoints = clampActionPoints(n, w.maxActionPoints)
}
