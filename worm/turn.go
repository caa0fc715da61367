package worm

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/worms/parameter"
	"github.com/lixenwraith/worms/physics"
)

// TurnCost returns the action point cost of rotating through angle radians
func TurnCost(angle float64) int {
	return roundPoints(physics.RotationCost(angle, parameter.TurnCostPerRevolution))
}

// CanTurn reports whether the worm has the action points to turn through angle
func (w *Worm) CanTurn(angle float64) bool {
	return w.actionPoints >= TurnCost(angle)
}

// Turn adds angle to the direction and spends the cost
// The direction is not wrapped into [0, 2π)
func (w *Worm) Turn(angle float64) error {
	nd := w.direction + angle
	if !IsValidDirection(nd) {
		return errors.Wrapf(ErrInvalidDirection, "turn by %v from %v", angle, w.direction)
	}

	cost := TurnCost(angle)
	if w.actionPoints < cost {
		return errors.Wrapf(ErrInsufficientActionPoints, "turn by %v costs %d, have %d", angle, cost, w.actionPoints)
	}

	w.direction = nd
	w.actionPoints = clampActionPoints(w.actionPoints-cost, w.maxActionPoints)
	return nil
}
