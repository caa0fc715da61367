package worm

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/worms/parameter"
	"github.com/lixenwraith/worms/physics"
)

// StepCost returns the action point cost of moving steps along direction
// Vertical movement is weighted heavier; backward steps cost the same as forward
// Zero steps cost nothing in any direction
func StepCost(steps int, direction float64) int {
	if steps == 0 {
		return 0
	}
	return roundPoints(physics.AnisotropicCost(steps, direction, parameter.StepCostHorizontal, parameter.StepCostVertical))
}

// CanMove reports whether the worm has the action points to move steps
func (w *Worm) CanMove(steps int) bool {
	return w.actionPoints >= StepCost(steps, w.direction)
}

// Move advances the worm steps radius-lengths along its direction and spends the cost
// Moving zero steps always succeeds and changes nothing
func (w *Worm) Move(steps int) error {
	if steps == 0 {
		return nil
	}
	cost := StepCost(steps, w.direction)
	if w.actionPoints < cost {
		return errors.Wrapf(ErrInsufficientActionPoints, "move %d steps costs %d, have %d", steps, cost, w.actionPoints)
	}

	dx, dy := physics.Displacement(steps, w.direction, w.radius)
	nx, ny := w.x+dx, w.y+dy
	if !IsValidPosition(nx) || !IsValidPosition(ny) {
		return errors.Wrapf(ErrInvalidPosition, "move %d steps lands at (%v, %v)", steps, nx, ny)
	}

	w.x, w.y = nx, ny
	w.actionPoints = clampActionPoints(w.actionPoints-cost, w.maxActionPoints)
	return nil
}
