// Package facade is the external call surface over package worm. It exposes the fixed
// operation set used by game front-ends and collapses every worm failure into *ModelError.
package facade

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/worms/worm"
)

// Reason strings per failure kind, shown to players
var reasons = map[worm.Kind]string{
	worm.KindInvalidPosition:          "not a valid position",
	worm.KindInvalidDirection:         "not a valid direction",
	worm.KindInvalidRadius:            "not a valid radius",
	worm.KindInvalidName:              "that name is not valid",
	worm.KindInsufficientActionPoints: "not allowed to move",
	worm.KindCannotJump:               "can't jump",
}

// ModelError is the single error type returned by Facade
type ModelError struct {
	Kind   worm.Kind
	Reason string
	cause  error
}

func (e *ModelError) Error() string { return e.Reason }

// Unwrap exposes the underlying worm error for errors.Is against worm sentinels
func (e *ModelError) Unwrap() error { return e.cause }

// Cause implements the github.com/pkg/errors causer interface
func (e *ModelError) Cause() error { return e.cause }

// Translate converts a worm error into *ModelError, nil stays nil
// Errors that are already *ModelError pass through unchanged
func Translate(err error) error {
	if err == nil {
		return nil
	}
	var me *ModelError
	if errors.As(err, &me) {
		return me
	}

	kind := worm.KindOf(err)
	reason, ok := reasons[kind]
	if !ok {
		reason = err.Error()
	}
	return &ModelError{Kind: kind, Reason: reason, cause: err}
}

// Facade holds no state; every call operates on the worm passed in
type Facade struct{}

// New returns a Facade
func New() *Facade {
	return &Facade{}
}

// CreateWorm validates the arguments in order and returns a worm with full action points
func (f *Facade) CreateWorm(x, y, direction, radius float64, name string) (*worm.Worm, error) {
	w, err := worm.New(x, y, direction, radius, name)
	if err != nil {
		return nil, Translate(err)
	}
	return w, nil
}

func (f *Facade) CanMove(w *worm.Worm, steps int) bool { return w.CanMove(steps) }

// Move advances the worm steps along its direction, spending the step cost
func (f *Facade) Move(w *worm.Worm, steps int) error { return Translate(w.Move(steps)) }

func (f *Facade) CanTurn(w *worm.Worm, angle float64) bool { return w.CanTurn(angle) }

// Turn rotates the worm by angle without wrapping, spending the turn cost
func (f *Facade) Turn(w *worm.Worm, angle float64) error { return Translate(w.Turn(angle)) }

func (f *Facade) CanJump(w *worm.Worm) bool { return w.CanJump() }

// Jump moves the worm by the jump distance and spends all action points
func (f *Facade) Jump(w *worm.Worm) error { return Translate(w.Jump()) }

// JumpTime returns 0 for a worm that cannot jump; it never fails
func (f *Facade) JumpTime(w *worm.Worm) float64 { return w.JumpTime() }

// JumpStep returns the in-flight position as a two-element slice
func (f *Facade) JumpStep(w *worm.Worm, t float64) []float64 {
	x, y := w.JumpStep(t)
	return []float64{x, y}
}

func (f *Facade) X(w *worm.Worm) float64           { return w.X() }
func (f *Facade) Y(w *worm.Worm) float64           { return w.Y() }
func (f *Facade) Orientation(w *worm.Worm) float64 { return w.Direction() }
func (f *Facade) Radius(w *worm.Worm) float64      { return w.Radius() }

// SetRadius resizes the worm and clamps its action points to the new maximum
func (f *Facade) SetRadius(w *worm.Worm, radius float64) error {
	return Translate(w.SetRadius(radius))
}

func (f *Facade) MinimalRadius(w *worm.Worm) float64 { return w.MinimalRadius() }
func (f *Facade) ActionPoints(w *worm.Worm) int      { return w.ActionPoints() }
func (f *Facade) MaxActionPoints(w *worm.Worm) int   { return w.MaxActionPoints() }
func (f *Facade) Name(w *worm.Worm) string           { return w.Name() }

// Rename replaces the worm's name when it is valid
func (f *Facade) Rename(w *worm.Worm, name string) error { return Translate(w.Rename(name)) }

func (f *Facade) Mass(w *worm.Worm) float64 { return w.Mass() }
