package worm

import (
	"github.com/pkg/errors"
)

// Sentinel errors, wrapped with context by the failing operation
var (
	ErrInvalidPosition          = errors.New("invalid position")
	ErrInvalidDirection         = errors.New("invalid direction")
	ErrInvalidRadius            = errors.New("invalid radius")
	ErrInvalidName              = errors.New("invalid name")
	ErrInsufficientActionPoints = errors.New("insufficient action points")
	ErrCannotJump               = errors.New("cannot jump")
)

// Kind classifies a worm error for callers that map failures to their own error type
type Kind uint8

const (
	KindNone Kind = iota
	KindInvalidPosition
	KindInvalidDirection
	KindInvalidRadius
	KindInvalidName
	KindInsufficientActionPoints
	KindCannotJump
)

var kindNames = [...]string{
	KindNone:                     "none",
	KindInvalidPosition:          "invalid_position",
	KindInvalidDirection:         "invalid_direction",
	KindInvalidRadius:            "invalid_radius",
	KindInvalidName:              "invalid_name",
	KindInsufficientActionPoints: "insufficient_action_points",
	KindCannotJump:               "cannot_jump",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindOf returns the kind of a worm error, KindNone for nil or foreign errors
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidPosition):
		return KindInvalidPosition
	case errors.Is(err, ErrInvalidDirection):
		return KindInvalidDirection
	case errors.Is(err, ErrInvalidRadius):
		return KindInvalidRadius
	case errors.Is(err, ErrInvalidName):
		return KindInvalidName
	case errors.Is(err, ErrInsufficientActionPoints):
		return KindInsufficientActionPoints
	case errors.Is(err, ErrCannotJump):
		return KindCannotJump
	default:
		return KindNone
	}
}
