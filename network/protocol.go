package network

import (
	"encoding/json"
	"errors"

	"github.com/lixenwraith/worms/worm"
)

// Op names a request operation
type Op string

const (
	// Lifecycle
	OpSpawn Op = "spawn"
	OpState Op = "state"

	// Pre-checks, never fail once a worm exists
	OpCanMove Op = "can_move"
	OpCanTurn Op = "can_turn"
	OpCanJump Op = "can_jump"

	// Actions
	OpMove            Op = "move"
	OpTurn            Op = "turn"
	OpJump            Op = "jump"
	OpSetRadius       Op = "set_radius"
	OpRename          Op = "rename"
	OpSetActionPoints Op = "set_action_points"

	// Jump queries
	OpJumpTime   Op = "jump_time"
	OpJumpStep   Op = "jump_step"
	OpTrajectory Op = "trajectory"
)

// Protocol-level error kinds, reported alongside worm kinds in Response.Kind
const (
	KindBadRequest  = "bad_request"
	KindNoWorm      = "no_worm"
	KindUnencodable = "unencodable"
)

// Request is one client frame; only the fields used by Op are read
type Request struct {
	Op Op `json:"op"`

	// spawn
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	Direction float64 `json:"direction,omitempty"`
	Radius    float64 `json:"radius,omitempty"`
	Name      string  `json:"name,omitempty"`

	Steps        int     `json:"steps,omitempty"`
	Angle        float64 `json:"angle,omitempty"`
	Time         float64 `json:"t,omitempty"`
	Samples      int     `json:"samples,omitempty"`
	ActionPoints int     `json:"action_points,omitempty"`
}

// Response answers one request
// State is included whenever the session has a worm
type Response struct {
	Op     Op           `json:"op"`
	OK     bool         `json:"ok"`
	Kind   string       `json:"kind,omitempty"`
	Error  string       `json:"error,omitempty"`
	State  *worm.State  `json:"state,omitempty"`
	Value  any          `json:"value,omitempty"`
	Points [][2]float64 `json:"points,omitempty"`
}

var errEmptyFrame = errors.New("empty frame")

// DecodeRequest parses a client frame
func DecodeRequest(b []byte) (Request, error) {
	if len(b) == 0 {
		return Request{}, errEmptyFrame
	}
	var req Request
	if err := json.Unmarshal(b, &req); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Encode serializes the response
func (r *Response) Encode() ([]byte, error) {
	return json.Marshal(r)
}
