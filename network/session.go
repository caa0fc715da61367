package network

import (
	"fmt"

	"github.com/lixenwraith/worms/facade"
	"github.com/lixenwraith/worms/worm"
)

// Session is one client's view of the model: at most one worm, driven by one goroutine
// Session is not safe for concurrent use
type Session struct {
	id         uint64
	facade     *facade.Facade
	worm       *worm.Worm
	maxSamples int
}

// NewSession creates an empty session; the client must spawn before acting
func NewSession(id uint64, cfg *Config) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Session{
		id:         id,
		facade:     facade.New(),
		maxSamples: cfg.MaxTrajectorySamples,
	}
}

// ID returns the session identifier
func (s *Session) ID() uint64 { return s.id }

// Worm returns the session's worm, nil before the first successful spawn
func (s *Session) Worm() *worm.Worm { return s.worm }

// Handle executes one request against the session's worm
func (s *Session) Handle(req Request) Response {
	if req.Op == OpSpawn {
		return s.spawn(req)
	}

	if s.worm == nil {
		if !knownOp(req.Op) {
			return s.reject(req.Op, KindBadRequest, fmt.Sprintf("unknown op %q", req.Op))
		}
		return s.reject(req.Op, KindNoWorm, "no worm spawned")
	}

	f, w := s.facade, s.worm
	switch req.Op {
	case OpState:
		return s.ok(req.Op, nil)

	case OpCanMove:
		return s.ok(req.Op, f.CanMove(w, req.Steps))
	case OpCanTurn:
		return s.ok(req.Op, f.CanTurn(w, req.Angle))
	case OpCanJump:
		return s.ok(req.Op, f.CanJump(w))

	case OpMove:
		return s.result(req.Op, f.Move(w, req.Steps))
	case OpTurn:
		return s.result(req.Op, f.Turn(w, req.Angle))
	case OpJump:
		return s.result(req.Op, f.Jump(w))
	case OpSetRadius:
		return s.result(req.Op, f.SetRadius(w, req.Radius))
	case OpRename:
		return s.result(req.Op, f.Rename(w, req.Name))
	case OpSetActionPoints:
		w.SetActionPoints(req.ActionPoints)
		return s.ok(req.Op, nil)

	case OpJumpTime:
		return s.ok(req.Op, f.JumpTime(w))
	case OpJumpStep:
		return s.ok(req.Op, f.JumpStep(w, req.Time))
	case OpTrajectory:
		n := req.Samples
		if n > s.maxSamples {
			n = s.maxSamples
		}
		resp := s.ok(req.Op, nil)
		resp.Points = w.Trajectory(n)
		return resp
	}

	return s.reject(req.Op, KindBadRequest, fmt.Sprintf("unknown op %q", req.Op))
}

// spawn replaces the session worm; a rejected spawn keeps the previous one
func (s *Session) spawn(req Request) Response {
	w, err := s.facade.CreateWorm(req.X, req.Y, req.Direction, req.Radius, req.Name)
	if err != nil {
		return s.result(req.Op, err)
	}
	s.worm = w
	return s.ok(req.Op, nil)
}

func (s *Session) ok(op Op, value any) Response {
	return Response{Op: op, OK: true, State: s.state(), Value: value}
}

// result maps a facade error to a failed response, nil to success
func (s *Session) result(op Op, err error) Response {
	if err == nil {
		return s.ok(op, nil)
	}
	kind := worm.KindNone
	if me, ok := err.(*facade.ModelError); ok {
		kind = me.Kind
	}
	return s.reject(op, kind.String(), err.Error())
}

func (s *Session) reject(op Op, kind, msg string) Response {
	return Response{Op: op, OK: false, Kind: kind, Error: msg, State: s.state()}
}

func (s *Session) state() *worm.State {
	if s.worm == nil {
		return nil
	}
	st := s.worm.Snapshot()
	return &st
}

func knownOp(op Op) bool {
	switch op {
	case OpSpawn, OpState, OpCanMove, OpCanTurn, OpCanJump, OpMove, OpTurn, OpJump,
		OpSetRadius, OpRename, OpSetActionPoints, OpJumpTime, OpJumpStep, OpTrajectory:
		return true
	}
	return false
}
