package network

import (
	"encoding/json"
	"math"
	"testing"
)

func spawned(t *testing.T) *Session {
	t.Helper()
	s := NewSession(1, nil)
	resp := s.Handle(Request{Op: OpSpawn, Direction: math.Pi / 4, Radius: 1, Name: "Slim Jim"})
	if !resp.OK {
		t.Fatalf("Expected spawn to succeed, got %s: %s", resp.Kind, resp.Error)
	}
	return s
}

// TestSessionRequiresWorm verifies actions before spawn report no_worm
func TestSessionRequiresWorm(t *testing.T) {
	s := NewSession(1, nil)

	for _, op := range []Op{OpState, OpMove, OpTurn, OpJump, OpTrajectory} {
		resp := s.Handle(Request{Op: op})
		if resp.OK || resp.Kind != KindNoWorm {
			t.Errorf("%s: expected no_worm, got ok=%v kind=%q", op, resp.OK, resp.Kind)
		}
		if resp.State != nil {
			t.Errorf("%s: expected no state, got %+v", op, resp.State)
		}
	}

	if resp := s.Handle(Request{Op: "fly"}); resp.Kind != KindBadRequest {
		t.Errorf("Expected bad_request for unknown op, got %q", resp.Kind)
	}
}

// TestSessionSpawn verifies spawn state and that a rejected respawn keeps the old worm
func TestSessionSpawn(t *testing.T) {
	s := spawned(t)

	resp := s.Handle(Request{Op: OpState})
	if resp.State == nil {
		t.Fatal("Expected state after spawn")
	}
	if resp.State.Name != "Slim Jim" || resp.State.MaxActionPoints != 4448 || resp.State.ActionPoints != 4448 {
		t.Errorf("Unexpected spawn state %+v", resp.State)
	}

	resp = s.Handle(Request{Op: OpSpawn, Radius: 0.1, Name: "Tiny"})
	if resp.OK || resp.Kind != "invalid_radius" {
		t.Errorf("Expected invalid_radius, got ok=%v kind=%q", resp.OK, resp.Kind)
	}
	if resp.Error != "not a valid radius" {
		t.Errorf("Expected facade reason, got %q", resp.Error)
	}
	if resp.State == nil || resp.State.Name != "Slim Jim" {
		t.Errorf("Expected previous worm kept, got %+v", resp.State)
	}

	resp = s.Handle(Request{Op: OpSpawn, Radius: 1, Name: "lowercase"})
	if resp.Kind != "invalid_name" {
		t.Errorf("Expected invalid_name, got %q", resp.Kind)
	}
}

// TestSessionMoveAndTurn verifies action ops spend points and report failures by kind
func TestSessionMoveAndTurn(t *testing.T) {
	s := spawned(t)

	resp := s.Handle(Request{Op: OpCanMove, Steps: 2})
	if v, ok := resp.Value.(bool); !ok || !v {
		t.Errorf("Expected can_move true, got %v", resp.Value)
	}

	resp = s.Handle(Request{Op: OpMove, Steps: 2})
	if !resp.OK {
		t.Fatalf("Expected move to succeed, got %s", resp.Error)
	}
	if resp.State.ActionPoints != 4448-7 {
		t.Errorf("Expected %d action points, got %d", 4448-7, resp.State.ActionPoints)
	}

	s.Handle(Request{Op: OpSetActionPoints, ActionPoints: 3})
	resp = s.Handle(Request{Op: OpMove, Steps: 2})
	if resp.OK || resp.Kind != "insufficient_action_points" || resp.Error != "not allowed to move" {
		t.Errorf("Expected insufficient_action_points, got ok=%v kind=%q error=%q", resp.OK, resp.Kind, resp.Error)
	}
	if resp.State.ActionPoints != 3 {
		t.Errorf("Expected rejected move to keep 3 points, got %d", resp.State.ActionPoints)
	}

	resp = s.Handle(Request{Op: OpCanTurn, Angle: math.Pi})
	if v, ok := resp.Value.(bool); !ok || v {
		t.Errorf("Expected can_turn false, got %v", resp.Value)
	}

	s.Handle(Request{Op: OpSetActionPoints, ActionPoints: 1 << 30})
	if got := s.Worm().ActionPoints(); got != 4448 {
		t.Errorf("Expected set_action_points clamped to 4448, got %d", got)
	}

	resp = s.Handle(Request{Op: OpTurn, Angle: math.Pi / 2})
	if !resp.OK || resp.State.Direction != math.Pi/4+math.Pi/2 {
		t.Errorf("Expected turn to 3π/4, got ok=%v state=%+v", resp.OK, resp.State)
	}
}

// TestSessionJump verifies jump queries and the committed jump
func TestSessionJump(t *testing.T) {
	s := spawned(t)

	resp := s.Handle(Request{Op: OpJumpTime})
	flight, ok := resp.Value.(float64)
	if !ok || flight <= 0 {
		t.Fatalf("Expected positive jump time, got %v", resp.Value)
	}

	resp = s.Handle(Request{Op: OpJumpStep, Time: 0})
	step, ok := resp.Value.([]float64)
	if !ok || len(step) != 2 || step[0] != 0 || step[1] != 0 {
		t.Errorf("Expected launch position [0 0], got %v", resp.Value)
	}

	resp = s.Handle(Request{Op: OpTrajectory, Samples: 10})
	if len(resp.Points) != 10 {
		t.Errorf("Expected 10 points, got %d", len(resp.Points))
	}

	resp = s.Handle(Request{Op: OpTrajectory, Samples: 1 << 20})
	if len(resp.Points) != DefaultConfig().MaxTrajectorySamples {
		t.Errorf("Expected samples capped at %d, got %d", DefaultConfig().MaxTrajectorySamples, len(resp.Points))
	}

	expected := s.Worm().X() + s.Worm().JumpDistance()
	resp = s.Handle(Request{Op: OpJump})
	if !resp.OK {
		t.Fatalf("Expected jump to succeed, got %s", resp.Error)
	}
	if resp.State.X != expected || resp.State.ActionPoints != 0 {
		t.Errorf("Expected x=%v with 0 points, got %+v", expected, resp.State)
	}

	resp = s.Handle(Request{Op: OpJump})
	if resp.OK || resp.Kind != "cannot_jump" || resp.Error != "can't jump" {
		t.Errorf("Expected cannot_jump, got ok=%v kind=%q error=%q", resp.OK, resp.Kind, resp.Error)
	}
}

// TestSessionResizeAndRename verifies set_radius and rename
func TestSessionResizeAndRename(t *testing.T) {
	s := spawned(t)

	resp := s.Handle(Request{Op: OpSetRadius, Radius: 0.25})
	if !resp.OK || resp.State.MaxActionPoints != 70 || resp.State.ActionPoints != 70 {
		t.Errorf("Expected radius 0.25 with 70 points, got ok=%v state=%+v", resp.OK, resp.State)
	}

	resp = s.Handle(Request{Op: OpSetRadius, Radius: 0.2})
	if resp.Kind != "invalid_radius" {
		t.Errorf("Expected invalid_radius, got %q", resp.Kind)
	}

	resp = s.Handle(Request{Op: OpRename, Name: "Lord 'Squirm'"})
	if !resp.OK || resp.State.Name != "Lord 'Squirm'" {
		t.Errorf("Expected rename, got ok=%v state=%+v", resp.OK, resp.State)
	}

	resp = s.Handle(Request{Op: OpRename, Name: "Azerty5"})
	if resp.Kind != "invalid_name" || resp.Error != "that name is not valid" {
		t.Errorf("Expected invalid_name, got kind=%q error=%q", resp.Kind, resp.Error)
	}
}

// TestDecodeRequest verifies frame parsing
func TestDecodeRequest(t *testing.T) {
	req, err := DecodeRequest([]byte(`{"op":"move","steps":3}`))
	if err != nil {
		t.Fatalf("Expected decode to succeed, got %v", err)
	}
	if req.Op != OpMove || req.Steps != 3 {
		t.Errorf("Unexpected request %+v", req)
	}

	if _, err := DecodeRequest(nil); err == nil {
		t.Error("Expected error for empty frame")
	}
	if _, err := DecodeRequest([]byte(`{"op":`)); err == nil {
		t.Error("Expected error for malformed frame")
	}
}

// TestEncodeResponseFallback verifies non-finite state degrades to an unencodable failure
func TestEncodeResponseFallback(t *testing.T) {
	s := spawned(t)
	if err := s.Worm().SetX(math.Inf(1)); err != nil {
		t.Fatalf("Expected infinite x to be valid, got %v", err)
	}

	var out Response
	if err := json.Unmarshal(encodeResponse(s.Handle(Request{Op: OpState})), &out); err != nil {
		t.Fatalf("Expected decodable fallback, got %v", err)
	}
	if out.OK || out.Kind != KindUnencodable || out.Op != OpState {
		t.Errorf("Expected unencodable state failure, got %+v", out)
	}
}
