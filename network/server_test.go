package network

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func startServer(t *testing.T, cfg *Config) (*Server, string) {
	t.Helper()
	srv := NewServer(cfg)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return srv, "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, req Request) Response {
	t.Helper()
	_ = conn.SetWriteDeadline(time.Now().Add(2 * time.Second))
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("Failed to write %s: %v", req.Op, err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var resp Response
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("Failed to read %s response: %v", req.Op, err)
	}
	return resp
}

// TestServerSession verifies a full spawn, move, jump exchange over the wire
func TestServerSession(t *testing.T) {
	_, url := startServer(t, nil)
	conn := dial(t, url)

	resp := roundTrip(t, conn, Request{Op: OpMove, Steps: 1})
	if resp.Kind != KindNoWorm {
		t.Errorf("Expected no_worm before spawn, got %q", resp.Kind)
	}

	resp = roundTrip(t, conn, Request{Op: OpSpawn, Direction: math.Pi / 4, Radius: 1, Name: "Noodle"})
	if !resp.OK || resp.State == nil || resp.State.Name != "Noodle" {
		t.Fatalf("Expected spawn, got %+v", resp)
	}

	resp = roundTrip(t, conn, Request{Op: OpMove, Steps: 2})
	if !resp.OK || resp.State.ActionPoints != 4441 {
		t.Errorf("Expected 4441 points after move, got %+v", resp.State)
	}

	resp = roundTrip(t, conn, Request{Op: OpCanJump})
	if v, ok := resp.Value.(bool); !ok || !v {
		t.Errorf("Expected can_jump true, got %v", resp.Value)
	}

	resp = roundTrip(t, conn, Request{Op: OpTrajectory, Samples: 5})
	if len(resp.Points) != 5 {
		t.Errorf("Expected 5 trajectory points, got %d", len(resp.Points))
	}

	resp = roundTrip(t, conn, Request{Op: OpJump})
	if !resp.OK || resp.State.ActionPoints != 0 {
		t.Errorf("Expected jump to spend all points, got %+v", resp)
	}

	resp = roundTrip(t, conn, Request{Op: OpJump})
	if resp.OK || resp.Kind != "cannot_jump" {
		t.Errorf("Expected cannot_jump, got %+v", resp)
	}
}

// TestServerMalformedFrame verifies bad frames get bad_request and keep the session open
func TestServerMalformedFrame(t *testing.T) {
	_, url := startServer(t, nil)
	conn := dial(t, url)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"op":`)); err != nil {
		t.Fatalf("Failed to write: %v", err)
	}
	var resp Response
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("Failed to read: %v", err)
	}
	if resp.OK || resp.Kind != KindBadRequest {
		t.Errorf("Expected bad_request, got %+v", resp)
	}

	resp = roundTrip(t, conn, Request{Op: OpState})
	if resp.Kind != KindNoWorm {
		t.Errorf("Expected session still open with no_worm, got %+v", resp)
	}
}

// TestServerSessionsIsolated verifies each connection owns its own worm
func TestServerSessionsIsolated(t *testing.T) {
	_, url := startServer(t, nil)
	a := dial(t, url)
	b := dial(t, url)

	roundTrip(t, a, Request{Op: OpSpawn, Radius: 1, Name: "Alpha"})

	resp := roundTrip(t, b, Request{Op: OpState})
	if resp.Kind != KindNoWorm {
		t.Errorf("Expected second session without worm, got %+v", resp)
	}
}

// TestServerMaxSessions verifies connections beyond the limit are refused
func TestServerMaxSessions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSessions = 1
	srv, url := startServer(t, cfg)

	conn := dial(t, url)
	roundTrip(t, conn, Request{Op: OpState})
	if srv.ActiveSessions() != 1 {
		t.Errorf("Expected 1 active session, got %d", srv.ActiveSessions())
	}

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("Expected second dial to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %v", resp)
	}
}

// TestServerReadLimit verifies oversized frames close the session
func TestServerReadLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReadLimit = 64
	_, url := startServer(t, cfg)
	conn := dial(t, url)

	big := `{"op":"rename","name":"` + strings.Repeat("A", 256) + `"}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(big)); err != nil {
		t.Fatalf("Failed to write: %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("Expected connection closed after oversized frame")
	}
}

// TestServerZeroDurations verifies non-positive timings fall back to defaults instead of crashing
func TestServerZeroDurations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReadTimeout = 0
	cfg.WriteTimeout = -time.Second
	cfg.PingInterval = 0
	cfg.ReadLimit = 0
	srv, url := startServer(t, cfg)

	if srv.config.PingInterval != DefaultConfig().PingInterval || srv.config.ReadTimeout != DefaultConfig().ReadTimeout {
		t.Errorf("Expected default timings, got %+v", srv.config)
	}
	if cfg.PingInterval != 0 {
		t.Error("Expected caller config left untouched")
	}

	conn := dial(t, url)
	resp := roundTrip(t, conn, Request{Op: OpSpawn, Radius: 1, Name: "Steady"})
	if !resp.OK {
		t.Errorf("Expected spawn on defaulted config, got %+v", resp)
	}
	resp = roundTrip(t, conn, Request{Op: OpState})
	if !resp.OK {
		t.Errorf("Expected session to stay open, got %+v", resp)
	}
}

// TestServerSchema verifies /schema serves the reflected protocol
func TestServerSchema(t *testing.T) {
	srv := NewServer(nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`"request"`, `"response"`, `"action_points"`, `"points"`, "Worm Request"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected schema to contain %s", want)
		}
	}
}
