package network

import (
	"context"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// Server accepts WebSocket remote control sessions at /ws and serves the protocol schema at /schema
type Server struct {
	config   *Config
	upgrader websocket.Upgrader
	mux      *http.ServeMux

	nextID atomic.Uint64
	active atomic.Int32

	mu       sync.Mutex
	sessions map[uint64]*websocket.Conn
}

// NewServer creates a server; nil cfg uses DefaultConfig
// Non-positive limits and durations fall back to their defaults
func NewServer(cfg *Config) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg = cfg.withDefaults()
	s := &Server{
		config: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		mux:      http.NewServeMux(),
		sessions: make(map[uint64]*websocket.Conn),
	}
	s.mux.HandleFunc("/ws", s.handleWS)
	s.mux.HandleFunc("/schema", s.handleSchema)
	return s
}

// ServeHTTP routes to the WebSocket and schema endpoints
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ActiveSessions returns the number of connected clients
func (s *Server) ActiveSessions() int {
	return int(s.active.Load())
}

// ListenAndServe serves until ctx is cancelled, then closes every session
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.config.Address,
		Handler:           s,
		ReadHeaderTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("worm server listening on %s (ws endpoint: /ws)", s.config.Address)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.WriteTimeout)
	defer cancel()
	err := httpServer.Shutdown(shutdownCtx)
	s.closeAll()
	return err
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	if int(s.active.Add(1)) > s.config.MaxSessions {
		s.active.Add(-1)
		http.Error(w, "too many sessions", http.StatusServiceUnavailable)
		return
	}
	defer s.active.Add(-1)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade: %v", err)
		return
	}

	id := s.nextID.Add(1)
	s.track(id, conn)
	defer s.untrack(id)
	defer conn.Close()

	log.Printf("session %d opened from %s", id, r.RemoteAddr)
	s.serve(conn, NewSession(id, s.config))
	log.Printf("session %d closed", id)
}

// serve runs the session's reader loop; responses are written from this goroutine only
func (s *Server) serve(conn *websocket.Conn, session *Session) {
	conn.SetReadLimit(s.config.ReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	})

	done := make(chan struct{})
	defer close(done)
	go s.keepalive(conn, done)

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("session %d read: %v", session.ID(), err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var resp Response
		req, err := DecodeRequest(msg)
		if err != nil {
			resp = Response{Op: req.Op, Kind: KindBadRequest, Error: err.Error(), State: session.state()}
		} else {
			resp = session.Handle(req)
		}
		if !resp.OK {
			log.Printf("session %d rejected %s: %s", session.ID(), resp.Op, resp.Error)
		}

		_ = conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, encodeResponse(resp)); err != nil {
			log.Printf("session %d write: %v", session.ID(), err)
			return
		}
	}
}

func (s *Server) keepalive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(s.config.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			deadline := time.Now().Add(s.config.WriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// encodeResponse falls back to a bare failure when the state holds values JSON cannot carry
func encodeResponse(resp Response) []byte {
	data, err := resp.Encode()
	if err == nil {
		return data
	}
	fallback := Response{Op: resp.Op, Kind: KindUnencodable, Error: err.Error()}
	data, _ = fallback.Encode()
	return data
}

func (s *Server) track(id uint64, conn *websocket.Conn) {
	s.mu.Lock()
	s.sessions[id] = conn
	s.mu.Unlock()
}

func (s *Server) untrack(id uint64) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown")
	for id, conn := range s.sessions {
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		_ = conn.Close()
		delete(s.sessions, id)
	}
}
