package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"coral-ca/internal/sims/coral"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type stateResponse struct {
	Name     string `json:"name"`
	GridSize int    `json:"grid_size"`
	Seed     int64  `json:"seed"`
	Step     int    `json:"step"`
	Tips     int    `json:"tips"`
	Cells    int    `json:"cells"`
	Done     bool   `json:"done"`
}

// Routes returns the HTTP handler for the server.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/state", s.handleState)
	mux.HandleFunc("/history", s.handleHistory)
	mux.HandleFunc("/reset", s.handleReset)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// GET /state — current run summary.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	cfg := s.world.Config()
	resp := stateResponse{
		Name:     s.world.Name(),
		GridSize: cfg.GridSize,
		Seed:     cfg.Seed,
		Step:     s.world.StepCount(),
		Tips:     s.world.TipCount(),
		Cells:    len(s.world.History()),
		Done:     s.world.Done(),
	}
	s.mu.Unlock()
	writeJSON(w, resp)
}

// GET /history — every occupied cell in occupation order.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	history := append([]coral.Point(nil), s.world.History()...)
	s.mu.Unlock()
	writeJSON(w, history)
}

// POST /reset?seed=N — restart the run. Seed 0 keeps the configured seed.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "reset requires POST", http.StatusMethodNotAllowed)
		return
	}
	var seed int64
	if v := r.URL.Query().Get("seed"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "invalid seed: "+err.Error(), http.StatusBadRequest)
			return
		}
		seed = parsed
	}
	s.reset(seed)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// GET /ws — upgrade and stream growth events.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warnf("websocket upgrade failed: %v", err)
		return
	}
	s.hub.addClient(conn)
	s.logger.Debugf("websocket client connected: %s", conn.RemoteAddr())

	// Drain (and discard) client reads so closes are noticed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.hub.removeClient(conn)
				return
			}
		}
	}()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
