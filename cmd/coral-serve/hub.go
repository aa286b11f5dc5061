package main

import (
	"sync"

	"github.com/gorilla/websocket"
)

// growthEvent is the wire format broadcast to websocket clients. A
// "grow" event carries one newly occupied cell in occupation order; a
// "reset" event announces a restarted run. Every field is always
// encoded: seed 0 on a reset means "the configured seed", and grow
// coordinates may legitimately be small values.
type growthEvent struct {
	Type  string `json:"type"`
	Order int    `json:"order"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Seed  int64  `json:"seed"`
}

// hub fans growth events out to connected websocket clients.
type hub struct {
	mu         sync.Mutex
	clients    map[*websocket.Conn]bool
	broadcast  chan growthEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	logger     *Logger
}

func newHub(logger *Logger) *hub {
	h := &hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan growthEvent, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		logger:     logger,
	}
	go h.run()
	return h
}

func (h *hub) addClient(conn *websocket.Conn) {
	select {
	case h.register <- conn:
	case <-h.done:
	}
}

func (h *hub) removeClient(conn *websocket.Conn) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// publish queues an event without blocking the simulation loop. Events
// are dropped when the queue is full; the stream is advisory and the
// full history remains available over /history.
func (h *hub) publish(event growthEvent) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warnf("dropping growth event: broadcast queue full")
	}
}

func (h *hub) run() {
	for {
		select {
		case <-h.done:
			return

		case conn := <-h.register:
			if conn == nil {
				continue
			}
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			if conn == nil {
				continue
			}
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(event); err != nil {
					h.logger.Debugf("dropping websocket client: %v", err)
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *hub) close() {
	close(h.done)
	h.mu.Lock()
	for conn := range h.clients {
		conn.Close()
	}
	h.clients = map[*websocket.Conn]bool{}
	h.mu.Unlock()
}
