package main

import (
	"sync"
	"time"

	"coral-ca/internal/core"
	"coral-ca/internal/sims/coral"
)

// Server owns the growth world and streams its progress. The world is
// only ever touched while holding mu; websocket fan-out happens on the
// hub's goroutine so the step loop never blocks on slow clients.
type Server struct {
	mu        sync.Mutex
	world     *coral.World
	published int

	hub    *hub
	logger *Logger
	tps    int
	done   chan struct{}
}

// NewServer wraps a configured world.
func NewServer(world *coral.World, tps int, logger *Logger) *Server {
	return &Server{
		world:     world,
		published: len(world.History()),
		hub:       newHub(logger),
		logger:    logger,
		tps:       tps,
		done:      make(chan struct{}),
	}
}

// Run advances the simulation at the configured tick rate until Close.
// Once the run terminates the loop idles; a /reset starts it growing
// again.
func (s *Server) Run() {
	ticker := core.NewFixedStep(s.tps)
	for {
		select {
		case <-s.done:
			return
		default:
		}
		if !ticker.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		s.step()
	}
}

func (s *Server) step() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.world.Done() {
		return
	}
	s.world.Step()
	history := s.world.History()
	for ; s.published < len(history); s.published++ {
		p := history[s.published]
		s.hub.publish(growthEvent{Type: "grow", Order: s.published, X: p.X, Y: p.Y})
	}
	if s.world.Done() {
		s.logger.Infof("run finished: %d cells after %d steps", len(history), s.world.StepCount())
	}
}

func (s *Server) reset(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.world.Reset(seed)
	s.published = len(s.world.History())
	s.hub.publish(growthEvent{Type: "reset", Seed: seed})
	s.logger.Infof("run reset: seed=%d", seed)
}

// Close stops the step loop and disconnects all clients.
func (s *Server) Close() {
	close(s.done)
	s.hub.close()
}
