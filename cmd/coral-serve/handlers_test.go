package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coral-ca/internal/sims/coral"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := coral.DefaultConfig()
	cfg.GridSize = 64
	cfg.Seed = 7
	cfg.Params.NSteps = 200

	world, err := coral.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	s := NewServer(world, 60, NewLogger("error"))
	t.Cleanup(s.Close)
	return s
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health returned %d", rec.Code)
	}
}

func TestHandleStateReflectsSteps(t *testing.T) {
	s := newTestServer(t)
	for i := 0; i < 10; i++ {
		s.step()
	}

	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/state", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("state returned %d", rec.Code)
	}

	var state stateResponse
	if err := json.NewDecoder(rec.Body).Decode(&state); err != nil {
		t.Fatalf("decoding state: %v", err)
	}
	if state.Step != 10 {
		t.Fatalf("state reports %d steps, want 10", state.Step)
	}
	if state.GridSize != 64 || state.Name != "coral" {
		t.Fatalf("unexpected state: %+v", state)
	}
	if state.Cells < 1 {
		t.Fatalf("state must include at least the seed cell, got %d", state.Cells)
	}
}

func TestHandleHistoryMatchesState(t *testing.T) {
	s := newTestServer(t)
	for i := 0; i < 25; i++ {
		s.step()
	}

	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("history returned %d", rec.Code)
	}

	var history []coral.Point
	if err := json.NewDecoder(rec.Body).Decode(&history); err != nil {
		t.Fatalf("decoding history: %v", err)
	}

	rec = httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/state", nil))
	var state stateResponse
	if err := json.NewDecoder(rec.Body).Decode(&state); err != nil {
		t.Fatalf("decoding state: %v", err)
	}
	if len(history) != state.Cells {
		t.Fatalf("history has %d cells, state reports %d", len(history), state.Cells)
	}
}

func TestHandleResetRestartsRun(t *testing.T) {
	s := newTestServer(t)
	for i := 0; i < 50; i++ {
		s.step()
	}

	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reset?seed=99", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("reset returned %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/state", nil))
	var state stateResponse
	if err := json.NewDecoder(rec.Body).Decode(&state); err != nil {
		t.Fatalf("decoding state: %v", err)
	}
	if state.Step != 0 || state.Cells != 1 {
		t.Fatalf("reset did not restart the run: %+v", state)
	}
}

func TestHandleResetRejectsGet(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reset", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET /reset returned %d, want 405", rec.Code)
	}
}
