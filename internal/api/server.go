// Package api provides a read-only HTTP view of the running
// simulation. All endpoints are GET; nothing here mutates world state.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/talgya/landscape-sim/internal/engine"
)

// Server serves the world state over HTTP.
type Server struct {
	Sim  *engine.Simulation
	Eng  *engine.Engine
	Port int
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/grid", s.handleGrid)
	mux.HandleFunc("/api/v1/agents", s.handleAgents)
	mux.HandleFunc("/api/v1/stats/history", s.handleHistory)

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"cycle":          s.Sim.Cycle,
		"running":        s.Eng != nil && s.Eng.Running,
		"population":     s.Sim.Stats.Population,
		"total_energy":   s.Sim.Stats.TotalEnergy,
		"total_resource": s.Sim.Stats.TotalResource,
		"peak_resource":  s.Sim.Stats.PeakResource,
		"width":          s.Sim.Land.Width,
		"height":         s.Sim.Land.Height,
	})
}

// handleGrid returns the full resource snapshot, indexed [y][x].
func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"width":    s.Sim.Land.Width,
		"height":   s.Sim.Land.Height,
		"resource": s.Sim.Land.Snapshot(),
	})
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.Agents)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	history := s.Sim.History
	if len(history) > limit {
		history = history[len(history)-limit:]
	}
	writeJSON(w, history)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
