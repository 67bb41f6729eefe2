// Package http exposes a debug/introspection server over a live
// coordinator tree: tree snapshots, a navigate endpoint, a websocket
// state-change stream, and Prometheus metrics. It is an internal surface
// for development tooling, not the view layer.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arborui/arbor/pkg/coordinator"
	"github.com/arborui/arbor/pkg/route"
)

// Engine defines the interface the server drives.
type Engine interface {
	Navigate(r route.Route) bool
	Root() coordinator.Node
}

// Server handles the debug endpoints.
type Server struct {
	Engine Engine
}

// NewHandler creates the HTTP handler. metricsHandler, when non-nil, is
// mounted at /metrics.
func NewHandler(engine Engine, metricsHandler http.Handler) http.Handler {
	server := &Server{Engine: engine}
	r := chi.NewRouter()

	r.Get("/tree", server.Tree)
	r.Post("/navigate", server.Navigate)
	r.Get("/watch", server.Watch)
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}
	return r
}

// Tree handles GET /tree: the recursive snapshot of the whole tree.
func (s *Server) Tree(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Engine.Root().Snapshot())
}

// NavigateRequest is the POST /navigate body.
type NavigateRequest struct {
	Route string `json:"route"`
}

// NavigateResponse is the POST /navigate reply.
type NavigateResponse struct {
	OK   bool                 `json:"ok"`
	Tree coordinator.Snapshot `json:"tree"`
}

// Navigate handles POST /navigate: drive the engine to the given route id.
func (s *Server) Navigate(w http.ResponseWriter, r *http.Request) {
	var body NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.Route == "" {
		http.Error(w, "Missing route", http.StatusBadRequest)
		return
	}
	ok := s.Engine.Navigate(route.Name(body.Route))
	writeJSON(w, http.StatusOK, NavigateResponse{OK: ok, Tree: s.Engine.Root().Snapshot()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
