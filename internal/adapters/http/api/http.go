// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/curio/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Items returns the catalog sub-sequence [skip, skip+limit).
	Items(ctx context.Context, skip, limit int) ([]Item, error)

	// Search returns the result envelope for q.
	Search(ctx context.Context, q string) (SearchResult, error)
}

// Item mirrors the read shape returned by catalog queries.
type Item = types.Item

// SearchResult mirrors the envelope returned by the search endpoint.
type SearchResult = types.SearchResult

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	itemsHandler  *ItemsHandler
	searchHandler *SearchHandler
}

// NewServer creates a new API server with all handlers. defaultLimit is the
// page size applied when a listing request has no limit parameter.
func NewServer(deps Dependencies, statsProvider StatsProvider, defaultLimit int) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		itemsHandler:  NewItemsHandler(deps, defaultLimit),
		searchHandler: NewSearchHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/items/", MetricsMiddleware(RequestIDMiddleware(s.itemsHandler.HandleListItems), "items"))
	mux.HandleFunc("/search/", MetricsMiddleware(RequestIDMiddleware(s.searchHandler.HandleSearch), "search"))
}

// errorResponse is the wire shape for every error the API emits. Field names
// the offending query parameter on validation failures and is omitted
// otherwise.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeValidationError emits the 422 body for a parameter that is missing or
// failed type coercion. The framework boundary calls this before any handler
// logic runs, so handler bodies can assume well-typed inputs.
func writeValidationError(w http.ResponseWriter, code, field, msg string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Code:    code,
		Message: msg,
		Field:   field,
	})
}
