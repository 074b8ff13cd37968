// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/curio/pkg/metrics"
)

// SearchDependencies defines the interface for search operations.
type SearchDependencies interface {
	Search(ctx context.Context, q string) (SearchResult, error)
}

// SearchHandler handles search requests.
type SearchHandler struct {
	deps SearchDependencies
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps SearchDependencies) *SearchHandler {
	return &SearchHandler{deps: deps}
}

// HandleSearch handles GET /search/?q=term requests.
//
// q is required; its absence is a 422. An empty q (?q=) counts as present so
// the envelope echoes the empty string. The result list is a placeholder and
// is empty regardless of input.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	if r.URL.Path != "/search/" {
		http.NotFound(w, r)
		return
	}

	query := r.URL.Query()
	if !query.Has("q") {
		metrics.RecordValidationError("search", "q")
		writeValidationError(w, "missing_parameter", "q", "q is required")
		return
	}

	result, err := h.deps.Search(r.Context(), query.Get("q"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
