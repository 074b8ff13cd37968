// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/curio/pkg/metrics"
)

// ItemsDependencies defines the interface for listing operations.
type ItemsDependencies interface {
	Items(ctx context.Context, skip, limit int) ([]Item, error)
}

// ItemsHandler handles catalog listing requests.
type ItemsHandler struct {
	deps         ItemsDependencies
	defaultLimit int
}

// NewItemsHandler creates a new items handler.
func NewItemsHandler(deps ItemsDependencies, defaultLimit int) *ItemsHandler {
	return &ItemsHandler{
		deps:         deps,
		defaultLimit: defaultLimit,
	}
}

// HandleListItems handles GET /items/?skip=N&limit=M requests.
//
// Both parameters are optional: skip defaults to 0 and limit to the
// configured page size. Values that fail integer coercion are rejected with
// 422 before the handler body runs; out-of-range integers are not rejected
// and degrade to partial or empty results under slicing semantics.
func (h *ItemsHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	if r.URL.Path != "/items/" {
		http.NotFound(w, r)
		return
	}

	query := r.URL.Query()

	skip := 0
	if raw := query.Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			metrics.RecordValidationError("items", "skip")
			writeValidationError(w, "invalid_parameter", "skip", "skip must be an integer")
			return
		}
		skip = n
	}

	limit := h.defaultLimit
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			metrics.RecordValidationError("items", "limit")
			writeValidationError(w, "invalid_parameter", "limit", "limit must be an integer")
			return
		}
		limit = n
	}

	items, err := h.deps.Items(r.Context(), skip, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
