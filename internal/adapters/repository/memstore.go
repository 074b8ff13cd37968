package repository

import (
	"context"

	"github.com/okian/curio/pkg/metrics"
)

// seedCatalog is the fixed dataset served when no WithItems option is given.
// It is read by every request and never written after process start, so the
// store needs no synchronization.
func seedCatalog() []Item {
	return []Item{
		{ItemName: "Foo"},
		{ItemName: "Bar"},
		{ItemName: "Baz"},
	}
}

// MemStore serves a fixed ordered catalog from memory.
type MemStore struct {
	items []Item
}

// NewMemStore creates a catalog store seeded with the default dataset unless
// overridden via options. Context is accepted first to satisfy the
// project-wide convention; it is reserved for future use.
func NewMemStore(_ context.Context, opts ...Option) *MemStore {
	s := &MemStore{
		items: seedCatalog(),
	}

	for _, opt := range opts {
		opt(s)
	}

	metrics.UpdateCatalogSize(len(s.items))
	return s
}

// List returns the catalog sub-sequence [skip, skip+limit) under tolerant
// slicing semantics: indices beyond either end clamp to the catalog bounds,
// so out-of-range requests yield a partial or empty result, never an error.
func (s *MemStore) List(_ context.Context, skip, limit int) ([]Item, error) {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(s.items) || limit <= 0 {
		return []Item{}, nil
	}
	end := skip + limit
	if end > len(s.items) || end < skip { // end < skip guards int overflow
		end = len(s.items)
	}
	return s.items[skip:end], nil
}

// All returns the full ordered catalog. The backing slice is shared by
// reference; callers must treat it as read-only.
func (s *MemStore) All(_ context.Context) []Item {
	return s.items
}

// Count returns the number of items in the catalog.
func (s *MemStore) Count(_ context.Context) int {
	return len(s.items)
}
