// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	repository "github.com/okian/curio/internal/adapters/repository"
	"github.com/okian/curio/internal/domain/types"
	"github.com/okian/curio/pkg/logger"
	"github.com/okian/curio/pkg/metrics"
)

// Service implements the API dependencies for the catalog system.
type Service struct {
	mu sync.RWMutex

	// Core components
	catalog repository.Store

	// Configuration
	defaultLimit int
	seedItems    []repository.Item

	// State
	started   bool
	startedAt time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDefaultLimit sets the page size used when a listing request carries no
// limit parameter.
func WithDefaultLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.defaultLimit = limit
		}
	}
}

// WithStore sets a custom catalog store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.catalog = store
		}
	}
}

// WithItems seeds the catalog with a custom item list. Ignored when a store
// is supplied via WithStore.
func WithItems(items []repository.Item) Option {
	return func(s *Service) {
		s.seedItems = items
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Service with defaults applied, then options.
func New(opts ...Option) *Service {
	s := &Service{
		defaultLimit: 10, // Default page size for listings
		logger:       nil,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting catalog service...")

	// Initialize the catalog store. The dataset is fixed at this point and
	// never written again, so handlers can share it without locking.
	if s.catalog == nil {
		if len(s.seedItems) > 0 {
			s.catalog = repository.NewMemStore(ctx, repository.WithItems(s.seedItems))
		} else {
			s.catalog = repository.NewMemStore(ctx)
		}
	}

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "catalog service started",
		logger.Int("items", s.catalog.Count(ctx)),
		logger.Int("defaultLimit", s.defaultLimit),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping catalog service...")

	if closer, ok := s.catalog.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "catalog service stopped")
}

// DefaultLimit returns the page size used when a request has no limit.
func (s *Service) DefaultLimit() int {
	return s.defaultLimit
}

// Items returns the catalog sub-sequence [skip, skip+limit) under tolerant
// slicing semantics.
func (s *Service) Items(ctx context.Context, skip, limit int) ([]types.Item, error) {
	items, err := s.catalog.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	// Convert to API format
	apiItems := make([]types.Item, len(items))
	for i, item := range items {
		apiItems[i] = types.Item{ItemName: item.ItemName}
	}

	metrics.RecordItemsServed(len(apiItems))
	return apiItems, nil
}

// Search returns the result envelope for q. Matching is not implemented; the
// results list is a deliberate placeholder and stays empty for every query.
func (s *Service) Search(ctx context.Context, q string) (types.SearchResult, error) {
	metrics.RecordSearchQuery()
	return types.NewSearchResult(q), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":      s.started,
		"defaultLimit": s.defaultLimit,
	}

	if s.started {
		catalogSize := s.catalog.Count(ctx)

		stats["catalogSize"] = catalogSize
		stats["uptimeSeconds"] = int(time.Since(s.startedAt).Seconds())

		// Update metrics
		metrics.UpdateCatalogSize(catalogSize)
	}

	return stats
}
