// Package repository defines the catalog store interface and errors.
package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithItems replaces the seed catalog. The slice is stored by reference and
// must not be written to after the store is constructed.
func WithItems(items []Item) Option {
	return func(s *MemStore) {
		if len(items) > 0 {
			s.items = items
		}
	}
}
