// Package repository defines the catalog store interface and errors.
package repository

import "context"

// Item represents a catalog row.
type Item struct {
	ItemName string
}

// Store provides read access to the catalog state. The catalog is fixed at
// construction time; no implementation mutates it afterwards.
type Store interface {
	// List returns the sub-sequence of the catalog starting at index skip,
	// containing at most limit items. Out-of-range values are clamped, never
	// rejected: the result may be shorter than limit or empty.
	List(ctx context.Context, skip, limit int) ([]Item, error)

	// All returns the full ordered catalog.
	All(ctx context.Context) []Item

	// Count returns the number of items in the catalog.
	Count(ctx context.Context) int
}
