// Package types contains common types used across the application
package types

// Item represents a single catalog entry.
type Item struct {
	ItemName string `json:"item_name"`
}

// SearchResult pairs an echoed query string with its matching items.
// Results is always non-nil so it marshals as [] rather than null.
type SearchResult struct {
	Query   string `json:"query"`
	Results []Item `json:"results"`
}

// NewSearchResult builds an empty result envelope for q.
func NewSearchResult(q string) SearchResult {
	return SearchResult{Query: q, Results: []Item{}}
}
