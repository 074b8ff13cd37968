package probe

import "time"

// Config holds configuration for an endpoint probe run
type Config struct {
	BaseURL string        // Base URL of the service
	Timeout time.Duration // HTTP request timeout
	LogFile string        // Log file for probe output
	Verbose bool          // Enable verbose logging
}

// Item mirrors the listing endpoint's element shape
type Item struct {
	ItemName string `json:"item_name"`
}

// SearchResult mirrors the search endpoint's envelope
type SearchResult struct {
	Query   string `json:"query"`
	Results []Item `json:"results"`
}

// ErrorBody mirrors the error shape returned on validation failures
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field"`
}

// Stats holds probe statistics
type Stats struct {
	ChecksRun    int
	ChecksPassed int
	ChecksFailed int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}
