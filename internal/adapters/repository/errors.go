package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrEmptyCatalog = errors.New("catalog must not be empty")
)
