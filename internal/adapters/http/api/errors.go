package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest       = errors.New("bad request")
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidParameter = errors.New("parameter failed type coercion")
)
