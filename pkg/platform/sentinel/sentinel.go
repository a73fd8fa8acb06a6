package sentinel

import "errors"

// Sentinel dependency errors. Stores and loaders return these (optionally wrapped)
// so services can translate them into domain errors exactly once.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidData  = errors.New("invalid reference data")
	ErrUnavailable  = errors.New("unavailable")
)
