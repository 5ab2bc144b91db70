package constants

import "errors"

var (
	// ErrNotFound is returned when a flight reference id is unknown.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput covers malformed flight codes and dates, empty tracks and
	// non-positive flight durations.
	ErrInvalidInput = errors.New("invalid input")
)
