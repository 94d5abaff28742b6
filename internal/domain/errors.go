package domain

import "errors"

var (
	// ErrResolverCountMismatch is returned when the participant registration
	// upsert yields a different number of rows than addresses submitted.
	// This is a programming-invariant violation, not a recoverable condition.
	ErrResolverCountMismatch = errors.New("participant registration returned unexpected row count")
)
