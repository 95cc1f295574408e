package repositories

import "errors"

// Storage errors shared by every backend. Implementations translate their
// driver errors into these so services never import driver packages.
var (
	// ErrNotFound is returned when a point lookup matches nothing.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when an insert violates a uniqueness
	// constraint, e.g. a second ticket for the same (game, number).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrConflict is returned by the active-game register when a
	// compare-and-set observes a value other than the expected one.
	ErrConflict = errors.New("compare-and-set conflict")
)
