package game

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrEmptyRoster reports a roster with no eligible players. Sparse
	// rosters below five players are still simulatable; zero is not.
	ErrEmptyRoster = errors.New("empty roster")
)
