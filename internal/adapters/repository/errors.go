package repository

import "errors"

// Sentinel kinds for prospect pool errors.
var (
	ErrNotFound     = errors.New("prospect not found")
	ErrInvalidLimit = errors.New("invalid pool limit")
	ErrEmptyPool    = errors.New("prospect pool is empty")
	ErrDuplicateID  = errors.New("prospect already pooled")
	ErrNilPlayer    = errors.New("nil player")
)
