package service

import "errors"

// Sentinel kinds for league service errors.
var (
	ErrNotStarted  = errors.New("service not started")
	ErrUnknownTeam = errors.New("unknown team")
)
