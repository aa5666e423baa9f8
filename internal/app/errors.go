package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNoStore = errors.New("no roster store configured")
)
