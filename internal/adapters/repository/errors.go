package repository

import "errors"

// Sentinel kinds for roster storage errors.
var (
	ErrCorruptRoster = errors.New("corrupt roster document")
	ErrNoPath        = errors.New("roster path not set")
)
