package roster

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrEmptyName      = errors.New("empty player name")
	ErrPlayerNotFound = errors.New("player not found")
)
