package formation

import "errors"

// Sentinel kinds for formation errors.
var (
	ErrUnknownFormation = errors.New("unknown formation")
	ErrInvalidSchema    = errors.New("invalid formation schema")
)
