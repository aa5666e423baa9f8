package rating

import "errors"

// Sentinel kinds for rating errors.
var (
	ErrInvalidRole  = errors.New("invalid role")
	ErrInvalidRange = errors.New("invalid rating range")
	ErrMissingVoter = errors.New("missing voter")
)
