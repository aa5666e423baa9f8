package lineup

import "errors"

// Sentinel kinds for lineup errors.
var (
	ErrUnknownStrategy = errors.New("unknown lineup strategy")
)
