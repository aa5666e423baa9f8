// Package rating aggregates voter-submitted capability ratings into a
// per-role (min, max) estimate.
package rating

import (
	"fmt"
	"strings"
)

// Role is one of the fixed canonical positions a formation slot maps to.
type Role string

// Canonical roles.
const (
	GK  Role = "GK"
	LB  Role = "LB"
	CB  Role = "CB"
	RB  Role = "RB"
	CDM Role = "CDM"
	CM  Role = "CM"
	LM  Role = "LM"
	RM  Role = "RM"
	CAM Role = "CAM"
	LW  Role = "LW"
	RW  Role = "RW"
	ST  Role = "ST"
)

// roles is the enumerated role set in display order.
var roles = [...]Role{GK, LB, CB, RB, CDM, CM, LM, RM, CAM, LW, RW, ST} //nolint:gochecknoglobals // fixed enumeration

// Roles returns the enumerated role set in display order.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles[:])
	return out
}

// Valid reports whether r belongs to the enumerated role set.
func (r Role) Valid() bool {
	for _, known := range roles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }

// ParseRole resolves user input such as " cdm " to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}
