// Package formation holds the read-only catalog of named formations, each an
// ordered mapping from slot name to canonical role.
package formation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/okian/lineup/internal/domain/rating"
)

// Slot is a named position in a formation. Row and Col place the slot on a
// 25x75 pitch diagram for presentation; the engine ignores them.
type Slot struct {
	Name string      `json:"slot" yaml:"slot"`
	Role rating.Role `json:"role" yaml:"role"`
	Row  int         `json:"row,omitempty" yaml:"row"`
	Col  int         `json:"col,omitempty" yaml:"col"`
}

// Schema is a named formation. Slot order is significant.
type Schema struct {
	Name  string `json:"name" yaml:"name"`
	Slots []Slot `json:"slots" yaml:"slots"`
}

// Role returns the canonical role of slot.
func (s Schema) Role(slot string) (rating.Role, bool) {
	for _, sl := range s.Slots {
		if sl.Name == slot {
			return sl.Role, true
		}
	}
	return "", false
}

// Validate checks the schema has a name, at least one slot, unique slot
// names and only canonical roles.
func (s Schema) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidSchema)
	}
	if len(s.Slots) == 0 {
		return fmt.Errorf("%w: %q has no slots", ErrInvalidSchema, s.Name)
	}
	seen := make(map[string]bool, len(s.Slots))
	for _, sl := range s.Slots {
		if sl.Name == "" {
			return fmt.Errorf("%w: %q has an unnamed slot", ErrInvalidSchema, s.Name)
		}
		if seen[sl.Name] {
			return fmt.Errorf("%w: %q repeats slot %s", ErrInvalidSchema, s.Name, sl.Name)
		}
		seen[sl.Name] = true
		if !sl.Role.Valid() {
			return fmt.Errorf("%w: %q slot %s: %w", ErrInvalidSchema, s.Name, sl.Name, rating.ErrInvalidRole)
		}
	}
	return nil
}

func (s Schema) clone() Schema {
	return Schema{Name: s.Name, Slots: append([]Slot(nil), s.Slots...)}
}

// Catalog is a lookup of formations by name. Lookups are case-insensitive.
type Catalog struct {
	mu      sync.RWMutex
	order   []string
	schemas map[string]Schema
}

// NewCatalog returns a catalog preloaded with the built-in formations.
func NewCatalog() *Catalog {
	c := &Catalog{schemas: make(map[string]Schema)}
	for _, s := range builtins() {
		if err := c.Register(s); err != nil {
			panic(err)
		}
	}
	return c
}

// Register adds or replaces a formation.
func (c *Catalog) Register(s Schema) error {
	if err := s.Validate(); err != nil {
		return err
	}
	k := key(s.Name)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.schemas[k]; !ok {
		c.order = append(c.order, k)
	}
	c.schemas[k] = s.clone()
	return nil
}

// Get returns the named formation.
func (c *Catalog) Get(name string) (Schema, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.schemas[key(name)]
	if !ok {
		return Schema{}, fmt.Errorf("%w: %q", ErrUnknownFormation, name)
	}
	return s.clone(), nil
}

// SlotsFor returns the ordered slot to role mapping of the named formation.
func (c *Catalog) SlotsFor(name string) ([]Slot, error) {
	s, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	return s.Slots, nil
}

// Names lists formation names in registration order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.schemas[k].Name)
	}
	return out
}

func key(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
