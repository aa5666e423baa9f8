// Package roster owns the set of rated players and the derived queries over
// it: top players per role, coverage gaps and side-by-side comparison.
package roster

import (
	"fmt"
	"sync"

	"github.com/okian/lineup/internal/domain/rating"
)

// DefaultGapThreshold is the mean ceiling rating below which a role counts
// as a coverage gap.
const DefaultGapThreshold = 3.0

// Catalog is an in-memory roster. It is safe for concurrent use: each vote
// replacement is atomic and readers only ever see whole recomputations.
type Catalog struct {
	mu      sync.RWMutex
	order   []string // insertion order of canonical names
	players map[string]*Player
}

// NewCatalog creates an empty roster.
func NewCatalog() *Catalog {
	return &Catalog{players: make(map[string]*Player)}
}

// GetOrCreate returns the player called name, creating an unrated one on
// first reference. created reports whether a new player was added.
func (c *Catalog) GetOrCreate(name string) (p Player, created bool, err error) {
	key := NormalizeName(name)
	if key == "" {
		return Player{}, false, ErrEmptyName
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	existing, created := c.lookupOrAdd(key)
	return existing.clone(), created, nil
}

// Get returns a detached copy of the named player.
func (c *Catalog) Get(name string) (Player, error) {
	key := NormalizeName(name)

	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.players[key]
	if !ok {
		return Player{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, name)
	}
	return p.clone(), nil
}

// Names lists canonical player names in insertion order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of players.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// SubmitVote records voter's (min, max) estimate of the player at role,
// replacing the voter's earlier vote for that role. The player is created on
// first reference. Validation happens before any mutation, so a rejected
// vote leaves the roster unchanged.
func (c *Catalog) SubmitVote(name string, role rating.Role, minRating, maxRating float64, voter string) (rating.Rating, error) {
	if !role.Valid() {
		return rating.Rating{}, fmt.Errorf("%w: %q", rating.ErrInvalidRole, role)
	}
	vote, err := rating.NewVote(NormalizeName(voter), minRating, maxRating)
	if err != nil {
		return rating.Rating{}, err
	}
	key := NormalizeName(name)
	if key == "" {
		return rating.Rating{}, ErrEmptyName
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	p, _ := c.lookupOrAdd(key)
	if err := p.ledger.Submit(role, vote); err != nil {
		return rating.Rating{}, err
	}
	return p.ledger.Rating(role), nil
}

// Restore replays persisted votes for one player and role. Every vote is
// validated up front; on error nothing is applied.
func (c *Catalog) Restore(name string, role rating.Role, votes []rating.Vote) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", rating.ErrInvalidRole, role)
	}
	key := NormalizeName(name)
	if key == "" {
		return ErrEmptyName
	}
	staged := make([]rating.Vote, 0, len(votes))
	for _, v := range votes {
		nv, err := rating.NewVote(NormalizeName(v.Voter), v.Min, v.Max)
		if err != nil {
			return err
		}
		staged = append(staged, nv)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	p, _ := c.lookupOrAdd(key)
	for _, v := range staged {
		if err := p.ledger.Submit(role, v); err != nil {
			return err
		}
	}
	return nil
}

// VotesBy returns the live votes cast by voter for the player, keyed by role.
func (c *Catalog) VotesBy(name, voter string) (map[rating.Role]rating.Vote, error) {
	p, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	voter = NormalizeName(voter)
	out := make(map[rating.Role]rating.Vote)
	for _, role := range rating.Roles() {
		if v, ok := p.ledger.VoteBy(role, voter); ok {
			out[role] = v
		}
	}
	return out, nil
}

// Snapshot returns detached copies of the named players in insertion order,
// or of every player when no names are given. Unknown names are skipped.
func (c *Catalog) Snapshot(names ...string) []Player {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(names) == 0 {
		out := make([]Player, 0, len(c.order))
		for _, key := range c.order {
			out = append(out, c.players[key].clone())
		}
		return out
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[NormalizeName(n)] = true
	}
	out := make([]Player, 0, len(wanted))
	for _, key := range c.order {
		if wanted[key] {
			out = append(out, c.players[key].clone())
		}
	}
	return out
}

// lookupOrAdd assumes the write lock is held.
func (c *Catalog) lookupOrAdd(key string) (*Player, bool) {
	if p, ok := c.players[key]; ok {
		return p, false
	}
	p := &Player{Name: key, ledger: rating.NewLedger()}
	c.players[key] = p
	c.order = append(c.order, key)
	return p, true
}
