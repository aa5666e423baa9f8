package repository

import (
	"fmt"
	"sort"
	"time"

	"github.com/okian/lineup/internal/domain/rating"
	"github.com/okian/lineup/internal/domain/roster"
)

// Document is the on-disk roster. Ratings are written for readers of the
// file, but on load they are recomputed from the votes.
type Document struct {
	TeamName string                  `json:"team_name"`
	Players  map[string]PlayerRecord `json:"players"`
	Order    []string                `json:"order,omitempty"`
	Revision string                  `json:"revision,omitempty"`
	SavedAt  *time.Time              `json:"saved_at,omitempty"`
}

// PlayerRecord is one player's entry.
type PlayerRecord struct {
	Name      string                    `json:"name"`
	Positions map[string]PositionRecord `json:"positions"`
}

// PositionRecord holds the aggregate and the live votes for one role.
type PositionRecord struct {
	Min   float64       `json:"min"`
	Max   float64       `json:"max"`
	Votes []rating.Vote `json:"votes"`
}

// FromRoster captures every player's votes and the order players were
// given in. Roles without votes are written as unrated entries so the file
// lists all positions.
func FromRoster(teamName string, players []roster.Player) Document {
	doc := Document{
		TeamName: teamName,
		Players:  make(map[string]PlayerRecord, len(players)),
		Order:    make([]string, 0, len(players)),
	}
	for _, p := range players {
		doc.Order = append(doc.Order, p.Name)
		rec := PlayerRecord{Name: p.Name, Positions: make(map[string]PositionRecord, len(rating.Roles()))}
		for _, role := range rating.Roles() {
			r := p.Rating(role)
			votes := p.Votes(role)
			if votes == nil {
				votes = []rating.Vote{}
			}
			rec.Positions[role.String()] = PositionRecord{Min: r.Min, Max: r.Max, Votes: votes}
		}
		doc.Players[p.Name] = rec
	}
	return doc
}

// Restore replays the document's votes into c. Players are added in the
// saved order; players missing from it, or every player in files without
// an order, follow in name order. The first invalid entry aborts the restore
// with ErrCorruptRoster.
func (d Document) Restore(c *roster.Catalog) error {
	for _, key := range d.restoreOrder() {
		rec := d.Players[key]
		name := rec.Name
		if name == "" {
			name = key
		}
		if _, _, err := c.GetOrCreate(name); err != nil {
			return fmt.Errorf("%w: player %q: %w", ErrCorruptRoster, key, err)
		}
		for pos, pr := range rec.Positions {
			role, err := rating.ParseRole(pos)
			if err != nil {
				return fmt.Errorf("%w: player %q: %w", ErrCorruptRoster, key, err)
			}
			if len(pr.Votes) == 0 {
				continue
			}
			if err := c.Restore(name, role, pr.Votes); err != nil {
				return fmt.Errorf("%w: player %q role %s: %w", ErrCorruptRoster, key, role, err)
			}
		}
	}
	return nil
}

func (d Document) restoreOrder() []string {
	keys := make([]string, 0, len(d.Players))
	seen := make(map[string]bool, len(d.Players))
	for _, k := range d.Order {
		if _, ok := d.Players[k]; ok && !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	rest := make([]string, 0, len(d.Players)-len(keys))
	for k := range d.Players {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
