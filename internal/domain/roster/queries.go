package roster

import (
	"fmt"
	"sort"

	"github.com/okian/lineup/internal/domain/rating"
)

// Standing is one row of a per-role ranking.
type Standing struct {
	Rank   int           `json:"rank"`
	Name   string        `json:"name"`
	Rating rating.Rating `json:"rating"`
	Score  float64       `json:"score"`
}

// TopNForRole ranks players with a non-zero ceiling at role by that ceiling,
// highest first; equal scores fall back to name order and share a rank.
// n < 1 returns every rated player.
func (c *Catalog) TopNForRole(role rating.Role, n int) ([]Standing, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", rating.ErrInvalidRole, role)
	}

	out := make([]Standing, 0)
	for _, p := range c.Snapshot() {
		r := p.Rating(role)
		if !r.Rated() {
			continue
		}
		out = append(out, Standing{Name: p.Name, Rating: r, Score: r.Max})
	}

	sortStandings(out)
	assignRanksWithTies(out)
	if n >= 1 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// Gap describes a role the roster covers poorly.
type Gap struct {
	Role    rating.Role `json:"role"`
	Ratings []float64   `json:"ratings"`
	Mean    float64     `json:"mean"`
}

// Rated returns the number of players contributing to the gap's mean.
func (g Gap) Rated() int { return len(g.Ratings) }

// CoverageGaps lists, in role order, every role with no rated player or
// whose mean ceiling over rated players is below threshold. A threshold
// <= 0 uses DefaultGapThreshold.
func (c *Catalog) CoverageGaps(threshold float64) []Gap {
	if threshold <= 0 {
		threshold = DefaultGapThreshold
	}
	players := c.Snapshot()

	gaps := make([]Gap, 0)
	for _, role := range rating.Roles() {
		ratings := make([]float64, 0, len(players))
		var sum float64
		for _, p := range players {
			if r := p.Rating(role); r.Rated() {
				ratings = append(ratings, r.Max)
				sum += r.Max
			}
		}
		if len(ratings) == 0 {
			gaps = append(gaps, Gap{Role: role, Ratings: ratings})
			continue
		}
		mean := sum / float64(len(ratings))
		if mean < threshold {
			gaps = append(gaps, Gap{Role: role, Ratings: ratings, Mean: mean})
		}
	}
	return gaps
}

// CompareCell is one player's rating within a comparison row. Min and Max
// are the raw sortable values; Display is "4.0" or "3.0-4.5".
type CompareCell struct {
	Player  string  `json:"player"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Display string  `json:"display"`
}

// CompareRow holds every compared player's rating for a single role.
type CompareRow struct {
	Role  rating.Role   `json:"role"`
	Cells []CompareCell `json:"cells"`
}

// Compare lays out the named players side by side for role, or for every
// role when role is empty. Unknown players are left out.
func (c *Catalog) Compare(names []string, role rating.Role) ([]CompareRow, error) {
	roles := rating.Roles()
	if role != "" {
		if !role.Valid() {
			return nil, fmt.Errorf("%w: %q", rating.ErrInvalidRole, role)
		}
		roles = []rating.Role{role}
	}

	players := make([]Player, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		p, err := c.Get(name)
		if err != nil || seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		players = append(players, p)
	}

	rows := make([]CompareRow, 0, len(roles))
	for _, r := range roles {
		row := CompareRow{Role: r, Cells: make([]CompareCell, 0, len(players))}
		for _, p := range players {
			pr := p.Rating(r)
			row.Cells = append(row.Cells, CompareCell{Player: p.Name, Min: pr.Min, Max: pr.Max, Display: pr.String()})
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// sortStandings orders by score desc, then name asc.
func sortStandings(entries []Standing) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name < entries[j].Name
	})
}

// assignRanksWithTies gives equal scores the same rank; the next distinct
// score takes the following rank.
func assignRanksWithTies(entries []Standing) {
	currentRank := 0
	for i := range entries {
		if i == 0 || entries[i].Score != entries[i-1].Score {
			currentRank++
		}
		entries[i].Rank = currentRank
	}
}
