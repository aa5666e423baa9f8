package roster

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/okian/lineup/internal/domain/rating"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName trims, collapses inner whitespace and title-cases a name so
// that " jOHN   smith" and "John Smith" address the same player. Any rune
// without case starts a new word, so "o'brien" becomes "O'Brien" and
// "john2smith" becomes "John2Smith".
func NormalizeName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	joined := strings.Join(fields, " ")
	title := cases.Title(language.Und)

	var b strings.Builder
	b.Grow(len(joined))
	start := -1
	for i, r := range joined {
		if isCased(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(title.String(joined[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(title.String(joined[start:]))
	}
	return b.String()
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// Player is a rated individual. Values handed out by the Catalog are
// detached copies; mutating the Catalog afterwards does not change them.
type Player struct {
	Name   string
	ledger *rating.Ledger
}

// NewPlayer builds a detached player from per-role votes. It is mostly
// useful to callers assembling candidates outside a Catalog.
func NewPlayer(name string, votes map[rating.Role][]rating.Vote) (Player, error) {
	p := Player{Name: NormalizeName(name), ledger: rating.NewLedger()}
	if p.Name == "" {
		return Player{}, ErrEmptyName
	}
	for role := range votes {
		if !role.Valid() {
			return Player{}, fmt.Errorf("%w: %q", rating.ErrInvalidRole, role)
		}
	}
	for _, role := range rating.Roles() {
		for _, v := range votes[role] {
			if err := p.ledger.Submit(role, v); err != nil {
				return Player{}, err
			}
		}
	}
	return p, nil
}

// Rating returns the aggregate rating for role.
func (p Player) Rating(role rating.Role) rating.Rating {
	if p.ledger == nil {
		return rating.Rating{}
	}
	return p.ledger.Rating(role)
}

// Votes returns the live votes for role.
func (p Player) Votes(role rating.Role) []rating.Vote {
	if p.ledger == nil {
		return nil
	}
	return p.ledger.Votes(role)
}

// VoteCount returns the number of live votes for role.
func (p Player) VoteCount(role rating.Role) int {
	if p.ledger == nil {
		return 0
	}
	return p.ledger.VoteCount(role)
}

// MeanRating averages the minimum rating over every role with a non-zero
// minimum, skipping the excluded roles. Players with no such role score 0.
func (p Player) MeanRating(exclude ...rating.Role) float64 {
	var sum float64
	var n int
	for _, role := range rating.Roles() {
		if containsRole(exclude, role) {
			continue
		}
		if r := p.Rating(role); r.Feasible() {
			sum += r.Min
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// SheetLine is one row of a player's rating sheet.
type SheetLine struct {
	Role    rating.Role   `json:"role"`
	Rating  rating.Rating `json:"rating"`
	Display string        `json:"display"`
	Votes   int           `json:"votes"`
}

// Sheet lists the player's rating for every role in display order.
func (p Player) Sheet() []SheetLine {
	out := make([]SheetLine, 0, len(rating.Roles()))
	for _, role := range rating.Roles() {
		r := p.Rating(role)
		out = append(out, SheetLine{Role: role, Rating: r, Display: r.String(), Votes: p.VoteCount(role)})
	}
	return out
}

func (p Player) clone() Player {
	return Player{Name: p.Name, ledger: p.ledger.Clone()}
}

func containsRole(set []rating.Role, r rating.Role) bool {
	for _, x := range set {
		if x == r {
			return true
		}
	}
	return false
}
