package lineup

import (
	"sort"
	"strings"

	"github.com/okian/lineup/internal/domain/rating"
	"github.com/okian/lineup/internal/domain/roster"
)

// Zone is a band of the pitch used by the zone-aware strategies.
type Zone string

// Pitch zones, in the order players are dealt to them.
const (
	ZoneDefense  Zone = "defense"
	ZoneMidfield Zone = "midfield"
	ZoneAttack   Zone = "attack"
)

// Keyword tables and the order players are dealt to zones.
//
//nolint:gochecknoglobals // fixed lookup tables
var (
	defenseTokens = []string{"GK", "B"}
	attackTokens  = []string{"ST", "AM", "W", "F"}
	zoneOrder     = []Zone{ZoneDefense, ZoneMidfield, ZoneAttack}

	// attackRoles are excluded from the remaining-player ranking once the
	// attacking slots are filled.
	attackRoles = []rating.Role{rating.ST, rating.LW, rating.RW, rating.CAM}
)

// ZoneOf classifies a slot by keywords in its name. Defensive keywords win
// over attacking ones, and anything matching neither is midfield.
func ZoneOf(slot string) Zone {
	name := strings.ToUpper(slot)
	if containsAny(name, defenseTokens) {
		return ZoneDefense
	}
	if containsAny(name, attackTokens) {
		return ZoneAttack
	}
	return ZoneMidfield
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// rankPlayers orders players by score desc, then name asc.
func rankPlayers(players []roster.Player, score func(roster.Player) float64) []roster.Player {
	out := append([]roster.Player(nil), players...)
	keys := make(map[string]float64, len(out))
	for _, p := range out {
		keys[p.Name] = score(p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if keys[out[i].Name] != keys[out[j].Name] {
			return keys[out[i].Name] > keys[out[j].Name]
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func overallMean(p roster.Player) float64 { return p.MeanRating() }

func nonAttackMean(p roster.Player) float64 { return p.MeanRating(attackRoles...) }
