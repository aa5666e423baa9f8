package lineup

import (
	"github.com/okian/lineup/internal/domain/rating"
	"github.com/okian/lineup/internal/domain/roster"
)

// mirrorPairs are the (left, right) slot names the side pass considers. A
// pair is skipped unless the result holds both slots.
var mirrorPairs = [][2]string{ //nolint:gochecknoglobals // fixed lookup table
	{"LCM", "RCM"},
	{"LM", "RM"},
	{"LB", "RB"},
	{"LCB", "RCB"},
	{"LW", "RW"},
}

var (
	leftRoles  = []rating.Role{rating.LW, rating.LM, rating.LB} //nolint:gochecknoglobals // fixed role sets
	rightRoles = []rating.Role{rating.RW, rating.RM, rating.RB} //nolint:gochecknoglobals // fixed role sets
)

// affinity sums the player's minimum rating over roles.
func affinity(p roster.Player, roles []rating.Role) float64 {
	var sum float64
	for _, r := range roles {
		sum += p.Rating(r).Min
	}
	return sum
}

// balanceSides moves players between mirrored slots when that strictly
// improves how well their side preference fits. Scores travel with the
// player. The set of assigned players never changes. It returns the number
// of moves made.
func balanceSides(res *Result, players []roster.Player) int {
	byName := make(map[string]roster.Player, len(players))
	for _, p := range players {
		byName[p.Name] = p
	}
	index := make(map[string]int, len(res.Slots))
	for i, a := range res.Slots {
		index[a.Slot] = i
	}

	moves := 0
	for _, pair := range mirrorPairs {
		li, okL := index[pair[0]]
		ri, okR := index[pair[1]]
		if !okL || !okR {
			continue
		}
		left, right := res.Slots[li], res.Slots[ri]

		switch {
		case left.Filled() && right.Filled():
			lp, rp := byName[left.Player], byName[right.Player]
			current := affinity(lp, leftRoles) + affinity(rp, rightRoles)
			swapped := affinity(rp, leftRoles) + affinity(lp, rightRoles)
			if swapped > current {
				res.Slots[li].Player, res.Slots[li].Score = right.Player, right.Score
				res.Slots[ri].Player, res.Slots[ri].Score = left.Player, left.Score
				moves++
			}
		case left.Filled():
			lp := byName[left.Player]
			if affinity(lp, rightRoles) > affinity(lp, leftRoles) {
				res.Slots[ri].Player, res.Slots[ri].Score = left.Player, left.Score
				res.Slots[li].Player, res.Slots[li].Score = Unfilled, 0
				moves++
			}
		case right.Filled():
			rp := byName[right.Player]
			if affinity(rp, leftRoles) > affinity(rp, rightRoles) {
				res.Slots[li].Player, res.Slots[li].Score = right.Player, right.Score
				res.Slots[ri].Player, res.Slots[ri].Score = Unfilled, 0
				moves++
			}
		}
	}
	return moves
}
