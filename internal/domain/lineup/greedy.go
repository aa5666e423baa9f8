package lineup

import (
	"sort"

	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/roster"
)

// candidate is a feasible (slot, player) pairing considered by greedyFill.
type candidate struct {
	slot   int
	player int // index into the ranked player list
	score  float64
}

// greedyFill assigns the highest-scoring feasible pairs first between the
// given open slots and ranked players, skipping slots already filled and
// players already taken. Ties go to the better ranked player, then to the
// earlier slot.
func greedyFill(res *Result, slots []int, ranked []roster.Player, taken map[string]bool) {
	pairs := make([]candidate, 0, len(slots)*len(ranked))
	for _, si := range slots {
		if res.Slots[si].Filled() {
			continue
		}
		role := res.Slots[si].Role
		for pi, p := range ranked {
			if taken[p.Name] {
				continue
			}
			if r := p.Rating(role); r.Feasible() {
				pairs = append(pairs, candidate{slot: si, player: pi, score: r.Min})
			}
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		a, b := pairs[i], pairs[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.player != b.player {
			return a.player < b.player
		}
		return a.slot < b.slot
	})

	for _, c := range pairs {
		name := ranked[c.player].Name
		if taken[name] || res.Slots[c.slot].Filled() {
			continue
		}
		res.Slots[c.slot].Player = name
		res.Slots[c.slot].Score = c.score
		taken[name] = true
	}
}

// Balanced deals players, best mean rating first, round-robin into defence,
// midfield and attack, fills each zone greedily from its own players and
// then fills what is left from everyone still unassigned.
func Balanced(players []roster.Player, schema formation.Schema) Result {
	res := newResult(schema, StrategyBalanced)

	zoneSlots := make(map[Zone][]int, len(zoneOrder))
	all := make([]int, len(schema.Slots))
	for i, sl := range schema.Slots {
		z := ZoneOf(sl.Name)
		zoneSlots[z] = append(zoneSlots[z], i)
		all[i] = i
	}

	ranked := rankPlayers(players, overallMean)
	dealt := make(map[Zone][]roster.Player, len(zoneOrder))
	for i, p := range ranked {
		z := zoneOrder[i%len(zoneOrder)]
		dealt[z] = append(dealt[z], p)
	}

	taken := make(map[string]bool, len(players))
	for _, z := range zoneOrder {
		greedyFill(&res, zoneSlots[z], dealt[z], taken)
	}
	greedyFill(&res, all, ranked, taken)
	return res
}

// AttackFocused fills attacking slots first from the whole roster, then
// ranks the remaining players by their mean rating outside the attacking
// roles and fills the other slots.
func AttackFocused(players []roster.Player, schema formation.Schema) Result {
	res := newResult(schema, StrategyAttack)

	var attack, rest []int
	for i, sl := range schema.Slots {
		if ZoneOf(sl.Name) == ZoneAttack {
			attack = append(attack, i)
		} else {
			rest = append(rest, i)
		}
	}

	taken := make(map[string]bool, len(players))
	greedyFill(&res, attack, rankPlayers(players, overallMean), taken)

	remaining := make([]roster.Player, 0, len(players))
	for _, p := range players {
		if !taken[p.Name] {
			remaining = append(remaining, p)
		}
	}
	greedyFill(&res, rest, rankPlayers(remaining, nonAttackMean), taken)
	return res
}
