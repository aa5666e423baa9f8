package lineup

import (
	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/roster"
)

const (
	// priorityWeight multiplies the score of priority slots in the solver's
	// objective.
	priorityWeight = 2.0
	// inflatedScore is the reported score above which the priority weight is
	// divided back out.
	inflatedScore = 5.0
	// infeasibleCost keeps infeasible pairings out of the solution whenever a
	// feasible alternative exists; it dwarfs any achievable weighted score.
	infeasibleCost = 1e6
)

// prioritySlots are the slot names, attack first, whose score counts double
// in Optimal. Only slots named exactly like a canonical role qualify, so
// numbered or sided slots such as "ST1" or "LCM" keep single weight.
var prioritySlots = map[string]bool{ //nolint:gochecknoglobals // fixed lookup table
	"ST": true, "LW": true, "RW": true, "CAM": true,
	"LM": true, "RM": true, "CM": true, "CDM": true,
	"CB": true, "LB": true, "RB": true,
	"GK": true,
}

// Optimal maximises the total weighted score of a one-to-one slot/player
// assignment. A pairing is feasible only when the player's minimum rating for
// the slot's role is positive. When there are more slots than players only
// the leading slots, in schema order, are solved. Scores above 5 caused by
// the priority weight are halved in the result; the assignment itself is the
// one chosen under the weighted objective. The result then goes through the
// side balancing pass.
func Optimal(players []roster.Player, schema formation.Schema) Result {
	res := newResult(schema, StrategyOverall)

	slots := schema.Slots
	if len(slots) > len(players) {
		slots = slots[:len(players)]
	}
	if len(slots) == 0 {
		return res
	}

	weights := make([][]float64, len(slots))
	cost := make([][]float64, len(slots))
	for i, sl := range slots {
		factor := 1.0
		if prioritySlots[sl.Name] {
			factor = priorityWeight
		}
		weights[i] = make([]float64, len(players))
		cost[i] = make([]float64, len(players))
		for j, p := range players {
			r := p.Rating(sl.Role)
			if !r.Feasible() {
				cost[i][j] = infeasibleCost
				continue
			}
			weights[i][j] = r.Min * factor
			cost[i][j] = -weights[i][j]
		}
	}

	for i, j := range solveAssignment(cost) {
		if j < 0 || weights[i][j] <= 0 {
			continue
		}
		score := weights[i][j]
		if score > inflatedScore {
			score /= priorityWeight
		}
		res.Slots[i].Player = players[j].Name
		res.Slots[i].Score = score
	}

	res.SideSwaps = balanceSides(&res, players)
	return res
}
