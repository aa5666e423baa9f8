package cli

import (
	"sort"

	"github.com/okian/lineup/internal/domain/roster"
)

// Rank tiers used to colour comparison cells.
const (
	tierFirst = iota
	tierSecond
	tierThird
	tierRest
)

// denseRanks ranks the cells of one comparison row by ceiling, then floor,
// both descending, so a single value outranks a range with the same ceiling.
// Equal (max, min) pairs share a rank and the next pair takes the following
// one. ranks[i] belongs to cells[i].
func denseRanks(cells []roster.CompareCell) []int {
	order := make([]int, len(cells))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := cells[order[i]], cells[order[j]]
		if a.Max != b.Max {
			return a.Max > b.Max
		}
		return a.Min > b.Min
	})

	ranks := make([]int, len(cells))
	rank := 0
	for k, idx := range order {
		if k == 0 || cells[idx].Max != cells[order[k-1]].Max || cells[idx].Min != cells[order[k-1]].Min {
			rank++
		}
		ranks[idx] = rank
	}
	return ranks
}

// tierOf maps a dense rank to a colour tier. Unrated cells always land in
// the last tier.
func tierOf(rank int, cell roster.CompareCell) int {
	if cell.Max == 0 {
		return tierRest
	}
	switch rank {
	case 1:
		return tierFirst
	case 2:
		return tierSecond
	case 3:
		return tierThird
	default:
		return tierRest
	}
}
