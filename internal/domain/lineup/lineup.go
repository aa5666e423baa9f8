// Package lineup assigns rated players to the slots of a formation.
//
// Three strategies are available: Optimal solves a weighted bipartite
// assignment and then balances mirrored left/right slots, Balanced spreads
// players across defence, midfield and attack before filling slots greedily,
// and AttackFocused fills attacking slots first. A slot no player can
// feasibly fill holds the Unfilled sentinel with a zero score.
package lineup

import (
	"fmt"
	"strings"

	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/rating"
	"github.com/okian/lineup/internal/domain/roster"
)

// Unfilled marks a slot without a suitable player. Canonical player names
// are title-cased, so it never collides with a real player.
const Unfilled = "unfilled"

// Strategy selects an assignment algorithm.
type Strategy string

// Available strategies.
const (
	StrategyOverall  Strategy = "overall"
	StrategyBalanced Strategy = "balanced"
	StrategyAttack   Strategy = "attack"
)

// Strategies lists every strategy.
func Strategies() []Strategy {
	return []Strategy{StrategyOverall, StrategyBalanced, StrategyAttack}
}

// ParseStrategy resolves a strategy name; empty input selects StrategyOverall.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyOverall:
		return StrategyOverall, nil
	case StrategyBalanced:
		return StrategyBalanced, nil
	case StrategyAttack:
		return StrategyAttack, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Assignment is the outcome for one slot.
type Assignment struct {
	Slot   string      `json:"slot"`
	Role   rating.Role `json:"role"`
	Player string      `json:"player"`
	Score  float64     `json:"score"`
}

// Filled reports whether a real player holds the slot.
func (a Assignment) Filled() bool { return a.Player != Unfilled }

// Result maps every slot of a formation, in schema order, to an assignment.
type Result struct {
	Formation string       `json:"formation"`
	Strategy  Strategy     `json:"strategy"`
	Slots     []Assignment `json:"slots"`
	SideSwaps int          `json:"side_swaps"`
}

// Get returns the assignment for slot.
func (r Result) Get(slot string) (Assignment, bool) {
	for _, a := range r.Slots {
		if a.Slot == slot {
			return a, true
		}
	}
	return Assignment{}, false
}

// FilledCount returns the number of slots held by real players.
func (r Result) FilledCount() int {
	n := 0
	for _, a := range r.Slots {
		if a.Filled() {
			n++
		}
	}
	return n
}

// Players lists the assigned players in slot order.
func (r Result) Players() []string {
	out := make([]string, 0, len(r.Slots))
	for _, a := range r.Slots {
		if a.Filled() {
			out = append(out, a.Player)
		}
	}
	return out
}

// Build runs the chosen strategy.
func Build(strategy Strategy, players []roster.Player, schema formation.Schema) (Result, error) {
	switch strategy {
	case StrategyOverall:
		return Optimal(players, schema), nil
	case StrategyBalanced:
		return Balanced(players, schema), nil
	case StrategyAttack:
		return AttackFocused(players, schema), nil
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
}

// newResult returns a result with every slot unfilled.
func newResult(schema formation.Schema, strategy Strategy) Result {
	res := Result{Formation: schema.Name, Strategy: strategy, Slots: make([]Assignment, len(schema.Slots))}
	for i, sl := range schema.Slots {
		res.Slots[i] = Assignment{Slot: sl.Name, Role: sl.Role, Player: Unfilled}
	}
	return res
}
