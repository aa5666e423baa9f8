package rating

import "fmt"

// Ledger holds the live votes of one individual, keyed by role, together with
// the aggregate derived from them. At most one vote per voter per role is live.
type Ledger struct {
	votes   map[Role][]Vote
	ratings map[Role]Rating
}

// NewLedger returns a ledger with every role unrated.
func NewLedger() *Ledger {
	return &Ledger{
		votes:   make(map[Role][]Vote, len(roles)),
		ratings: make(map[Role]Rating, len(roles)),
	}
}

// Submit replaces any prior vote by the same voter for role and recomputes
// the aggregate. A rejected vote leaves the ledger untouched.
func (l *Ledger) Submit(role Role, v Vote) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	if _, err := NewVote(v.Voter, v.Min, v.Max); err != nil {
		return err
	}

	prior := l.votes[role]
	kept := make([]Vote, 0, len(prior)+1)
	for _, existing := range prior {
		if existing.Voter != v.Voter {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, v)

	l.votes[role] = kept
	l.ratings[role] = Aggregate(kept)
	return nil
}

// Rating returns the aggregate for role; unrated roles yield the zero Rating.
func (l *Ledger) Rating(role Role) Rating {
	return l.ratings[role]
}

// Votes returns a copy of the live votes for role.
func (l *Ledger) Votes(role Role) []Vote {
	out := make([]Vote, len(l.votes[role]))
	copy(out, l.votes[role])
	return out
}

// VoteCount returns the number of live votes for role.
func (l *Ledger) VoteCount(role Role) int {
	return len(l.votes[role])
}

// VoteBy returns voter's live vote for role, if any.
func (l *Ledger) VoteBy(role Role, voter string) (Vote, bool) {
	for _, v := range l.votes[role] {
		if v.Voter == voter {
			return v, true
		}
	}
	return Vote{}, false
}

// Clone deep-copies the ledger.
func (l *Ledger) Clone() *Ledger {
	c := NewLedger()
	for role, votes := range l.votes {
		c.votes[role] = append([]Vote(nil), votes...)
	}
	for role, r := range l.ratings {
		c.ratings[role] = r
	}
	return c
}
