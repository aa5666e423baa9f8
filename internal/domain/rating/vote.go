package rating

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rating bounds.
const (
	MinScore = 0.0
	MaxScore = 5.0
)

// Vote is a single voter's (min, max) estimate for one role.
type Vote struct {
	Voter string  `json:"voter"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// NewVote validates and builds a Vote.
func NewVote(voter string, minRating, maxRating float64) (Vote, error) {
	if strings.TrimSpace(voter) == "" {
		return Vote{}, ErrMissingVoter
	}
	if err := ValidateRange(minRating, maxRating); err != nil {
		return Vote{}, err
	}
	return Vote{Voter: voter, Min: minRating, Max: maxRating}, nil
}

// ValidateRange enforces 0 <= min <= max <= 5.
func ValidateRange(minRating, maxRating float64) error {
	if math.IsNaN(minRating) || math.IsNaN(maxRating) ||
		minRating < MinScore || maxRating > MaxScore || minRating > maxRating {
		return fmt.Errorf("%w: %v-%v", ErrInvalidRange, minRating, maxRating)
	}
	return nil
}

// ParseRange reads "3" as (3, 3) and "2-4" as (2, 4) and validates the result.
func ParseRange(s string) (float64, float64, error) {
	s = strings.TrimSpace(s)
	lo, hi, isRange := strings.Cut(s, "-")
	minRating, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	maxRating := minRating
	if isRange {
		if maxRating, err = strconv.ParseFloat(strings.TrimSpace(hi), 64); err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRange, s)
		}
	}
	if err := ValidateRange(minRating, maxRating); err != nil {
		return 0, 0, err
	}
	return minRating, maxRating, nil
}

// Rating is the aggregate estimate for one role. The zero value means unrated.
type Rating struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Rated reports whether any voter has put a non-zero ceiling on the role.
func (r Rating) Rated() bool { return r.Max > 0 }

// Feasible reports whether the rating may back a real assignment.
func (r Rating) Feasible() bool { return r.Min > 0 }

// String renders "4.0" for a point estimate and "3.0-4.5" for a range.
func (r Rating) String() string {
	if r.Min == r.Max {
		return strconv.FormatFloat(r.Min, 'f', 1, 64)
	}
	return strconv.FormatFloat(r.Min, 'f', 1, 64) + "-" + strconv.FormatFloat(r.Max, 'f', 1, 64)
}

// Aggregate averages the votes, rounding each bound to one decimal.
func Aggregate(votes []Vote) Rating {
	if len(votes) == 0 {
		return Rating{}
	}
	var sumMin, sumMax float64
	for _, v := range votes {
		sumMin += v.Min
		sumMax += v.Max
	}
	n := float64(len(votes))
	return Rating{Min: round1(sumMin / n), Max: round1(sumMax / n)}
}

// round1 rounds the exact binary value of x to one decimal. Scaling by ten
// first would round a different number.
func round1(x float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	if err != nil {
		return x
	}
	return r
}
