package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/lineup/internal/domain/rating"
	"github.com/okian/lineup/internal/domain/roster"
)

// VoteDependencies defines the interface for vote submission.
type VoteDependencies interface {
	SubmitVote(ctx context.Context, name, role string, minRating, maxRating float64, voter string) (rating.Rating, error)
}

// VotesHandler handles vote submissions.
type VotesHandler struct {
	deps VoteDependencies
}

// NewVotesHandler creates a new votes handler.
func NewVotesHandler(deps VoteDependencies) *VotesHandler {
	return &VotesHandler{deps: deps}
}

// voteRequest carries either min and max or a range string such as "2-4".
type voteRequest struct {
	Player string   `json:"player"`
	Role   string   `json:"role"`
	Voter  string   `json:"voter"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
	Rating string   `json:"rating,omitempty"`
}

func (v voteRequest) bounds() (float64, float64, error) {
	if v.Rating != "" {
		return rating.ParseRange(v.Rating)
	}
	if v.Min == nil || v.Max == nil {
		return 0, 0, errors.New("either rating or both min and max are required")
	}
	return *v.Min, *v.Max, nil
}

type voteResponse struct {
	Player string        `json:"player"`
	Role   string        `json:"role"`
	Rating rating.Rating `json:"rating"`
}

// HandlePostVote handles POST /votes.
func (h *VotesHandler) HandlePostVote(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_vote"
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	lo, hi, err := req.bounds()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	agg, err := h.deps.SubmitVote(r.Context(), req.Player, req.Role, lo, hi, req.Voter)
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, voteResponse{
		Player: roster.NormalizeName(req.Player),
		Role:   strings.ToUpper(strings.TrimSpace(req.Role)),
		Rating: agg,
	})
}
