package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/lineup/internal/domain/roster"
)

// RankingsDependencies defines the roster queries used by RankingsHandler.
type RankingsDependencies interface {
	TopN(ctx context.Context, role string, n int) ([]roster.Standing, error)
	Gaps(ctx context.Context) []roster.Gap
	Compare(ctx context.Context, names []string, role string) ([]roster.CompareRow, error)
}

// RankingsHandler serves per-role rankings, coverage gaps and comparisons.
type RankingsHandler struct {
	deps     RankingsDependencies
	maxLimit int
}

// NewRankingsHandler creates a new rankings handler.
func NewRankingsHandler(deps RankingsDependencies, maxLimit int) *RankingsHandler {
	return &RankingsHandler{deps: deps, maxLimit: maxLimit}
}

// HandleRankings handles GET /rankings?role=ST&limit=N. Without a limit the
// configured maximum applies.
func (h *RankingsHandler) HandleRankings(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_rankings"
	q := r.URL.Query()

	n := h.maxLimit
	if limitStr := q.Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if parsed > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		n = parsed
	}

	standings, err := h.deps.TopN(r.Context(), q.Get("role"), n)
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, standings)
}

// HandleGaps handles GET /gaps.
func (h *RankingsHandler) HandleGaps(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Gaps(r.Context()))
}

// HandleCompare handles GET /compare?players=a,b&role=CM. Role is optional.
func (h *RankingsHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_compare"
	q := r.URL.Query()
	names := splitList(q.Get("players"))
	if len(names) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	rows, err := h.deps.Compare(r.Context(), names, q.Get("role"))
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// splitList reads a comma separated query value, dropping blanks.
func splitList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
