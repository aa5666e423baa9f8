package api

import (
	"context"
	"net/http"

	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/lineup"
)

// LineupDependencies defines the engine operations used by LineupHandler.
type LineupDependencies interface {
	Lineup(ctx context.Context, formation, strategy string, names ...string) (lineup.Result, error)
	Formations(ctx context.Context) []formation.Schema
}

// LineupHandler serves formations and computed lineups.
type LineupHandler struct {
	deps LineupDependencies
}

// NewLineupHandler creates a new lineup handler.
func NewLineupHandler(deps LineupDependencies) *LineupHandler {
	return &LineupHandler{deps: deps}
}

type lineupResponse struct {
	lineup.Result
	Filled int `json:"filled"`
}

// HandleFormations handles GET /formations.
func (h *LineupHandler) HandleFormations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Formations(r.Context()))
}

// HandleLineup handles GET /lineup?formation=F&strategy=S&players=a,b.
// Every parameter is optional.
func (h *LineupHandler) HandleLineup(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_lineup"
	q := r.URL.Query()
	res, err := h.deps.Lineup(r.Context(), q.Get("formation"), q.Get("strategy"), splitList(q.Get("players"))...)
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, lineupResponse{Result: res, Filled: res.FilledCount()})
}
