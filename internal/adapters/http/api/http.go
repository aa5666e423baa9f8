// Package api exposes the roster, rating and lineup operations as a JSON
// HTTP API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/lineup"
	"github.com/okian/lineup/internal/domain/rating"
	"github.com/okian/lineup/internal/domain/roster"
)

// Dependencies required by HTTP handlers.
type Dependencies interface {
	AddPlayer(ctx context.Context, name string) (roster.Player, bool, error)
	Player(ctx context.Context, name string) (roster.Player, error)
	Players(ctx context.Context) []roster.Player
	SubmitVote(ctx context.Context, name, role string, minRating, maxRating float64, voter string) (rating.Rating, error)
	VotesBy(ctx context.Context, name, voter string) (map[rating.Role]rating.Vote, error)

	TopN(ctx context.Context, role string, n int) ([]roster.Standing, error)
	Gaps(ctx context.Context) []roster.Gap
	Compare(ctx context.Context, names []string, role string) ([]roster.CompareRow, error)

	Lineup(ctx context.Context, formation, strategy string, names ...string) (lineup.Result, error)
	Formations(ctx context.Context) []formation.Schema

	Save(ctx context.Context) (string, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	playersHandler   *PlayersHandler
	votesHandler     *VotesHandler
	rankingsHandler  *RankingsHandler
	lineupHandler    *LineupHandler
	rosterSaveHandle *SaveHandler
}

// NewServer creates a new API server with all handlers. maxLimit caps the
// limit accepted by GET /rankings.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		playersHandler:   NewPlayersHandler(deps),
		votesHandler:     NewVotesHandler(deps),
		rankingsHandler:  NewRankingsHandler(deps, maxLimit),
		lineupHandler:    NewLineupHandler(deps),
		rosterSaveHandle: NewSaveHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	route := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, RequestIDMiddleware(MetricsMiddleware(h, endpoint)))
	}

	route("GET /healthz", "healthz", s.healthHandler.HandleHealth)
	route("GET /stats", "stats", s.statsHandler.HandleStats)

	route("GET /players", "players", s.playersHandler.HandleList)
	route("POST /players", "players", s.playersHandler.HandleCreate)
	route("GET /players/{name}", "player", s.playersHandler.HandleGet)
	route("GET /players/{name}/votes", "player_votes", s.playersHandler.HandleVotes)
	route("POST /votes", "votes", s.votesHandler.HandlePostVote)

	route("GET /rankings", "rankings", s.rankingsHandler.HandleRankings)
	route("GET /gaps", "gaps", s.rankingsHandler.HandleGaps)
	route("GET /compare", "compare", s.rankingsHandler.HandleCompare)

	route("GET /formations", "formations", s.lineupHandler.HandleFormations)
	route("GET /lineup", "lineup", s.lineupHandler.HandleLineup)

	route("POST /save", "save", s.rosterSaveHandle.HandleSave)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeFailure maps domain errors to a status: invalid input is 400,
// unknown players and formations are 404, anything else is 500.
func writeFailure(w http.ResponseWriter, op string, err error) {
	switch {
	case isBadRequest(err):
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
	case isNotFound(err):
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", WrapKind(op, ErrInternal, err))
	}
}

func isBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest) ||
		errors.Is(err, rating.ErrInvalidRole) ||
		errors.Is(err, rating.ErrInvalidRange) ||
		errors.Is(err, rating.ErrMissingVoter) ||
		errors.Is(err, roster.ErrEmptyName) ||
		errors.Is(err, lineup.ErrUnknownStrategy)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, roster.ErrPlayerNotFound) ||
		errors.Is(err, formation.ErrUnknownFormation)
}
