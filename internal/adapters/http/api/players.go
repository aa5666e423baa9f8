package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okian/lineup/internal/domain/rating"
	"github.com/okian/lineup/internal/domain/roster"
)

// PlayersDependencies defines the roster operations used by PlayersHandler.
type PlayersDependencies interface {
	AddPlayer(ctx context.Context, name string) (roster.Player, bool, error)
	Player(ctx context.Context, name string) (roster.Player, error)
	Players(ctx context.Context) []roster.Player
	VotesBy(ctx context.Context, name, voter string) (map[rating.Role]rating.Vote, error)
}

// PlayersHandler serves the roster.
type PlayersHandler struct {
	deps PlayersDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayersDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

type playerView struct {
	Name    string             `json:"name"`
	Ratings []roster.SheetLine `json:"ratings"`
}

func newPlayerView(p roster.Player) playerView {
	return playerView{Name: p.Name, Ratings: p.Sheet()}
}

type createPlayerRequest struct {
	Name string `json:"name"`
}

// HandleList handles GET /players.
func (h *PlayersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	players := h.deps.Players(r.Context())
	out := make([]playerView, 0, len(players))
	for _, p := range players {
		out = append(out, newPlayerView(p))
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /players. It answers 201 for a new player and
// 200 when the name already exists.
func (h *PlayersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_player"
	var req createPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	p, created, err := h.deps.AddPlayer(r.Context(), req.Name)
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, newPlayerView(p))
}

// HandleGet handles GET /players/{name}.
func (h *PlayersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_player"
	p, err := h.deps.Player(r.Context(), r.PathValue("name"))
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, newPlayerView(p))
}

// HandleVotes handles GET /players/{name}/votes?voter=V.
func (h *PlayersHandler) HandleVotes(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_player_votes"
	voter := strings.TrimSpace(r.URL.Query().Get("voter"))
	if voter == "" {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, rating.ErrMissingVoter))
		return
	}
	votes, err := h.deps.VotesBy(r.Context(), r.PathValue("name"), voter)
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, votes)
}
