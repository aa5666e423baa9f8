// Package cli implements lineupctl, a terminal client over the roster
// service: rating players, querying the roster and building lineups.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/lineup"
	"github.com/okian/lineup/internal/domain/rating"
	"github.com/okian/lineup/internal/domain/roster"
	"github.com/spf13/cobra"
)

// DefaultRankingLimit is how many players `rankings` shows without --limit.
const DefaultRankingLimit = 3

// Engine is the service surface the commands drive.
type Engine interface {
	TeamName() string
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

type app struct {
	engine Engine
	view   *view
}

// NewRootCommand builds the lineupctl command tree. Output goes to out.
func NewRootCommand(engine Engine, out io.Writer) *cobra.Command {
	a := &app{engine: engine, view: newView(out)}

	root := &cobra.Command{
		Use:   "lineupctl",
		Short: "Rate players and pick lineups",
		Long: `lineupctl keeps a roster of crowd-rated players and builds lineups
for a formation.

Ratings are 0-5 per role, given as a single value ("3") or a range ("2-4").
Each voter holds one vote per player and role; voting again replaces it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.AddCommand(
		a.playersCmd(),
		a.addCmd(),
		a.showCmd(),
		a.rateCmd(),
		a.votesCmd(),
		a.rankingsCmd(),
		a.gapsCmd(),
		a.compareCmd(),
		a.lineupCmd(),
		a.formationsCmd(),
	)
	return root
}

func (a *app) persist(ctx context.Context) error {
	if _, err := a.engine.Save(ctx); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	return nil
}
