package cli

import (
	"strings"

	"github.com/okian/lineup/internal/domain/rating"
	"github.com/okian/lineup/internal/domain/roster"
	"github.com/spf13/cobra"
)

func (a *app) playersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "List the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.view.players(a.engine.TeamName(), a.engine.Players(cmd.Context()))
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Add a player to the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, created, err := a.engine.AddPlayer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !created {
				a.view.linef("%s is already on the roster", p.Name)
				return nil
			}
			if err := a.persist(cmd.Context()); err != nil {
				return err
			}
			a.view.linef("added %s", p.Name)
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show a player's rating sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.engine.Player(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.view.sheet(p)
			return nil
		},
	}
}

func (a *app) rateCmd() *cobra.Command {
	var voter, role, value string
	cmd := &cobra.Command{
		Use:     "rate NAME",
		Short:   "Vote on a player's rating at a role",
		Example: `  lineupctl rate "Ann Lee" --voter bob --role ST --rating 3-4`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, hi, err := rating.ParseRange(value)
			if err != nil {
				return err
			}
			agg, err := a.engine.SubmitVote(cmd.Context(), args[0], role, lo, hi, voter)
			if err != nil {
				return err
			}
			if err := a.persist(cmd.Context()); err != nil {
				return err
			}
			a.view.linef("%s at %s is now %s", roster.NormalizeName(args[0]), strings.ToUpper(strings.TrimSpace(role)), agg)
			return nil
		},
	}
	cmd.Flags().StringVar(&voter, "voter", "", "who is voting")
	cmd.Flags().StringVar(&role, "role", "", "role being rated, e.g. ST or CB")
	cmd.Flags().StringVar(&value, "rating", "", `rating as "3" or "2-4"`)
	_ = cmd.MarkFlagRequired("voter")
	_ = cmd.MarkFlagRequired("role")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}

func (a *app) votesCmd() *cobra.Command {
	var voter string
	cmd := &cobra.Command{
		Use:   "votes NAME",
		Short: "Show the votes one voter cast for a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			votes, err := a.engine.VotesBy(cmd.Context(), args[0], voter)
			if err != nil {
				return err
			}
			a.view.votes(votes)
			return nil
		},
	}
	cmd.Flags().StringVar(&voter, "voter", "", "voter whose votes to show")
	_ = cmd.MarkFlagRequired("voter")
	return cmd
}

func (a *app) rankingsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "rankings ROLE",
		Short: "Top players for a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			standings, err := a.engine.TopN(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			a.view.standings(strings.ToUpper(args[0]), standings)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", DefaultRankingLimit, "how many players to show; 0 shows all")
	return cmd
}

func (a *app) gapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gaps",
		Short: "Roles the roster covers poorly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.view.gaps(a.engine.Gaps(cmd.Context()))
			return nil
		},
	}
}

func (a *app) compareCmd() *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "compare NAME...",
		Short: "Compare players side by side",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := a.engine.Compare(cmd.Context(), args, role)
			if err != nil {
				return err
			}
			a.view.compare(rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "limit the comparison to one role")
	return cmd
}

func (a *app) lineupCmd() *cobra.Command {
	var formationName, strategy string
	var players []string
	cmd := &cobra.Command{
		Use:   "lineup",
		Short: "Build a lineup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.engine.Lineup(cmd.Context(), formationName, strategy, players...)
			if err != nil {
				return err
			}
			a.view.lineup(res)
			return nil
		},
	}
	cmd.Flags().StringVar(&formationName, "formation", "", "formation name; defaults to the configured one")
	cmd.Flags().StringVar(&strategy, "strategy", "", "overall, balanced or attack")
	cmd.Flags().StringSliceVar(&players, "players", nil, "pick only from these players")
	return cmd
}

func (a *app) formationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formations",
		Short: "List known formations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.view.formations(a.engine.Formations(cmd.Context()))
			return nil
		},
	}
}
