package service_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/lineup/internal/adapters/repository"
	service "github.com/okian/lineup/internal/app"
	"github.com/okian/lineup/internal/config"
	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/lineup"
	"github.com/okian/lineup/internal/domain/rating"
	"github.com/okian/lineup/internal/domain/roster"
	"github.com/okian/lineup/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.InitWithWriter(io.Discard, "debug"); err != nil {
		panic(err)
	}
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			stats := svc.GetStats()
			So(stats["started"], ShouldEqual, false)
			So(stats["team"], ShouldEqual, "Pro Clubs FC")
			So(stats["formations"], ShouldEqual, 5)
			So(stats["autoSave"], ShouldEqual, true)
		})

		Convey("Then saving without a store fails", func() {
			_, err := svc.Save(context.Background())
			So(errors.Is(err, service.ErrNoStore), ShouldBeTrue)
		})
	})
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a service backed by a file store", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		path := filepath.Join(dir, "players_data.json")
		newService := func(opts ...service.Option) *service.Service {
			base := []service.Option{service.WithStore(repository.NewFileStore(path)), service.WithTeamName("Sunday FC")}
			return service.New(append(base, opts...)...)
		}

		svc := newService()
		So(svc.Start(ctx), ShouldBeNil)
		So(svc.Start(ctx), ShouldBeNil)

		Convey("When votes are cast and the service stops", func() {
			_, err := svc.SubmitVote(ctx, "ann", "cm", 3, 4, "bob")
			So(err, ShouldBeNil)
			So(svc.GetStats()["unsaved"], ShouldEqual, true)
			So(svc.Stop(ctx), ShouldBeNil)

			Convey("Then a restarted service sees them", func() {
				again := newService()
				So(again.Start(ctx), ShouldBeNil)
				p, err := again.Player(ctx, "ANN")
				So(err, ShouldBeNil)
				So(p.Rating(rating.CM), ShouldResemble, rating.Rating{Min: 3, Max: 4})
				So(again.TeamName(), ShouldEqual, "Sunday FC")
				So(again.GetStats()["revision"], ShouldNotBeEmpty)
			})
		})

		Convey("When auto-save is off", func() {
			quiet := newService(service.WithAutoSave(false))
			So(quiet.Start(ctx), ShouldBeNil)
			_, err := quiet.SubmitVote(ctx, "ann", "GK", 2, 2, "bob")
			So(err, ShouldBeNil)
			So(quiet.Stop(ctx), ShouldBeNil)

			Convey("Then nothing is written", func() {
				_, err := os.Stat(path)
				So(os.IsNotExist(err), ShouldBeTrue)
			})
		})

		Convey("When saving explicitly", func() {
			_, _, err := svc.AddPlayer(ctx, "eve")
			So(err, ShouldBeNil)
			rev, err := svc.Save(ctx)

			Convey("Then the revision is reported and nothing is pending", func() {
				So(err, ShouldBeNil)
				So(rev, ShouldNotBeEmpty)
				stats := svc.GetStats()
				So(stats["revision"], ShouldEqual, rev)
				So(stats["unsaved"], ShouldEqual, false)
				So(stats["lastSaved"], ShouldNotBeNil)
			})
		})

		Convey("When flushing", func() {
			saved, err := svc.Flush(ctx)
			So(err, ShouldBeNil)
			So(saved, ShouldBeFalse)

			_, err = svc.SubmitVote(ctx, "ann", "ST", 4, 4, "bob")
			So(err, ShouldBeNil)

			Convey("Then only pending changes are written", func() {
				saved, err := svc.Flush(ctx)
				So(err, ShouldBeNil)
				So(saved, ShouldBeTrue)
				_, err = os.Stat(path)
				So(err, ShouldBeNil)

				saved, err = svc.Flush(ctx)
				So(err, ShouldBeNil)
				So(saved, ShouldBeFalse)
			})
		})

		Convey("When the stored roster is corrupt", func() {
			So(os.WriteFile(path, []byte(`{"players":{"Ann":{"positions":{"QB":{}}}}}`), 0o600), ShouldBeNil)
			broken := newService()

			Convey("Then start fails", func() {
				err := broken.Start(ctx)
				So(errors.Is(err, repository.ErrCorruptRoster), ShouldBeTrue)
			})
		})
	})
}

func TestService_Votes(t *testing.T) {
	Convey("Given a started in-memory service", t, func() {
		ctx := context.Background()
		svc := service.New()
		So(svc.Start(ctx), ShouldBeNil)

		Convey("When a voter re-rates a player", func() {
			_, err := svc.SubmitVote(ctx, "ann", "st", 2, 3, "bob")
			So(err, ShouldBeNil)
			agg, err := svc.SubmitVote(ctx, "ann", "st", 4, 5, "bob")
			So(err, ShouldBeNil)

			Convey("Then only the latest vote counts", func() {
				So(agg, ShouldResemble, rating.Rating{Min: 4, Max: 5})
				votes, err := svc.VotesBy(ctx, "ann", "bob")
				So(err, ShouldBeNil)
				So(votes[rating.ST], ShouldResemble, rating.Vote{Voter: "Bob", Min: 4, Max: 5})
			})
		})

		Convey("When a vote is invalid", func() {
			_, errRole := svc.SubmitVote(ctx, "ann", "SW", 2, 3, "bob")
			_, errRange := svc.SubmitVote(ctx, "ann", "ST", 4, 3, "bob")
			_, errVoter := svc.SubmitVote(ctx, "ann", "ST", 1, 3, " ")

			Convey("Then it is rejected and nothing is stored", func() {
				So(errors.Is(errRole, rating.ErrInvalidRole), ShouldBeTrue)
				So(errors.Is(errRange, rating.ErrInvalidRange), ShouldBeTrue)
				So(errors.Is(errVoter, rating.ErrMissingVoter), ShouldBeTrue)
				So(svc.Players(ctx), ShouldBeEmpty)
			})
		})
	})
}

func TestService_Queries(t *testing.T) {
	Convey("Given a small squad", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithGapThreshold(4))
		So(svc.Start(ctx), ShouldBeNil)
		for _, v := range []struct {
			name, role string
			lo, hi     float64
		}{
			{"ann", "ST", 4, 5},
			{"bob", "ST", 3, 5},
			{"cal", "GK", 4, 4},
			{"dan", "CB", 3, 3},
		} {
			_, err := svc.SubmitVote(ctx, v.name, v.role, v.lo, v.hi, "coach")
			So(err, ShouldBeNil)
		}

		Convey("Then top-N shares ranks on equal ceilings", func() {
			top, err := svc.TopN(ctx, "st", 5)
			So(err, ShouldBeNil)
			So(top, ShouldHaveLength, 2)
			So(top[0].Name, ShouldEqual, "Ann")
			So(top[0].Rank, ShouldEqual, 1)
			So(top[1].Rank, ShouldEqual, 1)

			_, err = svc.TopN(ctx, "xx", 5)
			So(errors.Is(err, rating.ErrInvalidRole), ShouldBeTrue)
		})

		Convey("Then gaps use the configured threshold", func() {
			gaps := svc.Gaps(ctx)
			roles := make([]rating.Role, 0, len(gaps))
			for _, g := range gaps {
				roles = append(roles, g.Role)
			}
			So(roles, ShouldContain, rating.CB)
			So(roles, ShouldNotContain, rating.ST)
			So(roles, ShouldNotContain, rating.GK)
		})

		Convey("Then compare works for one role and all roles", func() {
			rows, err := svc.Compare(ctx, []string{"ann", "bob"}, "ST")
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 1)
			So(rows[0].Cells[1].Display, ShouldEqual, "3.0-5.0")

			rows, err = svc.Compare(ctx, []string{"ann", "bob"}, "")
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, len(rating.Roles()))

			_, err = svc.Compare(ctx, []string{"ann"}, "nope")
			So(errors.Is(err, rating.ErrInvalidRole), ShouldBeTrue)
		})

		Convey("Then formations are listed", func() {
			names := make([]string, 0)
			for _, f := range svc.Formations(ctx) {
				names = append(names, f.Name)
			}
			So(names, ShouldContain, formation.F4312)
		})
	})
}

func TestService_Lineup(t *testing.T) {
	Convey("Given a service with a striker and a keeper", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithDefaultStrategy(lineup.StrategyBalanced))
		So(svc.Start(ctx), ShouldBeNil)
		_, err := svc.SubmitVote(ctx, "ann", "ST", 5, 5, "coach")
		So(err, ShouldBeNil)
		_, err = svc.SubmitVote(ctx, "cal", "GK", 4, 4, "coach")
		So(err, ShouldBeNil)

		Convey("When building with defaults", func() {
			res, err := svc.Lineup(ctx, "", "")

			Convey("Then the default formation and strategy are used", func() {
				So(err, ShouldBeNil)
				So(res.Formation, ShouldEqual, formation.Attacking433)
				So(res.Strategy, ShouldEqual, lineup.StrategyBalanced)
				So(res.FilledCount(), ShouldEqual, 2)
			})
		})

		Convey("When building for a subset of players", func() {
			res, err := svc.Lineup(ctx, "4-2-3-1", "attack", "cal")
			So(err, ShouldBeNil)
			So(res.Players(), ShouldResemble, []string{"Cal"})
		})

		Convey("When a named player is unknown", func() {
			_, err := svc.Lineup(ctx, "", "", "ghost")
			So(errors.Is(err, roster.ErrPlayerNotFound), ShouldBeTrue)
		})

		Convey("When the formation or strategy is unknown", func() {
			_, err := svc.Lineup(ctx, "2-3-5", "")
			So(errors.Is(err, formation.ErrUnknownFormation), ShouldBeTrue)
			_, err = svc.Lineup(ctx, "", "tiki-taka")
			So(errors.Is(err, lineup.ErrUnknownStrategy), ShouldBeTrue)
		})
	})

	Convey("Given a formations file", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "formations.yaml")
		So(os.WriteFile(path, []byte(`
formations:
  - name: "3-4-3"
    slots:
      - {slot: GK, role: gk}
      - {slot: LCB, role: cb}
      - {slot: CB, role: cb}
      - {slot: RCB, role: cb}
      - {slot: LM, role: lm}
      - {slot: LCM, role: cm}
      - {slot: RCM, role: cm}
      - {slot: RM, role: rm}
      - {slot: LW, role: lw}
      - {slot: ST, role: st}
      - {slot: RW, role: rw}
`), 0o600), ShouldBeNil)

		svc := service.New(service.WithFormationsFile(path))

		Convey("Then start registers it alongside the built-ins", func() {
			So(svc.Start(ctx), ShouldBeNil)
			res, err := svc.Lineup(ctx, "3-4-3", "attack")
			So(err, ShouldBeNil)
			So(res.Slots, ShouldHaveLength, 11)
			So(svc.GetStats()["formations"], ShouldEqual, 6)
		})
	})
}

func TestWithConfig(t *testing.T) {
	Convey("Given loaded configuration", t, func() {
		cfg := config.New()
		cfg.TeamName = "Harriers"
		cfg.DefaultFormation = formation.F4231
		cfg.DefaultStrategy = "attack"
		cfg.AutoSave = false

		svc := service.New(service.WithConfig(cfg))
		So(svc.Start(context.Background()), ShouldBeNil)

		Convey("Then the service adopts its settings", func() {
			So(svc.TeamName(), ShouldEqual, "Harriers")
			res, err := svc.Lineup(context.Background(), "", "")
			So(err, ShouldBeNil)
			So(res.Formation, ShouldEqual, formation.F4231)
			So(res.Strategy, ShouldEqual, lineup.StrategyAttack)
			So(svc.GetStats()["autoSave"], ShouldBeFalse)
		})
	})
}
