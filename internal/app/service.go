// Package service wires the rating, roster, formation and lineup packages to
// persistence, logging and metrics. It implements the dependencies of the
// HTTP API and the command line client.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/lineup/internal/adapters/repository"
	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/lineup"
	"github.com/okian/lineup/internal/domain/rating"
	"github.com/okian/lineup/internal/domain/roster"
	"github.com/okian/lineup/pkg/logger"
	"github.com/okian/lineup/pkg/metrics"
)

const defaultTeamName = "Pro Clubs FC"

// Service is the application facade over the roster and the lineup engine.
type Service struct {
	mu sync.RWMutex

	roster     *roster.Catalog
	formations *formation.Catalog
	store      repository.Store

	// Configuration
	teamName         string
	formationsFile   string
	defaultFormation string
	defaultStrategy  lineup.Strategy
	gapThreshold     float64
	autoSave         bool

	// State
	started   bool
	dirty     atomic.Bool
	revision  string
	lastSaved time.Time

	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		roster:           roster.NewCatalog(),
		formations:       formation.NewCatalog(),
		teamName:         defaultTeamName,
		defaultFormation: formation.Attacking433,
		defaultStrategy:  lineup.StrategyOverall,
		gapThreshold:     roster.DefaultGapThreshold,
		autoSave:         true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads extra formations and the stored roster. It is idempotent.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.logger.Info(ctx, "starting lineup service...")

	if s.formationsFile != "" {
		n, err := s.formations.LoadFile(s.formationsFile)
		if err != nil {
			return fmt.Errorf("load formations: %w", err)
		}
		s.logger.Info(ctx, "loaded formations", logger.String("path", s.formationsFile), logger.Int("count", n))
	}

	if s.store != nil {
		doc, err := s.store.Load(ctx)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}
		loaded := roster.NewCatalog()
		if err := doc.Restore(loaded); err != nil {
			return fmt.Errorf("load roster: %w", err)
		}
		s.roster = loaded
		if doc.TeamName != "" {
			s.teamName = doc.TeamName
		}
		s.revision = doc.Revision
		s.logger.Info(ctx, "roster loaded",
			logger.String("team", s.teamName),
			logger.Int("players", loaded.Len()),
			logger.String("revision", doc.Revision),
		)
	}

	metrics.UpdateRosterPlayers(s.roster.Len())
	s.started = true
	s.logger.Info(ctx, "lineup service started",
		logger.Int("formations", len(s.formations.Names())),
		logger.Float64("gapThreshold", s.gapThreshold),
		logger.Bool("autoSave", s.autoSave),
	)
	return nil
}

// Stop saves unsaved changes when auto-save is on and marks the service
// stopped.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return nil
	}

	s.logger.Info(ctx, "stopping lineup service...")
	var err error
	if s.autoSave && s.store != nil && s.dirty.Load() {
		_, err = s.Save(ctx)
	}

	s.mu.Lock()
	s.started = false
	s.mu.Unlock()
	s.logger.Info(ctx, "lineup service stopped")
	return err
}

func (s *Service) catalog() *roster.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.logger == nil {
		return logger.Get()
	}
	return s.logger
}

// TeamName returns the current team name.
func (s *Service) TeamName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.teamName
}

// AddPlayer creates an unrated player, or returns the existing one.
func (s *Service) AddPlayer(ctx context.Context, name string) (roster.Player, bool, error) {
	p, created, err := s.catalog().GetOrCreate(name)
	if err != nil {
		return roster.Player{}, false, err
	}
	if created {
		s.dirty.Store(true)
		metrics.UpdateRosterPlayers(s.catalog().Len())
		s.log().Info(ctx, "player added", logger.String("player", p.Name))
	}
	return p, created, nil
}

// Player returns one player.
func (s *Service) Player(_ context.Context, name string) (roster.Player, error) {
	return s.catalog().Get(name)
}

// Players lists every player in insertion order.
func (s *Service) Players(_ context.Context) []roster.Player {
	return s.catalog().Snapshot()
}

// SubmitVote records voter's rating range for a player at role and returns
// the player's new aggregate for that role.
func (s *Service) SubmitVote(ctx context.Context, name, role string, minRating, maxRating float64, voter string) (rating.Rating, error) {
	r, err := rating.ParseRole(role)
	if err == nil {
		var agg rating.Rating
		agg, err = s.catalog().SubmitVote(name, r, minRating, maxRating, voter)
		if err == nil {
			s.dirty.Store(true)
			metrics.RecordVoteSubmitted()
			metrics.UpdateRosterPlayers(s.catalog().Len())
			s.log().Debug(ctx, "vote recorded",
				logger.String("player", roster.NormalizeName(name)),
				logger.String("role", r.String()),
				logger.String("voter", roster.NormalizeName(voter)),
				logger.String("rating", agg.String()),
			)
			return agg, nil
		}
	}

	reason := rejectReason(err)
	metrics.RecordVoteRejected(reason)
	s.log().Warn(ctx, "vote rejected",
		logger.String("player", name),
		logger.String("role", role),
		logger.String("reason", reason),
		logger.Error(err),
	)
	return rating.Rating{}, err
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, rating.ErrInvalidRole):
		return "invalid_role"
	case errors.Is(err, rating.ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, rating.ErrMissingVoter):
		return "missing_voter"
	case errors.Is(err, roster.ErrEmptyName):
		return "empty_name"
	}
	return "other"
}

// VotesBy returns voter's live votes on a player, keyed by role.
func (s *Service) VotesBy(_ context.Context, name, voter string) (map[rating.Role]rating.Vote, error) {
	return s.catalog().VotesBy(name, voter)
}

// TopN ranks rated players at role.
func (s *Service) TopN(_ context.Context, role string, n int) ([]roster.Standing, error) {
	r, err := rating.ParseRole(role)
	if err != nil {
		return nil, err
	}
	return s.catalog().TopNForRole(r, n)
}

// Gaps lists poorly covered roles under the configured threshold.
func (s *Service) Gaps(_ context.Context) []roster.Gap {
	return s.catalog().CoverageGaps(s.gapThreshold)
}

// Compare lays players side by side at role, or at every role when role is
// empty.
func (s *Service) Compare(_ context.Context, names []string, role string) ([]roster.CompareRow, error) {
	var r rating.Role
	if role != "" {
		parsed, err := rating.ParseRole(role)
		if err != nil {
			return nil, err
		}
		r = parsed
	}
	return s.catalog().Compare(names, r)
}

// Lineup builds a lineup for the named formation with the given strategy.
// Empty names fall back to the configured defaults. With no player names
// the whole roster is considered; otherwise every named player must exist.
func (s *Service) Lineup(ctx context.Context, formationName, strategy string, names ...string) (lineup.Result, error) {
	if formationName == "" {
		formationName = s.defaultFormation
	}
	schema, err := s.formations.Get(formationName)
	if err != nil {
		return lineup.Result{}, err
	}

	strat := s.defaultStrategy
	if strategy != "" {
		if strat, err = lineup.ParseStrategy(strategy); err != nil {
			return lineup.Result{}, err
		}
	}

	cat := s.catalog()
	for _, n := range names {
		if _, err := cat.Get(n); err != nil {
			return lineup.Result{}, err
		}
	}
	players := cat.Snapshot(names...)

	start := time.Now()
	res, err := lineup.Build(strat, players, schema)
	if err != nil {
		return lineup.Result{}, err
	}
	elapsed := time.Since(start)

	filled := res.FilledCount()
	metrics.RecordLineup(string(strat), float64(elapsed.Microseconds())/1000, filled, len(res.Slots)-filled, res.SideSwaps)
	s.log().Debug(ctx, "lineup built",
		logger.String("formation", schema.Name),
		logger.String("strategy", string(strat)),
		logger.Int("candidates", len(players)),
		logger.Int("filled", filled),
		logger.Int("sideSwaps", res.SideSwaps),
		logger.Any("players", res.Players()),
		logger.Duration("took", elapsed),
	)
	return res, nil
}

// Formations lists every known formation.
func (s *Service) Formations(_ context.Context) []formation.Schema {
	names := s.formations.Names()
	out := make([]formation.Schema, 0, len(names))
	for _, n := range names {
		if schema, err := s.formations.Get(n); err == nil {
			out = append(out, schema)
		}
	}
	return out
}

// Save persists the roster and returns the stored revision.
func (s *Service) Save(ctx context.Context) (string, error) {
	if s.store == nil {
		return "", ErrNoStore
	}
	// Cleared before the snapshot so votes landing during the write stay
	// pending for the next save.
	s.dirty.Store(false)
	doc := repository.FromRoster(s.TeamName(), s.catalog().Snapshot())
	rev, err := s.store.Save(ctx, doc)
	if err != nil {
		s.dirty.Store(true)
		s.log().Error(ctx, "roster save failed", logger.Error(err))
		return "", fmt.Errorf("save roster: %w", err)
	}

	s.mu.Lock()
	s.revision = rev
	s.lastSaved = time.Now()
	s.mu.Unlock()
	s.log().Info(ctx, "roster saved", logger.String("revision", rev), logger.Int("players", len(doc.Players)))
	return rev, nil
}

// Flush saves the roster only when it has unsaved changes. saved reports
// whether a write happened.
func (s *Service) Flush(ctx context.Context) (bool, error) {
	if s.store == nil || !s.dirty.Load() {
		return false, nil
	}
	if _, err := s.Save(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":    s.started,
		"team":       s.teamName,
		"players":    s.roster.Len(),
		"formations": len(s.formations.Names()),
		"unsaved":    s.dirty.Load(),
		"autoSave":   s.autoSave,
		"revision":   s.revision,
	}
	if !s.lastSaved.IsZero() {
		stats["lastSaved"] = s.lastSaved.UTC().Format(time.RFC3339)
	}
	metrics.UpdateRosterPlayers(s.roster.Len())
	return stats
}
