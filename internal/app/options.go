package service

import (
	"github.com/okian/lineup/internal/adapters/repository"
	"github.com/okian/lineup/internal/config"
	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/lineup"
	"github.com/okian/lineup/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets the persistence backend. Without one the roster lives only
// in memory and Save fails with ErrNoStore.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithFormations replaces the formation catalog.
func WithFormations(c *formation.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.formations = c
		}
	}
}

// WithFormationsFile names a YAML file of extra formations loaded on Start.
func WithFormationsFile(path string) Option {
	return func(s *Service) {
		s.formationsFile = path
	}
}

// WithTeamName sets the team name used until a stored roster provides one.
func WithTeamName(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.teamName = name
		}
	}
}

// WithDefaultFormation sets the formation used when a request names none.
func WithDefaultFormation(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.defaultFormation = name
		}
	}
}

// WithDefaultStrategy sets the strategy used when a request names none.
func WithDefaultStrategy(strategy lineup.Strategy) Option {
	return func(s *Service) {
		if strategy != "" {
			s.defaultStrategy = strategy
		}
	}
}

// WithGapThreshold sets the mean rating below which a role is a gap.
func WithGapThreshold(threshold float64) Option {
	return func(s *Service) {
		if threshold > 0 {
			s.gapThreshold = threshold
		}
	}
}

// WithAutoSave controls whether Stop persists unsaved changes.
func WithAutoSave(enabled bool) Option {
	return func(s *Service) {
		s.autoSave = enabled
	}
}

// WithConfig applies the roster and lineup settings of cfg. The store is
// wired separately with WithStore.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg == nil {
			return
		}
		for _, opt := range []Option{
			WithTeamName(cfg.TeamName),
			WithFormationsFile(cfg.FormationsFile),
			WithDefaultFormation(cfg.DefaultFormation),
			WithGapThreshold(cfg.GapThreshold),
			WithAutoSave(cfg.AutoSave),
		} {
			opt(s)
		}
		if strategy, err := lineup.ParseStrategy(cfg.DefaultStrategy); err == nil {
			s.defaultStrategy = strategy
		}
	}
}
