// Package config defines service configuration and its layered loader.
//
// Conventions:
//   - New() returns a Config populated with defaults.
//   - Load layers an optional YAML file and LINEUP_ environment variables on
//     top of the defaults, then validates the result.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/okian/lineup/internal/domain/lineup"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// TeamName is stored alongside the roster.
	TeamName string `koanf:"team_name"`

	// RosterPath is the JSON document holding players and their votes.
	RosterPath string `koanf:"roster_path"`

	// FormationsFile optionally names a YAML file of extra formations.
	FormationsFile string `koanf:"formations_file"`

	// DefaultFormation and DefaultStrategy apply when a lineup request
	// names neither.
	DefaultFormation string `koanf:"default_formation"`
	DefaultStrategy  string `koanf:"default_strategy"`

	// GapThreshold is the mean rating below which a role is a coverage gap.
	GapThreshold float64 `koanf:"gap_threshold"`

	// MaxRankingLimit caps GET /rankings?limit.
	MaxRankingLimit int `koanf:"max_ranking_limit"`

	// AutoSave persists the roster on shutdown.
	AutoSave bool `koanf:"auto_save"`

	// SaveInterval is how often the server flushes unsaved votes; 0 turns
	// periodic saving off.
	SaveInterval time.Duration `koanf:"save_interval"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		TeamName:         "Pro Clubs FC",
		RosterPath:       "players_data.json",
		FormationsFile:   "",
		DefaultFormation: "4-3-3 attacking",
		DefaultStrategy:  "overall",
		GapThreshold:     3.0,
		MaxRankingLimit:  100,
		AutoSave:         true,
		SaveInterval:     30 * time.Second,
	}
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.RosterPath) == "":
		return fmt.Errorf("%w: roster_path must not be empty", ErrInvalidConfig)
	case c.GapThreshold <= 0 || c.GapThreshold > 5:
		return fmt.Errorf("%w: gap_threshold must be in (0, 5], got %v", ErrInvalidConfig, c.GapThreshold)
	case c.MaxRankingLimit < 1:
		return fmt.Errorf("%w: max_ranking_limit must be at least 1, got %d", ErrInvalidConfig, c.MaxRankingLimit)
	case c.SaveInterval < 0:
		return fmt.Errorf("%w: save_interval must not be negative, got %s", ErrInvalidConfig, c.SaveInterval)
	}
	if _, err := lineup.ParseStrategy(c.DefaultStrategy); err != nil {
		return fmt.Errorf("%w: default_strategy: %w", ErrInvalidConfig, err)
	}
	return nil
}
