// Package worker runs background jobs next to the HTTP server. Saver
// periodically persists roster changes that have not been saved yet.
package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/lineup/pkg/logger"
)

const defaultInterval = 30 * time.Second

// Flusher persists pending changes. saved reports whether anything was
// written.
type Flusher interface {
	Flush(ctx context.Context) (saved bool, err error)
}

// Worker is a background loop with graceful shutdown.
type Worker interface {
	// Run starts the worker loop until ctx is canceled or Shutdown is called.
	Run(ctx context.Context)

	// Shutdown stops the worker and waits for the current flush to finish.
	Shutdown(ctx context.Context) error
}

// Saver flushes a Flusher on a fixed interval.
type Saver struct {
	flusher  Flusher
	interval time.Duration
	name     string

	// Shutdown control
	stopOnce sync.Once
	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

var _ Worker = (*Saver)(nil)

// NewSaver creates a saver for f.
func NewSaver(f Flusher, opts ...Option) *Saver {
	s := &Saver{
		flusher:  f,
		interval: defaultInterval,
		name:     "saver",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named(s.name)
	}
	return s
}

// Interval returns the flush period.
func (s *Saver) Interval() time.Duration { return s.interval }

// Run starts the flush loop.
func (s *Saver) Run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.shutdown:
			return
		case <-ticker.C:
			s.flush(ctx)
		}
	}
}

// Shutdown gracefully stops the saver.
func (s *Saver) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.shutdown) })

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		s.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

func (s *Saver) flush(ctx context.Context) {
	saved, err := s.flusher.Flush(ctx)
	if err != nil {
		s.logger.Error(ctx, "periodic save failed", logger.Error(err))
		return
	}
	if saved {
		s.logger.Debug(ctx, "periodic save complete")
	}
}
