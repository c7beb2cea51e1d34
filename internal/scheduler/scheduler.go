package scheduler

import (
	"context"
	"log/slog"
	"time"

	"call_syncer/internal/domain"
)

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sync(ctx context.Context, destination string) ([]domain.SyncStats, error)
}

type Scheduler struct {
	syncer      Syncer
	destination string
	interval    time.Duration
	runTimeout  time.Duration
	logger      *slog.Logger
}

func NewScheduler(syncer Syncer, destination string, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:      syncer,
		destination: destination,
		interval:    interval,
		runTimeout:  runTimeout,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	if _, err := s.syncer.Sync(syncCtx, s.destination); err != nil {
		s.logger.Error("sync failed", "error", err)
	}
}
