package orders

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Scheduler triggers reconciliation passes on a fixed interval.
type Scheduler struct {
	service  *Service
	interval time.Duration
	logger   *zap.Logger
}

// NewScheduler creates an interval scheduler for the sync service.
func NewScheduler(service *Service, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{service: service, interval: interval, logger: logger}
}

// Run starts the schedule and blocks until the context is cancelled. A tick
// that finds a pass already running is skipped, not queued.
func (s *Scheduler) Run(ctx context.Context) error {
	scheduler := gocron.NewScheduler(time.UTC)

	// Interval jobs fire immediately on start by default; the first pass
	// should wait a full interval so a restart loop cannot hammer the feed.
	_, err := scheduler.Every(s.interval).WaitForSchedule().Do(func() {
		if _, err := s.service.TryRunPass(ctx); err != nil {
			if errors.Is(err, ErrSyncInProgress) {
				s.logger.Info("Skipping scheduled sync, previous pass still running")
				return
			}
			s.logger.Error("Scheduled sync pass failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	s.logger.Info("Sync scheduler started", zap.Duration("interval", s.interval))
	scheduler.StartAsync()

	<-ctx.Done()
	scheduler.Stop()
	s.logger.Info("Sync scheduler stopped")
	return nil
}
