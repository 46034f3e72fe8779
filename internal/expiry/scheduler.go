package expiry

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs the expiry job on a fixed interval as an in-process
// alternative to an external cron caller.
type Scheduler struct {
	job      jobRunner
	interval time.Duration
	logger   *zap.Logger
}

// NewScheduler creates a new expiry scheduler
func NewScheduler(job jobRunner, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{job: job, interval: interval, logger: logger}
}

// Start runs the job immediately and then on every tick until the context
// is cancelled. Job failures are logged and the loop keeps going.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("expiry scheduler started", zap.Duration("interval", s.interval))

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry scheduler stopped")
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if _, err := s.job.Run(ctx, time.Now()); err != nil {
		s.logger.Error("scheduled expiry check failed", zap.Error(err))
	}
}
