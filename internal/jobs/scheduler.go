package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs the batch jobs on fixed intervals until the context is
// cancelled. Each tick is independent; a failing run is logged and the next
// tick proceeds.
type Scheduler struct {
	heartbeat *Heartbeat
	reminders *OrderReminders
	hbEvery   time.Duration
	remEvery  time.Duration
	log       *zap.SugaredLogger
}

func NewScheduler(hb *Heartbeat, rem *OrderReminders, hbEvery, remEvery time.Duration, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		heartbeat: hb,
		reminders: rem,
		hbEvery:   hbEvery,
		remEvery:  remEvery,
		log:       log.With("component", "scheduler"),
	}
}

func (s *Scheduler) Run(ctx context.Context) error {
	s.runOnce(ctx)

	hbTicker := time.NewTicker(s.hbEvery)
	defer hbTicker.Stop()
	remTicker := time.NewTicker(s.remEvery)
	defer remTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Infow("scheduler stopping")
			return ctx.Err()
		case <-hbTicker.C:
			if err := s.heartbeat.Run(ctx); err != nil {
				s.log.Errorw("heartbeat run failed", "error", err)
			}
		case <-remTicker.C:
			if err := s.reminders.Run(ctx); err != nil {
				s.log.Errorw("reminder run failed", "error", err)
			}
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if err := s.heartbeat.Run(ctx); err != nil {
		s.log.Errorw("heartbeat run failed", "error", err)
	}
	if err := s.reminders.Run(ctx); err != nil {
		s.log.Errorw("reminder run failed", "error", err)
	}
}
