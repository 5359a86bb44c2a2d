package cronjob

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/empire/probe"
)

// Scheduler refreshes the MusicJam probe cache on a cron spec.
type Scheduler struct {
	prober *probe.Prober
	spec   string
	logger zerolog.Logger
	cron   *cron.Cron
}

func NewScheduler(prober *probe.Prober, spec string, logger zerolog.Logger) *Scheduler {
	return &Scheduler{prober: prober, spec: spec, logger: logger}
}

// Start registers the refresh job and starts the cron loop. The spec uses
// six fields, seconds first.
func (s *Scheduler) Start() error {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result := s.prober.Refresh(ctx)
		s.logger.Debug().Str("status", result.Status).Msg("musicjam probe refreshed")
	})
	if err != nil {
		return fmt.Errorf("failed to schedule probe refresh: %w", err)
	}

	c.Start()
	s.cron = c
	s.logger.Info().Str("spec", s.spec).Msg("probe scheduler started")
	return nil
}

// Stop halts the cron loop. Safe to call on a scheduler that never started.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
