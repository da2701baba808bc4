// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/MKhiriev/go-square/internal/service"
)

// Periodic runs job every interval until the context is canceled. A failed
// run is logged and does not stop the worker.
type Periodic struct {
	name     string
	interval time.Duration
	job      func(ctx context.Context) error

	logger *logger.Logger
}

func NewPeriodic(name string, interval time.Duration, job func(ctx context.Context) error, logger *logger.Logger) *Periodic {
	return &Periodic{
		name:     name,
		interval: interval,
		job:      job,
		logger:   logger,
	}
}

// NewPendingSweeper closes stale PENDING ledger rows every interval.
func NewPendingSweeper(svc service.ReconciliationService, interval time.Duration, logger *logger.Logger) *Periodic {
	return NewPeriodic("pending-sweeper", interval, func(ctx context.Context) error {
		closed, err := svc.SweepPending(ctx)
		if closed > 0 {
			logger.Info().Int("closed", closed).Msg("stale pending attempts closed")
		}
		return err
	}, logger)
}

func (p *Periodic) Run(ctx context.Context) {
	log := p.logger.With().Str("worker", p.name).Logger()
	log.Info().Dur("interval", p.interval).Msg("worker started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("worker stopped")
			return
		case <-ticker.C:
			if err := p.job(ctx); err != nil && ctx.Err() == nil {
				log.Error().Err(err).Msg("worker run failed")
			}
		}
	}
}
