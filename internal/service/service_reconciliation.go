package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/MKhiriev/go-square/internal/store"
)

const (
	// codeStalePending is recorded for attempts closed by the sweeper.
	codeStalePending = "CANCELED_STALE_PENDING"

	sweepBatchSize = 50
)

type reconciliationService struct {
	payments PaymentsGateway
	attempts store.PaymentAttemptRepository
	maxAge   time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewReconciliationService(payments PaymentsGateway, attempts store.PaymentAttemptRepository, maxAge time.Duration, logger *logger.Logger) ReconciliationService {
	return &reconciliationService{
		payments: payments,
		attempts: attempts,
		maxAge:   maxAge,
		now:      time.Now,
		logger:   logger,
	}
}

// SweepPending handles one batch per call. An attempt whose cancel is
// rejected by Square (for example because the payment already completed)
// stays PENDING and is retried on the next sweep.
func (s *reconciliationService) SweepPending(ctx context.Context) (int, error) {
	log := s.logger.With().Str("func", "*reconciliationService.SweepPending").Logger()

	stale, err := s.attempts.ListPending(ctx, s.now().Add(-s.maxAge), sweepBatchSize)
	if err != nil {
		return 0, err
	}

	var (
		closed int
		errs   []error
	)
	for _, attempt := range stale {
		if err = ctx.Err(); err != nil {
			return closed, err
		}

		key := attempt.IdempotencyKey
		if err = s.payments.CancelByIdempotencyKey(ctx, key); err != nil {
			log.Warn().Err(err).Str("idempotency_key", key).Msg("cancel by idempotency key failed")
			errs = append(errs, err)
			continue
		}

		_, err = s.attempts.Complete(ctx, key, store.Failed(codeStalePending))
		switch {
		case errors.Is(err, store.ErrAttemptNotPending):
			// a replay recorded the outcome meanwhile
			log.Info().Str("idempotency_key", key).Msg("attempt completed concurrently")
		case err != nil:
			errs = append(errs, err)
		default:
			closed++
			log.Info().
				Str("idempotency_key", key).
				Time("created_at", attempt.CreatedAt).
				Msg("stale pending attempt canceled")
		}
	}

	return closed, errors.Join(errs...)
}
