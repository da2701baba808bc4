package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/MKhiriev/go-square/internal/store"
	"github.com/MKhiriev/go-square/models"
	"github.com/MKhiriev/go-square/square"
)

// codeValidation is recorded for charges the square client refused to send.
const codeValidation = "CLIENT_VALIDATION_ERROR"

type checkoutService struct {
	payments PaymentsGateway
	attempts store.PaymentAttemptRepository
	newKey   square.IdempotencyKeyFunc

	logger *logger.Logger
}

func NewCheckoutService(payments PaymentsGateway, attempts store.PaymentAttemptRepository, logger *logger.Logger) CheckoutService {
	return &checkoutService{
		payments: payments,
		attempts: attempts,
		newKey:   square.NewIdempotencyKey,
		logger:   logger,
	}
}

// Charge reserves the idempotency key in the ledger, then creates the
// payment. A key that already completed is answered from the ledger. A key
// still PENDING is sent again with the same key, which Square deduplicates.
func (s *checkoutService) Charge(ctx context.Context, req models.ChargeRequest) (models.ChargeResult, error) {
	log := logger.FromContext(ctx)

	if req.IdempotencyKey == "" {
		req.IdempotencyKey = s.newKey()
	}

	attempt, err := s.attempts.Reserve(ctx, models.PaymentAttempt{
		IdempotencyKey:    req.IdempotencyKey,
		LocationID:        req.LocationID,
		Amount:            req.Amount,
		Currency:          req.Currency,
		SourceFingerprint: fingerprint(req.SourceID),
	})
	switch {
	case errors.Is(err, store.ErrAttemptAlreadyExists):
		stored, replay, err := s.replay(ctx, req)
		if replay || err != nil {
			return stored, err
		}
		log.Info().
			Str("func", "*checkoutService.Charge").
			Str("idempotency_key", req.IdempotencyKey).
			Msg("re-sending pending payment attempt")
		attempt = stored.Attempt
	case err != nil:
		log.Err(err).Str("func", "*checkoutService.Charge").Msg("error reserving payment attempt")
		return models.ChargeResult{}, fmt.Errorf("reserve payment attempt: %w", err)
	}

	resp, err := s.payments.Create(ctx, &square.CreatePaymentRequest{
		SourceID:          req.SourceID,
		IdempotencyKey:    req.IdempotencyKey,
		AmountMoney:       models.NewMoney(req.Amount, req.Currency),
		LocationID:        req.LocationID,
		VerificationToken: req.VerificationToken,
		BuyerEmailAddress: req.BuyerEmailAddress,
		Note:              req.Note,
	})
	if err != nil {
		return s.recordFailure(ctx, attempt, err)
	}

	done, err := s.attempts.Complete(ctx, attempt.IdempotencyKey, store.Succeeded(resp.Payment.ID))
	switch {
	case errors.Is(err, store.ErrAttemptNotPending):
		// a concurrent request with the same key finished first
	case err != nil:
		// the payment exists; a replay of the key re-sends and Square
		// answers with the same payment
		log.Err(err).
			Str("func", "*checkoutService.Charge").
			Str("idempotency_key", attempt.IdempotencyKey).
			Str("payment_id", resp.Payment.ID).
			Msg("payment created but ledger update failed")
		done = attempt
	}

	log.Info().
		Str("func", "*checkoutService.Charge").
		Str("idempotency_key", attempt.IdempotencyKey).
		Str("payment_id", resp.Payment.ID).
		Str("status", string(resp.Payment.Status)).
		Msg("payment created")

	return models.ChargeResult{Attempt: done, Payment: &resp.Payment}, nil
}

// replay resolves a key that is already in the ledger. It reports
// replay=true when the stored outcome answers the request.
func (s *checkoutService) replay(ctx context.Context, req models.ChargeRequest) (models.ChargeResult, bool, error) {
	stored, err := s.attempts.Get(ctx, req.IdempotencyKey)
	if err != nil {
		return models.ChargeResult{}, false, fmt.Errorf("load payment attempt: %w", err)
	}

	if stored.Amount != req.Amount ||
		stored.Currency != req.Currency ||
		stored.LocationID != req.LocationID ||
		stored.SourceFingerprint != fingerprint(req.SourceID) {
		return models.ChargeResult{}, false, ErrIdempotencyKeyReused
	}

	result := models.ChargeResult{Attempt: stored, Replayed: true}
	switch stored.Status {
	case models.AttemptSucceeded:
		return result, true, nil
	case models.AttemptFailed:
		return result, true, fmt.Errorf("%w: %s", ErrPaymentDeclined, stored.ErrorCode)
	default:
		return models.ChargeResult{Attempt: stored}, false, nil
	}
}

// recordFailure marks the attempt FAILED when Square's answer is final.
// Transport errors, throttling and server errors leave it PENDING so the
// key can be sent again.
func (s *checkoutService) recordFailure(ctx context.Context, attempt models.PaymentAttempt, cause error) (models.ChargeResult, error) {
	log := logger.FromContext(ctx)

	var (
		code    string
		wrapped error
	)
	switch {
	case errors.Is(cause, square.ErrValidation):
		code, wrapped = codeValidation, fmt.Errorf("%w: %w", ErrInvalidCharge, cause)
	case errors.Is(cause, square.ErrBadRequest), errors.Is(cause, square.ErrPaymentRequired):
		code, wrapped = squareErrorCode(cause), fmt.Errorf("%w: %w", ErrPaymentDeclined, cause)
	default:
		log.Warn().Err(cause).
			Str("func", "*checkoutService.recordFailure").
			Str("idempotency_key", attempt.IdempotencyKey).
			Msg("payment outcome unknown, attempt left pending")
		return models.ChargeResult{Attempt: attempt}, fmt.Errorf("create payment: %w", cause)
	}

	failed, err := s.attempts.Complete(ctx, attempt.IdempotencyKey, store.Failed(code))
	if err != nil && !errors.Is(err, store.ErrAttemptNotPending) {
		log.Err(err).
			Str("func", "*checkoutService.recordFailure").
			Str("idempotency_key", attempt.IdempotencyKey).
			Msg("error recording failed payment attempt")
		failed = attempt
	}

	return models.ChargeResult{Attempt: failed}, wrapped
}

func (s *checkoutService) GetAttempt(ctx context.Context, key string) (models.PaymentAttempt, error) {
	return s.attempts.Get(ctx, key)
}

func (s *checkoutService) ListAttempts(ctx context.Context, limit uint64) ([]models.PaymentAttempt, error) {
	return s.attempts.List(ctx, limit)
}

// squareErrorCode returns the first code of a Square error response.
func squareErrorCode(err error) string {
	var apiErr *square.APIError
	if errors.As(err, &apiErr) && len(apiErr.Errors) > 0 {
		return apiErr.Errors[0].Code
	}
	return "UNKNOWN"
}

// fingerprint identifies a payment source without storing the nonce.
func fingerprint(sourceID string) string {
	sum := sha256.Sum256([]byte(sourceID))
	return hex.EncodeToString(sum[:])
}
