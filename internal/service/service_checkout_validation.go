package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-square/internal/validators"
	"github.com/MKhiriev/go-square/models"
)

// CheckoutServiceWrapper decorates a CheckoutService. It lives outside
// interfaces.go so the generated mocks do not import this package.
type CheckoutServiceWrapper interface {
	Wrap(CheckoutService) CheckoutService
}

// CheckoutValidationService normalizes and validates charge requests before
// they reach the wrapped CheckoutService.
type CheckoutValidationService struct {
	inner             CheckoutService
	validator         validators.Validator
	defaultLocationID string
}

// NewCheckoutValidationService returns a wrapper that fills an empty
// location with defaultLocationID.
func NewCheckoutValidationService(defaultLocationID string) CheckoutServiceWrapper {
	return &CheckoutValidationService{
		validator:         validators.NewCheckoutValidator(),
		defaultLocationID: defaultLocationID,
	}
}

func (v *CheckoutValidationService) Wrap(inner CheckoutService) CheckoutService {
	v.inner = inner
	return v
}

func (v *CheckoutValidationService) Charge(ctx context.Context, req models.ChargeRequest) (models.ChargeResult, error) {
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	req.SourceID = strings.TrimSpace(req.SourceID)
	req.Currency = models.Currency(strings.ToUpper(strings.TrimSpace(string(req.Currency))))
	req.LocationID = strings.TrimSpace(req.LocationID)
	if req.LocationID == "" {
		req.LocationID = v.defaultLocationID
	}

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ChargeResult{}, fmt.Errorf("%w: %w", ErrInvalidCharge, err)
	}

	return v.inner.Charge(ctx, req)
}

func (v *CheckoutValidationService) GetAttempt(ctx context.Context, key string) (models.PaymentAttempt, error) {
	if err := v.validator.Validate(ctx, models.ChargeRequest{IdempotencyKey: key}, validators.FieldIdempotencyKey); err != nil {
		return models.PaymentAttempt{}, fmt.Errorf("%w: %w", ErrInvalidCharge, err)
	}
	return v.inner.GetAttempt(ctx, key)
}

// ListAttempts caps limit at 100; zero means 20.
func (v *CheckoutValidationService) ListAttempts(ctx context.Context, limit uint64) ([]models.PaymentAttempt, error) {
	switch {
	case limit == 0:
		limit = 20
	case limit > 100:
		limit = 100
	}
	return v.inner.ListAttempts(ctx, limit)
}
