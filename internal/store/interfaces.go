package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-square/models"
)

// PaymentAttemptRepository is the ledger of checkout submissions, keyed by
// the idempotency key sent to Square.
type PaymentAttemptRepository interface {
	// Reserve stores attempt as PENDING. It fails with
	// ErrAttemptAlreadyExists when the key is taken.
	Reserve(ctx context.Context, attempt models.PaymentAttempt) (models.PaymentAttempt, error)

	// Get returns the attempt stored under key or ErrAttemptNotFound.
	Get(ctx context.Context, key string) (models.PaymentAttempt, error)

	// Complete records the outcome of a PENDING attempt.
	Complete(ctx context.Context, key string, outcome Outcome) (models.PaymentAttempt, error)

	// List returns the most recent attempts, newest first.
	List(ctx context.Context, limit uint64) ([]models.PaymentAttempt, error)

	// ListPending returns PENDING attempts created before createdBefore,
	// oldest first.
	ListPending(ctx context.Context, createdBefore time.Time, limit uint64) ([]models.PaymentAttempt, error)
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
