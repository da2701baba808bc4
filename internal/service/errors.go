package service

import "errors"

var (
	// ErrInvalidCharge wraps validator errors for a charge request.
	ErrInvalidCharge = errors.New("invalid charge request")

	// ErrInvalidCatalogFilter wraps validator errors for catalog types.
	ErrInvalidCatalogFilter = errors.New("invalid catalog filter")

	// ErrIdempotencyKeyReused is returned when a key is replayed with a
	// different amount, currency, location or card.
	ErrIdempotencyKeyReused = errors.New("idempotency key reused with different parameters")

	// ErrPaymentDeclined is returned when Square rejected the payment. The
	// attempt is recorded as FAILED.
	ErrPaymentDeclined = errors.New("payment declined")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
