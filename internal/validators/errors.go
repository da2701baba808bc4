package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidIdempotencyKey = errors.New("idempotency key must be at most 45 characters")
	ErrEmptySourceID         = errors.New("source_id is required")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrInvalidCurrency       = errors.New("currency must be a three-letter ISO 4217 code")
	ErrEmptyLocationID       = errors.New("location_id is required")
	ErrInvalidCatalogType    = errors.New("unknown catalog object type")
)
