package models

import "time"

// AttemptStatus is the state of a PaymentAttempt in the example server's
// ledger.
type AttemptStatus string

const (
	// AttemptPending means the key is reserved and Square has not confirmed
	// the payment yet. Replays re-send the request with the same key.
	AttemptPending AttemptStatus = "PENDING"

	// AttemptSucceeded means Square returned a payment. Replays are answered
	// from the ledger.
	AttemptSucceeded AttemptStatus = "SUCCEEDED"

	// AttemptFailed means Square rejected the payment with a client error.
	AttemptFailed AttemptStatus = "FAILED"
)

// PaymentAttempt is one checkout submission of the example server, keyed by
// the idempotency key sent to Square.
type PaymentAttempt struct {
	// IdempotencyKey is the key passed to Square's CreatePayment.
	IdempotencyKey string `json:"idempotency_key"`

	LocationID string   `json:"location_id"`
	Amount     int64    `json:"amount"`
	Currency   Currency `json:"currency"`

	// SourceFingerprint is a SHA-256 of the payment source id. The raw card
	// nonce is single use and is never stored.
	SourceFingerprint string `json:"-"`

	Status    AttemptStatus `json:"status"`
	PaymentID string        `json:"payment_id,omitempty"`
	ErrorCode string        `json:"error_code,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the PaymentAttempt model.
func (p PaymentAttempt) TableName() string {
	return "payment_attempts"
}
