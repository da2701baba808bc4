package models

// ChargeRequest is a card payment submitted to the example server's
// checkout endpoint.
type ChargeRequest struct {
	// IdempotencyKey identifies the submission. A fresh key is generated
	// when empty; browsers resend the same key when retrying.
	IdempotencyKey string `json:"idempotency_key,omitempty"`

	// SourceID is the card nonce produced by the Web Payments SDK.
	SourceID string `json:"source_id"`

	// VerificationToken is the buyer verification (SCA) token, if any.
	VerificationToken string `json:"verification_token,omitempty"`

	Amount     int64    `json:"amount"`
	Currency   Currency `json:"currency"`
	LocationID string   `json:"location_id,omitempty"`

	BuyerEmailAddress string `json:"buyer_email_address,omitempty"`
	Note              string `json:"note,omitempty"`
}

// ChargeResult is the answer of the checkout endpoint.
type ChargeResult struct {
	Attempt PaymentAttempt `json:"attempt"`

	// Payment is nil when the result was served from the ledger.
	Payment *Payment `json:"payment,omitempty"`

	// Replayed is true when the key had already completed and Square was
	// not called again.
	Replayed bool `json:"replayed"`
}
