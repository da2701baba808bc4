package square

import "github.com/MKhiriev/go-square/internal/utils"

// IdempotencyKeyFunc returns a fresh idempotency key.
type IdempotencyKeyFunc func() string

// NewIdempotencyKey returns a random UUID (v7 when available, v4 otherwise).
func NewIdempotencyKey() string {
	return utils.NewUUIDGenerator().Generate()
}

// idempotent is implemented by request bodies carrying an idempotency_key.
type idempotent interface {
	idempotencyKeyRef() *string
}

type validator interface {
	Validate() error
}

// ensureIdempotencyKey fills an empty key in place. The caller sees the key
// on its request value after the call.
func (c *Client) ensureIdempotencyKey(body any) {
	k, ok := body.(idempotent)
	if !ok {
		return
	}
	if ref := k.idempotencyKeyRef(); *ref == "" {
		*ref = c.newKey()
	}
}
