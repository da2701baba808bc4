package utils

import "github.com/google/uuid"

// UUIDGenerator produces string identifiers for idempotency keys and trace
// ids. Time-ordered UUIDv7 values are preferred so keys sort by creation.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 if the
// v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
