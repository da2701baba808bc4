package store

import "github.com/MKhiriev/go-square/internal/logger"

// Repositories groups the repositories the example server depends on.
type Repositories struct {
	PaymentAttempts PaymentAttemptRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		PaymentAttempts: NewPaymentAttemptRepository(db, log),
	}
}
