package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-square/models"
	"github.com/MKhiriev/go-square/square"
)

// PaymentsGateway is the part of [square.PaymentsAPI] the checkout and the
// PENDING sweeper use.
type PaymentsGateway interface {
	Create(ctx context.Context, req *square.CreatePaymentRequest) (*square.PaymentResponse, error)
	CancelByIdempotencyKey(ctx context.Context, idempotencyKey string) error
}

// LocationsGateway is satisfied by [square.LocationsAPI].
type LocationsGateway interface {
	List(ctx context.Context) (*square.ListLocationsResponse, error)
}

// CatalogGateway is satisfied by [square.CatalogAPI].
type CatalogGateway interface {
	List(ctx context.Context, params square.ListCatalogParams) (*square.ListCatalogResponse, error)
}

// CheckoutService takes card payments through Square and keeps one ledger
// row per idempotency key.
type CheckoutService interface {
	Charge(ctx context.Context, req models.ChargeRequest) (models.ChargeResult, error)
	GetAttempt(ctx context.Context, key string) (models.PaymentAttempt, error)
	ListAttempts(ctx context.Context, limit uint64) ([]models.PaymentAttempt, error)
}

// CatalogService reads what the checkout page shows: locations and catalog
// objects.
type CatalogService interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	ListCatalog(ctx context.Context, types []models.CatalogObjectType) ([]models.CatalogObject, error)
}

// ReconciliationService closes ledger rows left PENDING by a CreatePayment
// call whose outcome was never recorded.
type ReconciliationService interface {
	// SweepPending cancels, by idempotency key, the payments of attempts
	// PENDING for longer than the configured age and records them as
	// FAILED. It returns how many attempts were closed.
	SweepPending(ctx context.Context) (int, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
