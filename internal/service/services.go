package service

import (
	"github.com/MKhiriev/go-square/internal/config"
	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/MKhiriev/go-square/internal/store"
	"github.com/MKhiriev/go-square/models"
	"github.com/MKhiriev/go-square/square"
)

type Services struct {
	CheckoutService       CheckoutService
	CatalogService        CatalogService
	ReconciliationService ReconciliationService
	AppInfoService        AppInfoService
}

func NewServices(client *square.Client, repositories *store.Repositories, cfg config.StructuredConfig, info models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, err
	}

	checkout := NewCheckoutService(client.Payments(), repositories.PaymentAttempts, logger)

	return &Services{
		CheckoutService:       NewCheckoutValidationService(cfg.Square.LocationID).Wrap(checkout),
		CatalogService:        NewCatalogService(client.Locations(), client.Catalog(), logger),
		ReconciliationService: NewReconciliationService(client.Payments(), repositories.PaymentAttempts, cfg.Workers.PendingMaxAge, logger),
		AppInfoService:        appInfo,
	}, nil
}
