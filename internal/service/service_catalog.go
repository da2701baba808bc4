package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/MKhiriev/go-square/internal/validators"
	"github.com/MKhiriev/go-square/models"
	"github.com/MKhiriev/go-square/square"
)

type catalogService struct {
	locations LocationsGateway
	catalog   CatalogGateway
	validator validators.Validator

	logger *logger.Logger
}

func NewCatalogService(locations LocationsGateway, catalog CatalogGateway, logger *logger.Logger) CatalogService {
	return &catalogService{
		locations: locations,
		catalog:   catalog,
		validator: validators.NewCheckoutValidator(),
		logger:    logger,
	}
}

func (s *catalogService) ListLocations(ctx context.Context) ([]models.Location, error) {
	resp, err := s.locations.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.ListLocations").Msg("error listing locations")
		return nil, fmt.Errorf("list locations: %w", err)
	}
	if resp.Locations == nil {
		return []models.Location{}, nil
	}
	return resp.Locations, nil
}

// ListCatalog follows catalog cursors until every page of the requested
// types is read.
func (s *catalogService) ListCatalog(ctx context.Context, types []models.CatalogObjectType) ([]models.CatalogObject, error) {
	if err := s.validator.Validate(ctx, types, validators.FieldCatalogTypes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalogFilter, err)
	}

	objects, err := square.CollectAll(ctx, func(ctx context.Context, cursor string) ([]models.CatalogObject, string, error) {
		resp, err := s.catalog.List(ctx, square.ListCatalogParams{Cursor: cursor, Types: types})
		if err != nil {
			return nil, "", err
		}
		return resp.Objects, resp.Cursor, nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.ListCatalog").Msg("error listing catalog")
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	if objects == nil {
		objects = []models.CatalogObject{}
	}
	return objects, nil
}
