package square

import (
	"context"

	"github.com/MKhiriev/go-square/models"
)

// LocationsAPI manages the seller's business locations.
type LocationsAPI struct {
	c *Client
}

type ListLocationsResponse struct {
	Locations []models.Location `json:"locations"`
}

type LocationResponse struct {
	Location models.Location `json:"location"`
}

// CreateLocationRequest wraps the location to create. Location.Name is
// required.
type CreateLocationRequest struct {
	Location models.Location `json:"location"`
}

func (r *CreateLocationRequest) Validate() error {
	if r.Location.Name == "" {
		return required("location.name")
	}
	return nil
}

// UpdateLocationRequest carries the fields to change. Unset fields are left
// as they are.
type UpdateLocationRequest struct {
	Location models.Location `json:"location"`
}

// List returns every location of the seller.
func (a *LocationsAPI) List(ctx context.Context) (*ListLocationsResponse, error) {
	var out ListLocationsResponse
	if err := a.c.Request(ctx, GET, Endpoint{API: APILocations}, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *LocationsAPI) Create(ctx context.Context, req CreateLocationRequest) (*LocationResponse, error) {
	var out LocationResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APILocations}, &req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *LocationsAPI) Update(ctx context.Context, locationID string, req UpdateLocationRequest) (*LocationResponse, error) {
	path, err := idPath("location_id", locationID, "")
	if err != nil {
		return nil, err
	}

	var out LocationResponse
	if err = a.c.Request(ctx, PUT, Endpoint{API: APILocations, Path: path}, &req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Retrieve returns one location. The id "main" selects the seller's main
// location.
func (a *LocationsAPI) Retrieve(ctx context.Context, locationID string) (*LocationResponse, error) {
	path, err := idPath("location_id", locationID, "")
	if err != nil {
		return nil, err
	}

	var out LocationResponse
	if err = a.c.Request(ctx, GET, Endpoint{API: APILocations, Path: path}, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
