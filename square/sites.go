package square

import (
	"context"

	"github.com/MKhiriev/go-square/models"
)

// SitesAPI lists the seller's Square Online sites.
type SitesAPI struct {
	c *Client
}

type ListSitesResponse struct {
	Sites []models.Site `json:"sites"`
}

func (a *SitesAPI) List(ctx context.Context) (*ListSitesResponse, error) {
	var out ListSitesResponse
	if err := a.c.Request(ctx, GET, Endpoint{API: APISites}, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
