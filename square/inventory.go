package square

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-square/models"
)

// InventoryAPI reads and changes stock levels of catalog variations.
type InventoryAPI struct {
	c *Client
}

type InventoryAdjustmentResponse struct {
	Adjustment models.InventoryAdjustment `json:"adjustment"`
}

type InventoryPhysicalCountResponse struct {
	Count models.InventoryPhysicalCount `json:"count"`
}

type InventoryTransferResponse struct {
	Transfer models.InventoryTransfer `json:"transfer"`
}

type InventoryCountsResponse struct {
	Counts []models.InventoryCount `json:"counts"`
	Cursor string                  `json:"cursor,omitempty"`
}

type InventoryChangesResponse struct {
	Changes []models.InventoryChange `json:"changes"`
	Cursor  string                   `json:"cursor,omitempty"`
}

// BatchChangeInventoryRequest applies up to 100 changes atomically.
type BatchChangeInventoryRequest struct {
	IdempotencyKey        string                   `json:"idempotency_key"`
	Changes               []models.InventoryChange `json:"changes"`
	IgnoreUnchangedCounts *bool                    `json:"ignore_unchanged_counts,omitempty"`
}

func (r *BatchChangeInventoryRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

func (r *BatchChangeInventoryRequest) Validate() error {
	if len(r.Changes) == 0 {
		return required("changes")
	}
	return nil
}

type BatchChangeInventoryResponse struct {
	Counts  []models.InventoryCount  `json:"counts,omitempty"`
	Changes []models.InventoryChange `json:"changes,omitempty"`
}

type BatchRetrieveInventoryChangesRequest struct {
	CatalogObjectIDs []string                     `json:"catalog_object_ids,omitempty"`
	LocationIDs      []string                     `json:"location_ids,omitempty"`
	Types            []models.InventoryChangeType `json:"types,omitempty"`
	States           []models.InventoryState      `json:"states,omitempty"`
	UpdatedAfter     string                       `json:"updated_after,omitempty"`
	UpdatedBefore    string                       `json:"updated_before,omitempty"`
	Cursor           string                       `json:"cursor,omitempty"`
	Limit            int                          `json:"limit,omitempty"`
}

type BatchRetrieveInventoryCountsRequest struct {
	CatalogObjectIDs []string                `json:"catalog_object_ids,omitempty"`
	LocationIDs      []string                `json:"location_ids,omitempty"`
	UpdatedAfter     string                  `json:"updated_after,omitempty"`
	Cursor           string                  `json:"cursor,omitempty"`
	States           []models.InventoryState `json:"states,omitempty"`
	Limit            int                     `json:"limit,omitempty"`
}

func (a *InventoryAPI) RetrieveAdjustment(ctx context.Context, adjustmentID string) (*InventoryAdjustmentResponse, error) {
	var out InventoryAdjustmentResponse
	if err := a.get(ctx, "/adjustments", "adjustment_id", adjustmentID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *InventoryAPI) BatchChange(ctx context.Context, req *BatchChangeInventoryRequest) (*BatchChangeInventoryResponse, error) {
	if req == nil {
		return nil, required("request")
	}

	var out BatchChangeInventoryResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APIInventory, Path: "/changes/batch-create"}, req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *InventoryAPI) BatchRetrieveChanges(ctx context.Context, req BatchRetrieveInventoryChangesRequest) (*InventoryChangesResponse, error) {
	var out InventoryChangesResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APIInventory, Path: "/changes/batch-retrieve"}, &req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *InventoryAPI) BatchRetrieveCounts(ctx context.Context, req BatchRetrieveInventoryCountsRequest) (*InventoryCountsResponse, error) {
	var out InventoryCountsResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APIInventory, Path: "/counts/batch-retrieve"}, &req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *InventoryAPI) RetrievePhysicalCount(ctx context.Context, physicalCountID string) (*InventoryPhysicalCountResponse, error) {
	var out InventoryPhysicalCountResponse
	if err := a.get(ctx, "/physical-counts", "physical_count_id", physicalCountID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *InventoryAPI) RetrieveTransfer(ctx context.Context, transferID string) (*InventoryTransferResponse, error) {
	var out InventoryTransferResponse
	if err := a.get(ctx, "/transfers", "transfer_id", transferID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RetrieveCount returns the current counts of one catalog object, optionally
// limited to locationIDs.
func (a *InventoryAPI) RetrieveCount(ctx context.Context, catalogObjectID string, locationIDs []string, cursor string) (*InventoryCountsResponse, error) {
	q := url.Values{}
	if len(locationIDs) > 0 {
		q.Set("location_ids", strings.Join(locationIDs, ","))
	}
	setQuery(q, "cursor", cursor)

	var out InventoryCountsResponse
	if err := a.get(ctx, "", "catalog_object_id", catalogObjectID, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *InventoryAPI) get(ctx context.Context, prefix, field, id string, q url.Values, out any) error {
	path, err := idPath(field, id, "")
	if err != nil {
		return err
	}
	return a.c.Request(ctx, GET, Endpoint{API: APIInventory, Path: prefix + path}, nil, q, out)
}
