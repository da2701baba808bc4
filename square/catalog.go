package square

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-square/models"
)

// CatalogAPI manages items, variations, categories, taxes, discounts and
// images.
type CatalogAPI struct {
	c *Client
}

type ListCatalogParams struct {
	Cursor         string
	Types          []models.CatalogObjectType
	CatalogVersion int64
}

func (p ListCatalogParams) query() url.Values {
	q := url.Values{}
	setQuery(q, "cursor", p.Cursor)
	if len(p.Types) > 0 {
		types := make([]string, len(p.Types))
		for i, t := range p.Types {
			types[i] = string(t)
		}
		q.Set("types", strings.Join(types, ","))
	}
	if p.CatalogVersion > 0 {
		q.Set("catalog_version", strconv.FormatInt(p.CatalogVersion, 10))
	}
	return q
}

type ListCatalogResponse struct {
	Objects []models.CatalogObject `json:"objects"`
	Cursor  string                 `json:"cursor,omitempty"`
}

// UpsertCatalogObjectRequest creates or updates one object. New objects use
// a temporary id starting with "#".
type UpsertCatalogObjectRequest struct {
	IdempotencyKey string                `json:"idempotency_key"`
	Object         *models.CatalogObject `json:"object"`
}

func (r *UpsertCatalogObjectRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

func (r *UpsertCatalogObjectRequest) Validate() error {
	if r.Object == nil {
		return required("object")
	}
	if r.Object.Type == "" {
		return required("object.type")
	}
	if r.Object.ID == "" {
		return required("object.id")
	}
	return nil
}

type UpsertCatalogObjectResponse struct {
	CatalogObject models.CatalogObject      `json:"catalog_object"`
	IDMappings    []models.CatalogIDMapping `json:"id_mappings,omitempty"`
}

type RetrieveCatalogObjectResponse struct {
	Object         models.CatalogObject   `json:"object"`
	RelatedObjects []models.CatalogObject `json:"related_objects,omitempty"`
}

type DeleteCatalogObjectsResponse struct {
	DeletedObjectIDs []string `json:"deleted_object_ids"`
	DeletedAt        string   `json:"deleted_at,omitempty"`
}

type BatchUpsertCatalogObjectsRequest struct {
	IdempotencyKey string                      `json:"idempotency_key"`
	Batches        []models.CatalogObjectBatch `json:"batches"`
}

func (r *BatchUpsertCatalogObjectsRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

func (r *BatchUpsertCatalogObjectsRequest) Validate() error {
	if len(r.Batches) == 0 {
		return required("batches")
	}
	return nil
}

type BatchUpsertCatalogObjectsResponse struct {
	Objects    []models.CatalogObject    `json:"objects"`
	UpdatedAt  string                    `json:"updated_at,omitempty"`
	IDMappings []models.CatalogIDMapping `json:"id_mappings,omitempty"`
}

type BatchRetrieveCatalogObjectsRequest struct {
	ObjectIDs             []string `json:"object_ids"`
	IncludeRelatedObjects bool     `json:"include_related_objects,omitempty"`
	CatalogVersion        int64    `json:"catalog_version,omitempty"`
}

func (r *BatchRetrieveCatalogObjectsRequest) Validate() error {
	if len(r.ObjectIDs) == 0 {
		return required("object_ids")
	}
	return nil
}

type BatchRetrieveCatalogObjectsResponse struct {
	Objects        []models.CatalogObject `json:"objects"`
	RelatedObjects []models.CatalogObject `json:"related_objects,omitempty"`
}

type batchDeleteCatalogObjectsRequest struct {
	ObjectIDs []string `json:"object_ids"`
}

func (r *batchDeleteCatalogObjectsRequest) Validate() error {
	if len(r.ObjectIDs) == 0 {
		return required("object_ids")
	}
	return nil
}

type SearchCatalogObjectsRequest struct {
	Cursor                string                     `json:"cursor,omitempty"`
	ObjectTypes           []models.CatalogObjectType `json:"object_types,omitempty"`
	IncludeDeletedObjects bool                       `json:"include_deleted_objects,omitempty"`
	IncludeRelatedObjects bool                       `json:"include_related_objects,omitempty"`
	BeginTime             string                     `json:"begin_time,omitempty"`
	Query                 *models.CatalogQuery       `json:"query,omitempty"`
	Limit                 int                        `json:"limit,omitempty"`
}

type SearchCatalogObjectsResponse struct {
	Objects        []models.CatalogObject `json:"objects"`
	RelatedObjects []models.CatalogObject `json:"related_objects,omitempty"`
	Cursor         string                 `json:"cursor,omitempty"`
	LatestTime     string                 `json:"latest_time,omitempty"`
}

type SearchCatalogItemsRequest struct {
	TextFilter         string           `json:"text_filter,omitempty"`
	CategoryIDs        []string         `json:"category_ids,omitempty"`
	StockLevels        []string         `json:"stock_levels,omitempty"`
	EnabledLocationIDs []string         `json:"enabled_location_ids,omitempty"`
	Cursor             string           `json:"cursor,omitempty"`
	Limit              int              `json:"limit,omitempty"`
	SortOrder          models.SortOrder `json:"sort_order,omitempty"`
	ProductTypes       []string         `json:"product_types,omitempty"`
}

type SearchCatalogItemsResponse struct {
	Items               []models.CatalogObject `json:"items"`
	Cursor              string                 `json:"cursor,omitempty"`
	MatchedVariationIDs []string               `json:"matched_variation_ids,omitempty"`
}

type CatalogInfoResponse struct {
	Limits models.CatalogInfoLimits `json:"limits"`
}

func (a *CatalogAPI) List(ctx context.Context, params ListCatalogParams) (*ListCatalogResponse, error) {
	var out ListCatalogResponse
	if err := a.c.Request(ctx, GET, Endpoint{API: APICatalog, Path: "/list"}, nil, params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CatalogAPI) Iterate(params ListCatalogParams) *Iterator[models.CatalogObject] {
	return PaginateFrom(params.Cursor, func(ctx context.Context, cursor string) ([]models.CatalogObject, string, error) {
		params.Cursor = cursor
		resp, err := a.List(ctx, params)
		if err != nil {
			return nil, "", err
		}
		return resp.Objects, resp.Cursor, nil
	})
}

func (a *CatalogAPI) Upsert(ctx context.Context, req *UpsertCatalogObjectRequest) (*UpsertCatalogObjectResponse, error) {
	if req == nil {
		return nil, required("request")
	}

	var out UpsertCatalogObjectResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APICatalog, Path: "/object"}, req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CatalogAPI) Retrieve(ctx context.Context, objectID string, includeRelated bool) (*RetrieveCatalogObjectResponse, error) {
	path, err := idPath("object_id", objectID, "")
	if err != nil {
		return nil, err
	}

	var q url.Values
	if includeRelated {
		q = url.Values{"include_related_objects": {"true"}}
	}

	var out RetrieveCatalogObjectResponse
	if err = a.c.Request(ctx, GET, Endpoint{API: APICatalog, Path: "/object" + path}, nil, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the object and its children, e.g. an item's variations.
func (a *CatalogAPI) Delete(ctx context.Context, objectID string) (*DeleteCatalogObjectsResponse, error) {
	path, err := idPath("object_id", objectID, "")
	if err != nil {
		return nil, err
	}

	var out DeleteCatalogObjectsResponse
	if err = a.c.Request(ctx, DELETE, Endpoint{API: APICatalog, Path: "/object" + path}, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CatalogAPI) BatchUpsert(ctx context.Context, req *BatchUpsertCatalogObjectsRequest) (*BatchUpsertCatalogObjectsResponse, error) {
	if req == nil {
		return nil, required("request")
	}

	var out BatchUpsertCatalogObjectsResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APICatalog, Path: "/batch-upsert"}, req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CatalogAPI) BatchRetrieve(ctx context.Context, req BatchRetrieveCatalogObjectsRequest) (*BatchRetrieveCatalogObjectsResponse, error) {
	var out BatchRetrieveCatalogObjectsResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APICatalog, Path: "/batch-retrieve"}, &req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CatalogAPI) BatchDelete(ctx context.Context, objectIDs []string) (*DeleteCatalogObjectsResponse, error) {
	req := &batchDeleteCatalogObjectsRequest{ObjectIDs: objectIDs}

	var out DeleteCatalogObjectsResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APICatalog, Path: "/batch-delete"}, req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CatalogAPI) Search(ctx context.Context, req SearchCatalogObjectsRequest) (*SearchCatalogObjectsResponse, error) {
	var out SearchCatalogObjectsResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APICatalog, Path: "/search"}, &req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CatalogAPI) SearchItems(ctx context.Context, req SearchCatalogItemsRequest) (*SearchCatalogItemsResponse, error) {
	var out SearchCatalogItemsResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APICatalog, Path: "/search-catalog-items"}, &req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Info returns the batch size limits of the catalog endpoints.
func (a *CatalogAPI) Info(ctx context.Context) (*CatalogInfoResponse, error) {
	var out CatalogInfoResponse
	if err := a.c.Request(ctx, GET, Endpoint{API: APICatalog, Path: "/info"}, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
