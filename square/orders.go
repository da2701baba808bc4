package square

import (
	"context"

	"github.com/MKhiriev/go-square/models"
)

// OrdersAPI creates, prices and pays for itemized orders.
type OrdersAPI struct {
	c *Client
}

type OrderResponse struct {
	Order models.Order `json:"order"`
}

type OrdersResponse struct {
	Orders []models.Order `json:"orders"`
}

type CreateOrderRequest struct {
	Order          *models.Order `json:"order"`
	IdempotencyKey string        `json:"idempotency_key"`
}

func (r *CreateOrderRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

func (r *CreateOrderRequest) Validate() error {
	if r.Order == nil {
		return required("order")
	}
	if r.Order.LocationID == "" {
		return required("order.location_id")
	}
	return nil
}

type BatchRetrieveOrdersRequest struct {
	LocationID string   `json:"location_id,omitempty"`
	OrderIDs   []string `json:"order_ids"`
}

func (r *BatchRetrieveOrdersRequest) Validate() error {
	if len(r.OrderIDs) == 0 {
		return required("order_ids")
	}
	return nil
}

// CalculateOrderRequest previews totals without creating the order.
type CalculateOrderRequest struct {
	Order models.Order `json:"order"`
}

type CloneOrderRequest struct {
	OrderID        string `json:"order_id"`
	Version        int64  `json:"version,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

func (r *CloneOrderRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

func (r *CloneOrderRequest) Validate() error {
	if r.OrderID == "" {
		return required("order_id")
	}
	return nil
}

type SearchOrdersRequest struct {
	LocationIDs   []string                  `json:"location_ids"`
	Cursor        string                    `json:"cursor,omitempty"`
	Query         *models.SearchOrdersQuery `json:"query,omitempty"`
	Limit         int                       `json:"limit,omitempty"`
	ReturnEntries bool                      `json:"return_entries,omitempty"`
}

func (r *SearchOrdersRequest) Validate() error {
	if len(r.LocationIDs) == 0 {
		return required("location_ids")
	}
	return nil
}

type SearchOrdersResponse struct {
	Orders []models.Order `json:"orders"`
	Cursor string         `json:"cursor,omitempty"`
}

// UpdateOrderRequest is a sparse update: Order carries only the changed
// fields plus its Version; FieldsToClear names fields to remove.
type UpdateOrderRequest struct {
	Order          *models.Order `json:"order,omitempty"`
	FieldsToClear  []string      `json:"fields_to_clear,omitempty"`
	IdempotencyKey string        `json:"idempotency_key,omitempty"`
}

func (r *UpdateOrderRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

// PayOrderRequest settles an order with APPROVED payments.
type PayOrderRequest struct {
	IdempotencyKey string   `json:"idempotency_key"`
	OrderVersion   int64    `json:"order_version,omitempty"`
	PaymentIDs     []string `json:"payment_ids,omitempty"`
}

func (r *PayOrderRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

func (a *OrdersAPI) Create(ctx context.Context, req *CreateOrderRequest) (*OrderResponse, error) {
	if req == nil {
		return nil, required("request")
	}
	return a.post(ctx, "", req)
}

func (a *OrdersAPI) BatchRetrieve(ctx context.Context, req BatchRetrieveOrdersRequest) (*OrdersResponse, error) {
	var out OrdersResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APIOrders, Path: "/batch-retrieve"}, &req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *OrdersAPI) Calculate(ctx context.Context, req CalculateOrderRequest) (*OrderResponse, error) {
	return a.post(ctx, "/calculate", &req)
}

// Clone copies an order into a new DRAFT order.
func (a *OrdersAPI) Clone(ctx context.Context, req *CloneOrderRequest) (*OrderResponse, error) {
	if req == nil {
		return nil, required("request")
	}
	return a.post(ctx, "/clone", req)
}

func (a *OrdersAPI) Search(ctx context.Context, req SearchOrdersRequest) (*SearchOrdersResponse, error) {
	var out SearchOrdersResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APIOrders, Path: "/search"}, &req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *OrdersAPI) Retrieve(ctx context.Context, orderID string) (*OrderResponse, error) {
	return a.byID(ctx, GET, orderID, "", nil)
}

func (a *OrdersAPI) Update(ctx context.Context, orderID string, req *UpdateOrderRequest) (*OrderResponse, error) {
	if req == nil {
		return nil, required("request")
	}
	return a.byID(ctx, PUT, orderID, "", req)
}

func (a *OrdersAPI) Pay(ctx context.Context, orderID string, req *PayOrderRequest) (*OrderResponse, error) {
	if req == nil {
		return nil, required("request")
	}
	return a.byID(ctx, POST, orderID, "/pay", req)
}

func (a *OrdersAPI) post(ctx context.Context, path string, body any) (*OrderResponse, error) {
	var out OrderResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APIOrders, Path: path}, body, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *OrdersAPI) byID(ctx context.Context, verb Verb, orderID, suffix string, body any) (*OrderResponse, error) {
	path, err := idPath("order_id", orderID, suffix)
	if err != nil {
		return nil, err
	}

	var out OrderResponse
	if err = a.c.Request(ctx, verb, Endpoint{API: APIOrders, Path: path}, body, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
