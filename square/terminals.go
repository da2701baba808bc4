package square

import (
	"context"

	"github.com/MKhiriev/go-square/models"
)

// TerminalsAPI sends checkouts and refunds to Square Terminal devices.
type TerminalsAPI struct {
	c *Client
}

type TerminalCheckoutResponse struct {
	Checkout models.TerminalCheckout `json:"checkout"`
}

type TerminalRefundResponse struct {
	Refund models.TerminalRefund `json:"refund"`
}

type CreateTerminalCheckoutRequest struct {
	IdempotencyKey string                   `json:"idempotency_key"`
	Checkout       *models.TerminalCheckout `json:"checkout"`
}

func (r *CreateTerminalCheckoutRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

func (r *CreateTerminalCheckoutRequest) Validate() error {
	if r.Checkout == nil {
		return required("checkout")
	}
	if r.Checkout.AmountMoney == nil {
		return required("checkout.amount_money")
	}
	if r.Checkout.DeviceOptions == nil || r.Checkout.DeviceOptions.DeviceID == "" {
		return required("checkout.device_options.device_id")
	}
	return nil
}

type SearchTerminalCheckoutsRequest struct {
	Query  *models.TerminalCheckoutQuery `json:"query,omitempty"`
	Cursor string                        `json:"cursor,omitempty"`
	Limit  int                           `json:"limit,omitempty"`
}

type SearchTerminalCheckoutsResponse struct {
	Checkouts []models.TerminalCheckout `json:"checkouts"`
	Cursor    string                    `json:"cursor,omitempty"`
}

type CreateTerminalRefundRequest struct {
	IdempotencyKey string                 `json:"idempotency_key"`
	Refund         *models.TerminalRefund `json:"refund"`
}

func (r *CreateTerminalRefundRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

func (r *CreateTerminalRefundRequest) Validate() error {
	if r.Refund == nil {
		return required("refund")
	}
	if r.Refund.PaymentID == "" {
		return required("refund.payment_id")
	}
	if r.Refund.AmountMoney == nil {
		return required("refund.amount_money")
	}
	if r.Refund.Reason == "" {
		return required("refund.reason")
	}
	return nil
}

type SearchTerminalRefundsRequest struct {
	Query  *models.TerminalRefundQuery `json:"query,omitempty"`
	Cursor string                      `json:"cursor,omitempty"`
	Limit  int                         `json:"limit,omitempty"`
}

type SearchTerminalRefundsResponse struct {
	Refunds []models.TerminalRefund `json:"refunds"`
	Cursor  string                  `json:"cursor,omitempty"`
}

func (a *TerminalsAPI) CreateCheckout(ctx context.Context, req *CreateTerminalCheckoutRequest) (*TerminalCheckoutResponse, error) {
	if req == nil {
		return nil, required("request")
	}

	var out TerminalCheckoutResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APITerminals, Path: "/checkouts"}, req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *TerminalsAPI) SearchCheckouts(ctx context.Context, req SearchTerminalCheckoutsRequest) (*SearchTerminalCheckoutsResponse, error) {
	var out SearchTerminalCheckoutsResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APITerminals, Path: "/checkouts/search"}, &req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *TerminalsAPI) GetCheckout(ctx context.Context, checkoutID string) (*TerminalCheckoutResponse, error) {
	var out TerminalCheckoutResponse
	if err := a.byID(ctx, GET, "/checkouts", "checkout_id", checkoutID, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *TerminalsAPI) CancelCheckout(ctx context.Context, checkoutID string) (*TerminalCheckoutResponse, error) {
	var out TerminalCheckoutResponse
	if err := a.byID(ctx, POST, "/checkouts", "checkout_id", checkoutID, "/cancel", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *TerminalsAPI) CreateRefund(ctx context.Context, req *CreateTerminalRefundRequest) (*TerminalRefundResponse, error) {
	if req == nil {
		return nil, required("request")
	}

	var out TerminalRefundResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APITerminals, Path: "/refunds"}, req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *TerminalsAPI) SearchRefunds(ctx context.Context, req SearchTerminalRefundsRequest) (*SearchTerminalRefundsResponse, error) {
	var out SearchTerminalRefundsResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APITerminals, Path: "/refunds/search"}, &req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *TerminalsAPI) GetRefund(ctx context.Context, refundID string) (*TerminalRefundResponse, error) {
	var out TerminalRefundResponse
	if err := a.byID(ctx, GET, "/refunds", "terminal_refund_id", refundID, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *TerminalsAPI) CancelRefund(ctx context.Context, refundID string) (*TerminalRefundResponse, error) {
	var out TerminalRefundResponse
	if err := a.byID(ctx, POST, "/refunds", "terminal_refund_id", refundID, "/cancel", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *TerminalsAPI) byID(ctx context.Context, verb Verb, prefix, field, id, suffix string, out any) error {
	path, err := idPath(field, id, suffix)
	if err != nil {
		return err
	}
	return a.c.Request(ctx, verb, Endpoint{API: APITerminals, Path: prefix + path}, nil, nil, out)
}
