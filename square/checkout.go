package square

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/MKhiriev/go-square/models"
)

// CheckoutAPI manages Square-hosted payment links (online checkout).
type CheckoutAPI struct {
	c *Client
}

type ListPaymentLinksResponse struct {
	PaymentLinks []models.PaymentLink `json:"payment_links"`
	Cursor       string               `json:"cursor,omitempty"`
}

type PaymentLinkResponse struct {
	PaymentLink      models.PaymentLink `json:"payment_link"`
	RelatedResources json.RawMessage    `json:"related_resources,omitempty"`
}

// CreatePaymentLinkRequest sells either a QuickPay single amount or a full
// Order. Exactly one of the two must be set.
type CreatePaymentLinkRequest struct {
	IdempotencyKey   string                   `json:"idempotency_key,omitempty"`
	Description      string                   `json:"description,omitempty"`
	QuickPay         *models.QuickPay         `json:"quick_pay,omitempty"`
	Order            *models.Order            `json:"order,omitempty"`
	CheckoutOptions  *models.CheckoutOptions  `json:"checkout_options,omitempty"`
	PrePopulatedData *models.PrePopulatedData `json:"pre_populated_data,omitempty"`
	PaymentNote      string                   `json:"payment_note,omitempty"`
}

func (r *CreatePaymentLinkRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

func (r *CreatePaymentLinkRequest) Validate() error {
	if (r.QuickPay == nil) == (r.Order == nil) {
		return invalid("quick_pay", "exactly one of quick_pay or order is required")
	}
	if r.QuickPay != nil {
		if r.QuickPay.Name == "" {
			return required("quick_pay.name")
		}
		if r.QuickPay.LocationID == "" {
			return required("quick_pay.location_id")
		}
		if r.QuickPay.PriceMoney.Currency == "" {
			return required("quick_pay.price_money.currency")
		}
	}
	if r.Order != nil && r.Order.LocationID == "" {
		return required("order.location_id")
	}
	return nil
}

// UpdatePaymentLinkRequest carries the changed fields and the current
// PaymentLink.Version.
type UpdatePaymentLinkRequest struct {
	PaymentLink models.PaymentLink `json:"payment_link"`
}

func (r *UpdatePaymentLinkRequest) Validate() error {
	if r.PaymentLink.Version <= 0 {
		return required("payment_link.version")
	}
	return nil
}

type DeletePaymentLinkResponse struct {
	ID               string `json:"id"`
	CancelledOrderID string `json:"cancelled_order_id,omitempty"`
}

var paymentLinks = Endpoint{API: APIOnlineCheckout, Path: "/payment-links"}

func (a *CheckoutAPI) ListPaymentLinks(ctx context.Context, cursor string, limit int) (*ListPaymentLinksResponse, error) {
	q := url.Values{}
	setQuery(q, "cursor", cursor)
	setQueryInt(q, "limit", limit)

	var out ListPaymentLinksResponse
	if err := a.c.Request(ctx, GET, paymentLinks, nil, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CheckoutAPI) IteratePaymentLinks(limit int) *Iterator[models.PaymentLink] {
	return Paginate(func(ctx context.Context, cursor string) ([]models.PaymentLink, string, error) {
		resp, err := a.ListPaymentLinks(ctx, cursor, limit)
		if err != nil {
			return nil, "", err
		}
		return resp.PaymentLinks, resp.Cursor, nil
	})
}

func (a *CheckoutAPI) CreatePaymentLink(ctx context.Context, req *CreatePaymentLinkRequest) (*PaymentLinkResponse, error) {
	if req == nil {
		return nil, required("request")
	}

	var out PaymentLinkResponse
	if err := a.c.Request(ctx, POST, paymentLinks, req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CheckoutAPI) RetrievePaymentLink(ctx context.Context, linkID string) (*PaymentLinkResponse, error) {
	return a.byID(ctx, GET, linkID, nil)
}

func (a *CheckoutAPI) UpdatePaymentLink(ctx context.Context, linkID string, req UpdatePaymentLinkRequest) (*PaymentLinkResponse, error) {
	return a.byID(ctx, PUT, linkID, &req)
}

// DeletePaymentLink removes the link and cancels the order behind it.
func (a *CheckoutAPI) DeletePaymentLink(ctx context.Context, linkID string) (*DeletePaymentLinkResponse, error) {
	ep, err := paymentLinkEndpoint(linkID)
	if err != nil {
		return nil, err
	}

	var out DeletePaymentLinkResponse
	if err = a.c.Request(ctx, DELETE, ep, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CheckoutAPI) byID(ctx context.Context, verb Verb, linkID string, body any) (*PaymentLinkResponse, error) {
	ep, err := paymentLinkEndpoint(linkID)
	if err != nil {
		return nil, err
	}

	var out PaymentLinkResponse
	if err = a.c.Request(ctx, verb, ep, body, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func paymentLinkEndpoint(linkID string) (Endpoint, error) {
	path, err := idPath("payment_link_id", linkID, "")
	if err != nil {
		return Endpoint{}, err
	}
	return Endpoint{API: APIOnlineCheckout, Path: paymentLinks.Path + path}, nil
}
