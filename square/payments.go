package square

import (
	"context"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-square/models"
)

// PaymentsAPI takes and manages card and other payments.
type PaymentsAPI struct {
	c *Client
}

// ListPaymentsParams filters Payments.List. Zero values are not sent.
type ListPaymentsParams struct {
	BeginTime  string
	EndTime    string
	SortOrder  models.SortOrder
	Cursor     string
	LocationID string
	Total      *int64
	Last4      string
	CardBrand  models.CardBrand
	Limit      int
}

func (p ListPaymentsParams) query() url.Values {
	q := url.Values{}
	setQuery(q, "begin_time", p.BeginTime)
	setQuery(q, "end_time", p.EndTime)
	setQuery(q, "sort_order", string(p.SortOrder))
	setQuery(q, "cursor", p.Cursor)
	setQuery(q, "location_id", p.LocationID)
	if p.Total != nil {
		q.Set("total", strconv.FormatInt(*p.Total, 10))
	}
	setQuery(q, "last_4", p.Last4)
	setQuery(q, "card_brand", string(p.CardBrand))
	setQueryInt(q, "limit", p.Limit)
	return q
}

type ListPaymentsResponse struct {
	Payments []models.Payment `json:"payments"`
	Cursor   string           `json:"cursor,omitempty"`
}

type PaymentResponse struct {
	Payment models.Payment `json:"payment"`
}

// CreatePaymentRequest charges SourceID (a card nonce, card on file id, or
// "CASH"/"EXTERNAL"). IdempotencyKey is generated when empty.
type CreatePaymentRequest struct {
	SourceID                       string          `json:"source_id"`
	IdempotencyKey                 string          `json:"idempotency_key"`
	AmountMoney                    *models.Money   `json:"amount_money"`
	TipMoney                       *models.Money   `json:"tip_money,omitempty"`
	AppFeeMoney                    *models.Money   `json:"app_fee_money,omitempty"`
	DelayDuration                  string          `json:"delay_duration,omitempty"`
	DelayAction                    string          `json:"delay_action,omitempty"`
	Autocomplete                   *bool           `json:"autocomplete,omitempty"`
	OrderID                        string          `json:"order_id,omitempty"`
	CustomerID                     string          `json:"customer_id,omitempty"`
	LocationID                     string          `json:"location_id,omitempty"`
	TeamMemberID                   string          `json:"team_member_id,omitempty"`
	ReferenceID                    string          `json:"reference_id,omitempty"`
	VerificationToken              string          `json:"verification_token,omitempty"`
	AcceptPartialAuthorization     *bool           `json:"accept_partial_authorization,omitempty"`
	BuyerEmailAddress              string          `json:"buyer_email_address,omitempty"`
	BillingAddress                 *models.Address `json:"billing_address,omitempty"`
	ShippingAddress                *models.Address `json:"shipping_address,omitempty"`
	Note                           string          `json:"note,omitempty"`
	StatementDescriptionIdentifier string          `json:"statement_description_identifier,omitempty"`
}

func (r *CreatePaymentRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

func (r *CreatePaymentRequest) Validate() error {
	if r.SourceID == "" {
		return required("source_id")
	}
	if r.AmountMoney == nil {
		return required("amount_money")
	}
	if r.AmountMoney.Amount < 0 {
		return invalid("amount_money.amount", "must not be negative")
	}
	if r.AmountMoney.Currency == "" {
		return required("amount_money.currency")
	}
	return nil
}

// UpdatePaymentRequest changes the amount or tip of an APPROVED payment.
type UpdatePaymentRequest struct {
	Payment        *models.Payment `json:"payment,omitempty"`
	IdempotencyKey string          `json:"idempotency_key"`
}

func (r *UpdatePaymentRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

type cancelPaymentByKeyRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
}

// The key names the payment to cancel, so it is never generated.
func (r *cancelPaymentByKeyRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

func (r *cancelPaymentByKeyRequest) Validate() error {
	if r.IdempotencyKey == "" {
		return required("idempotency_key")
	}
	return nil
}

// CompletePaymentRequest optionally pins the payment version being
// completed.
type CompletePaymentRequest struct {
	VersionToken string `json:"version_token,omitempty"`
}

func (a *PaymentsAPI) List(ctx context.Context, params ListPaymentsParams) (*ListPaymentsResponse, error) {
	var out ListPaymentsResponse
	if err := a.c.Request(ctx, GET, Endpoint{API: APIPayments}, nil, params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Iterate walks all payments matching params, following cursors. A
// non-empty params.Cursor resumes from that page.
func (a *PaymentsAPI) Iterate(params ListPaymentsParams) *Iterator[models.Payment] {
	return PaginateFrom(params.Cursor, func(ctx context.Context, cursor string) ([]models.Payment, string, error) {
		params.Cursor = cursor
		resp, err := a.List(ctx, params)
		if err != nil {
			return nil, "", err
		}
		return resp.Payments, resp.Cursor, nil
	})
}

// Create takes a payment. The idempotency key used is left on req, so the
// same request value can be re-sent safely.
func (a *PaymentsAPI) Create(ctx context.Context, req *CreatePaymentRequest) (*PaymentResponse, error) {
	if req == nil {
		return nil, required("request")
	}

	var out PaymentResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APIPayments}, req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelByIdempotencyKey cancels a payment whose Create call timed out, by
// the key it was sent with.
func (a *PaymentsAPI) CancelByIdempotencyKey(ctx context.Context, idempotencyKey string) error {
	req := &cancelPaymentByKeyRequest{IdempotencyKey: idempotencyKey}
	return a.c.Request(ctx, POST, Endpoint{API: APIPayments, Path: "/cancel"}, req, nil, nil)
}

func (a *PaymentsAPI) Get(ctx context.Context, paymentID string) (*PaymentResponse, error) {
	return a.byID(ctx, GET, paymentID, "", nil)
}

func (a *PaymentsAPI) Update(ctx context.Context, paymentID string, req *UpdatePaymentRequest) (*PaymentResponse, error) {
	if req == nil {
		return nil, required("request")
	}
	return a.byID(ctx, PUT, paymentID, "", req)
}

// Cancel voids an APPROVED payment.
func (a *PaymentsAPI) Cancel(ctx context.Context, paymentID string) (*PaymentResponse, error) {
	return a.byID(ctx, POST, paymentID, "/cancel", nil)
}

// Complete captures an APPROVED payment created with autocomplete=false.
func (a *PaymentsAPI) Complete(ctx context.Context, paymentID string, req CompletePaymentRequest) (*PaymentResponse, error) {
	return a.byID(ctx, POST, paymentID, "/complete", &req)
}

func (a *PaymentsAPI) byID(ctx context.Context, verb Verb, paymentID, suffix string, body any) (*PaymentResponse, error) {
	path, err := idPath("payment_id", paymentID, suffix)
	if err != nil {
		return nil, err
	}

	var out PaymentResponse
	if err = a.c.Request(ctx, verb, Endpoint{API: APIPayments, Path: path}, body, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
