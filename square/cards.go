package square

import (
	"context"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-square/models"
)

// CardsAPI manages cards on file.
type CardsAPI struct {
	c *Client
}

type ListCardsParams struct {
	Cursor          string
	CustomerID      string
	IncludeDisabled bool
	ReferenceID     string
	SortOrder       models.SortOrder
}

func (p ListCardsParams) query() url.Values {
	q := url.Values{}
	setQuery(q, "cursor", p.Cursor)
	setQuery(q, "customer_id", p.CustomerID)
	if p.IncludeDisabled {
		q.Set("include_disabled", strconv.FormatBool(true))
	}
	setQuery(q, "reference_id", p.ReferenceID)
	setQuery(q, "sort_order", string(p.SortOrder))
	return q
}

type ListCardsResponse struct {
	Cards  []models.Card `json:"cards"`
	Cursor string        `json:"cursor,omitempty"`
}

type CardResponse struct {
	Card models.Card `json:"card"`
}

// CreateCardRequest stores Card using a payment token or a payment id as
// SourceID.
type CreateCardRequest struct {
	IdempotencyKey    string       `json:"idempotency_key"`
	SourceID          string       `json:"source_id"`
	VerificationToken string       `json:"verification_token,omitempty"`
	Card              *models.Card `json:"card"`
}

func (r *CreateCardRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

func (r *CreateCardRequest) Validate() error {
	if r.SourceID == "" {
		return required("source_id")
	}
	if r.Card == nil {
		return required("card")
	}
	return nil
}

func (a *CardsAPI) List(ctx context.Context, params ListCardsParams) (*ListCardsResponse, error) {
	var out ListCardsResponse
	if err := a.c.Request(ctx, GET, Endpoint{API: APICards}, nil, params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CardsAPI) Iterate(params ListCardsParams) *Iterator[models.Card] {
	return PaginateFrom(params.Cursor, func(ctx context.Context, cursor string) ([]models.Card, string, error) {
		params.Cursor = cursor
		resp, err := a.List(ctx, params)
		if err != nil {
			return nil, "", err
		}
		return resp.Cards, resp.Cursor, nil
	})
}

func (a *CardsAPI) Create(ctx context.Context, req *CreateCardRequest) (*CardResponse, error) {
	if req == nil {
		return nil, required("request")
	}

	var out CardResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APICards}, req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CardsAPI) Retrieve(ctx context.Context, cardID string) (*CardResponse, error) {
	return a.byID(ctx, GET, cardID, "")
}

// Disable makes the card unusable for future payments. It cannot be undone.
func (a *CardsAPI) Disable(ctx context.Context, cardID string) (*CardResponse, error) {
	return a.byID(ctx, POST, cardID, "/disable")
}

func (a *CardsAPI) byID(ctx context.Context, verb Verb, cardID, suffix string) (*CardResponse, error) {
	path, err := idPath("card_id", cardID, suffix)
	if err != nil {
		return nil, err
	}

	var out CardResponse
	if err = a.c.Request(ctx, verb, Endpoint{API: APICards, Path: path}, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
