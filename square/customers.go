package square

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-square/models"
)

// CustomersAPI manages the seller's customer directory.
type CustomersAPI struct {
	c *Client
}

type ListCustomersParams struct {
	Cursor    string
	Limit     int
	SortField string
	SortOrder models.SortOrder
}

func (p ListCustomersParams) query() url.Values {
	q := url.Values{}
	setQuery(q, "cursor", p.Cursor)
	setQueryInt(q, "limit", p.Limit)
	setQuery(q, "sort_field", p.SortField)
	setQuery(q, "sort_order", string(p.SortOrder))
	return q
}

type ListCustomersResponse struct {
	Customers []models.Customer `json:"customers"`
	Cursor    string            `json:"cursor,omitempty"`
}

type CustomerResponse struct {
	Customer models.Customer `json:"customer"`
}

// CreateCustomerRequest needs at least one of the name, email or phone
// fields.
type CreateCustomerRequest struct {
	IdempotencyKey string          `json:"idempotency_key,omitempty"`
	GivenName      string          `json:"given_name,omitempty"`
	FamilyName     string          `json:"family_name,omitempty"`
	CompanyName    string          `json:"company_name,omitempty"`
	Nickname       string          `json:"nickname,omitempty"`
	EmailAddress   string          `json:"email_address,omitempty"`
	Address        *models.Address `json:"address,omitempty"`
	PhoneNumber    string          `json:"phone_number,omitempty"`
	ReferenceID    string          `json:"reference_id,omitempty"`
	Note           string          `json:"note,omitempty"`
	Birthday       string          `json:"birthday,omitempty"`
}

func (r *CreateCustomerRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

func (r *CreateCustomerRequest) Validate() error {
	if r.GivenName == "" && r.FamilyName == "" && r.CompanyName == "" &&
		r.EmailAddress == "" && r.PhoneNumber == "" {
		return invalid("customer", "one of given_name, family_name, company_name, email_address or phone_number is required")
	}
	return nil
}

// UpdateCustomerRequest changes the listed fields. Version enables
// optimistic concurrency when set.
type UpdateCustomerRequest struct {
	GivenName    string          `json:"given_name,omitempty"`
	FamilyName   string          `json:"family_name,omitempty"`
	CompanyName  string          `json:"company_name,omitempty"`
	Nickname     string          `json:"nickname,omitempty"`
	EmailAddress string          `json:"email_address,omitempty"`
	Address      *models.Address `json:"address,omitempty"`
	PhoneNumber  string          `json:"phone_number,omitempty"`
	ReferenceID  string          `json:"reference_id,omitempty"`
	Note         string          `json:"note,omitempty"`
	Birthday     string          `json:"birthday,omitempty"`
	Version      int64           `json:"version,omitempty"`
}

type SearchCustomersRequest struct {
	Cursor string                `json:"cursor,omitempty"`
	Limit  int                   `json:"limit,omitempty"`
	Query  *models.CustomerQuery `json:"query,omitempty"`
	Count  bool                  `json:"count,omitempty"`
}

type SearchCustomersResponse struct {
	Customers []models.Customer `json:"customers"`
	Cursor    string            `json:"cursor,omitempty"`
	Count     int64             `json:"count,omitempty"`
}

func (a *CustomersAPI) List(ctx context.Context, params ListCustomersParams) (*ListCustomersResponse, error) {
	var out ListCustomersResponse
	if err := a.c.Request(ctx, GET, Endpoint{API: APICustomers}, nil, params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Iterate walks the whole customer directory.
func (a *CustomersAPI) Iterate(params ListCustomersParams) *Iterator[models.Customer] {
	return PaginateFrom(params.Cursor, func(ctx context.Context, cursor string) ([]models.Customer, string, error) {
		params.Cursor = cursor
		resp, err := a.List(ctx, params)
		if err != nil {
			return nil, "", err
		}
		return resp.Customers, resp.Cursor, nil
	})
}

func (a *CustomersAPI) Create(ctx context.Context, req *CreateCustomerRequest) (*CustomerResponse, error) {
	if req == nil {
		return nil, required("request")
	}

	var out CustomerResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APICustomers}, req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CustomersAPI) Search(ctx context.Context, req SearchCustomersRequest) (*SearchCustomersResponse, error) {
	var out SearchCustomersResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APICustomers, Path: "/search"}, &req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CustomersAPI) Retrieve(ctx context.Context, customerID string) (*CustomerResponse, error) {
	return a.byID(ctx, GET, customerID, nil)
}

func (a *CustomersAPI) Update(ctx context.Context, customerID string, req UpdateCustomerRequest) (*CustomerResponse, error) {
	return a.byID(ctx, PUT, customerID, &req)
}

func (a *CustomersAPI) Delete(ctx context.Context, customerID string) error {
	path, err := idPath("customer_id", customerID, "")
	if err != nil {
		return err
	}
	return a.c.Request(ctx, DELETE, Endpoint{API: APICustomers, Path: path}, nil, nil, nil)
}

func (a *CustomersAPI) byID(ctx context.Context, verb Verb, customerID string, body any) (*CustomerResponse, error) {
	path, err := idPath("customer_id", customerID, "")
	if err != nil {
		return nil, err
	}

	var out CustomerResponse
	if err = a.c.Request(ctx, verb, Endpoint{API: APICustomers, Path: path}, body, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
