// Package models holds the Square object model shared by the square client
// library and the example binaries.
//
// Field names follow Square's snake_case wire names through json tags.
// Timestamps are kept as RFC 3339 strings exactly as Square sends them, so
// a value read from one call can be echoed back in another without
// re-formatting. Optional scalars use omitempty or pointers so that zero
// values are not sent on create/update requests.
package models

// Currency is an ISO 4217 currency code.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyCAD Currency = "CAD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyAUD Currency = "AUD"
	CurrencyJPY Currency = "JPY"
)

// Money is an amount in the smallest denomination of Currency
// (cents for USD, yen for JPY).
type Money struct {
	Amount   int64    `json:"amount"`
	Currency Currency `json:"currency"`
}

// NewMoney is a shorthand for building a *Money literal.
func NewMoney(amount int64, currency Currency) *Money {
	return &Money{Amount: amount, Currency: currency}
}

// Address is a physical address as modelled by Square.
type Address struct {
	AddressLine1                 string `json:"address_line_1,omitempty"`
	AddressLine2                 string `json:"address_line_2,omitempty"`
	AddressLine3                 string `json:"address_line_3,omitempty"`
	Locality                     string `json:"locality,omitempty"`
	Sublocality                  string `json:"sublocality,omitempty"`
	AdministrativeDistrictLevel1 string `json:"administrative_district_level_1,omitempty"`
	PostalCode                   string `json:"postal_code,omitempty"`
	Country                      string `json:"country,omitempty"`
	FirstName                    string `json:"first_name,omitempty"`
	LastName                     string `json:"last_name,omitempty"`
}

// Coordinates are a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TimeRange is an inclusive [StartAt, EndAt] window of RFC 3339 timestamps.
// Either bound may be left empty.
type TimeRange struct {
	StartAt string `json:"start_at,omitempty"`
	EndAt   string `json:"end_at,omitempty"`
}

// SortOrder is the sort direction accepted by list and search endpoints.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// FilterValue is Square's generic all/any/none id filter.
type FilterValue struct {
	All  []string `json:"all,omitempty"`
	Any  []string `json:"any,omitempty"`
	None []string `json:"none,omitempty"`
}

// Error is a single entry of the "errors" array Square returns with every
// non-2xx response.
type Error struct {
	// Category groups the error, e.g. AUTHENTICATION_ERROR, INVALID_REQUEST_ERROR,
	// PAYMENT_METHOD_ERROR, RATE_LIMIT_ERROR, API_ERROR.
	Category string `json:"category"`

	// Code is the specific error code, e.g. CARD_DECLINED, NOT_FOUND,
	// IDEMPOTENCY_KEY_REUSED.
	Code string `json:"code"`

	// Detail is a human-readable explanation.
	Detail string `json:"detail,omitempty"`

	// Field names the request field that caused the error, if any.
	Field string `json:"field,omitempty"`
}
