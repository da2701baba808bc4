package square

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// API is the first path segment of a Square v2 endpoint.
type API string

const (
	APIPayments       API = "payments"
	APIBookings       API = "bookings"
	APILocations      API = "locations"
	APICatalog        API = "catalog"
	APICustomers      API = "customers"
	APICards          API = "cards"
	APIOnlineCheckout API = "online-checkout"
	APIInventory      API = "inventory"
	APISites          API = "sites"
	APITerminals      API = "terminals"
	APIOrders         API = "orders"
)

// Verb is an HTTP method accepted by Client.Request.
type Verb string

const (
	GET    Verb = http.MethodGet
	POST   Verb = http.MethodPost
	PUT    Verb = http.MethodPut
	PATCH  Verb = http.MethodPatch
	DELETE Verb = http.MethodDelete
)

// Endpoint is an API plus the path below it. Path is either empty or starts
// with a slash.
type Endpoint struct {
	API  API
	Path string
}

// String renders the endpoint relative to the v2 root, e.g.
// "/locations/L123".
func (e Endpoint) String() string {
	return "/" + string(e.API) + e.Path
}

// idPath renders "/{id}" followed by suffix, rejecting an empty id as a
// validation error on field.
func idPath(field, id, suffix string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", required(field)
	}
	return "/" + url.PathEscape(id) + suffix, nil
}

func setQuery(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setQueryInt(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}
