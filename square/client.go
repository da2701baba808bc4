// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package square

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/MKhiriev/go-square/internal/utils"
	"github.com/go-resty/resty/v2"
)

// Version is the library version reported in the User-Agent header.
const Version = "0.1.0"

// DefaultSquareVersion is the Square-Version header sent when
// WithSquareVersion is not used.
const DefaultSquareVersion = "2024-01-18"

const defaultTimeout = 30 * time.Second

// Environment selects the Square deployment a Client talks to.
type Environment int

const (
	// Sandbox is the default environment. Sandbox tokens never move money.
	Sandbox Environment = iota
	// Production is the live Square environment.
	Production
)

// BaseURL returns the v2 API root of the environment.
func (e Environment) BaseURL() string {
	if e == Production {
		return "https://connect.squareup.com/v2"
	}
	return "https://connect.squareupsandbox.com/v2"
}

// String returns "sandbox" or "production".
func (e Environment) String() string {
	if e == Production {
		return "production"
	}
	return "sandbox"
}

// ParseEnvironment maps "sandbox" and "production" (case-insensitive) to an
// Environment. An empty string selects Sandbox.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sandbox":
		return Sandbox, nil
	case "production", "prod":
		return Production, nil
	default:
		return Sandbox, &ValidationError{Field: "environment", Reason: fmt.Sprintf("unknown environment %q", s)}
	}
}

// Client is a Square v2 API client. It is safe for concurrent use once
// NewClient returns.
type Client struct {
	accessToken   string
	env           Environment
	baseURL       string
	squareVersion string

	timeout    time.Duration
	httpClient *http.Client
	transport  http.RoundTripper
	tlsConfig  *tls.Config
	retry      retryPolicy

	newKey IdempotencyKeyFunc
	logger *logger.Logger

	rest *utils.HTTPClient
}

// NewClient returns a Sandbox client authenticated with accessToken.
func NewClient(accessToken string, opts ...Option) *Client {
	c := &Client{
		accessToken:   strings.TrimSpace(accessToken),
		env:           Sandbox,
		squareVersion: DefaultSquareVersion,
		retry:         defaultRetryPolicy(),
		newKey:        NewIdempotencyKey,
		logger:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.rest = utils.NewHTTPClientFrom(c.httpClient)
	if c.timeout > 0 || c.httpClient == nil {
		timeout := c.timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		c.rest.SetTimeout(timeout)
	}
	if c.transport != nil {
		c.rest.SetTransport(c.transport)
	}
	if c.tlsConfig != nil {
		c.rest.SetTLSClientConfig(c.tlsConfig)
	}

	c.rest.
		SetLogger(c.logger).
		SetHeader("User-Agent", "go-square/"+Version)
	c.retry.apply(c.rest.Client)

	return c
}

// Production returns a copy of c that targets the production environment.
// A base URL set with WithBaseURL still takes precedence.
func (c *Client) Production() *Client {
	cp := *c
	cp.env = Production
	return &cp
}

// Environment reports the environment the client targets.
func (c *Client) Environment() Environment {
	return c.env
}

// BaseURL is the API root used for requests: the WithBaseURL override if
// set, the environment's URL otherwise.
func (c *Client) BaseURL() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return c.env.BaseURL()
}

// EndpointURL returns the absolute URL of ep for the active environment.
func (c *Client) EndpointURL(ep Endpoint) string {
	return c.BaseURL() + ep.String()
}

// Request sends one API call. body, when non-nil, is validated, given an
// idempotency key if it takes one, and sent as JSON. A 2xx response body is
// decoded into result when result is non-nil; anything else comes back as
// an *APIError.
func (c *Client) Request(ctx context.Context, verb Verb, ep Endpoint, body any, query url.Values, result any) error {
	if body != nil {
		if v, ok := body.(validator); ok {
			if err := v.Validate(); err != nil {
				return err
			}
		}
		c.ensureIdempotencyKey(body)
	}

	req := c.rest.R().
		SetContext(ctx).
		SetAuthToken(c.accessToken).
		SetHeader("Square-Version", c.squareVersion).
		SetHeader("Accept", "application/json")
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Execute(string(verb), c.EndpointURL(ep))
	if err != nil {
		return fmt.Errorf("%s %s request: %w", verb, ep, err)
	}
	c.logResponse(verb, ep, resp)

	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode %s %s response: %w", verb, ep, err)
	}
	return nil
}

func (c *Client) logResponse(verb Verb, ep Endpoint, resp *resty.Response) {
	c.logger.Debug().
		Str("method", string(verb)).
		Str("endpoint", ep.String()).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Int("attempt", resp.Request.Attempt).
		Msg("square request")
}

// Locations returns the Locations API.
func (c *Client) Locations() *LocationsAPI { return &LocationsAPI{c: c} }

// Payments returns the Payments API.
func (c *Client) Payments() *PaymentsAPI { return &PaymentsAPI{c: c} }

// Customers returns the Customers API.
func (c *Client) Customers() *CustomersAPI { return &CustomersAPI{c: c} }

// Cards returns the Cards API.
func (c *Client) Cards() *CardsAPI { return &CardsAPI{c: c} }

// Catalog returns the Catalog API.
func (c *Client) Catalog() *CatalogAPI { return &CatalogAPI{c: c} }

// Checkout returns the Checkout (online-checkout) API.
func (c *Client) Checkout() *CheckoutAPI { return &CheckoutAPI{c: c} }

// Inventory returns the Inventory API.
func (c *Client) Inventory() *InventoryAPI { return &InventoryAPI{c: c} }

// Orders returns the Orders API.
func (c *Client) Orders() *OrdersAPI { return &OrdersAPI{c: c} }

// Bookings returns the Bookings API.
func (c *Client) Bookings() *BookingsAPI { return &BookingsAPI{c: c} }

// Sites returns the Sites API.
func (c *Client) Sites() *SitesAPI { return &SitesAPI{c: c} }

// Terminals returns the Terminal API.
func (c *Client) Terminals() *TerminalsAPI { return &TerminalsAPI{c: c} }
