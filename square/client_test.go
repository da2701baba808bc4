package square

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-square/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Environment ────────────────────────────────────────────────────────────

func TestNewClient_DefaultsToSandbox(t *testing.T) {
	c := NewClient("token")

	assert.Equal(t, Sandbox, c.Environment())
	assert.Equal(t, "https://connect.squareupsandbox.com/v2", c.BaseURL())
}

func TestClient_Production(t *testing.T) {
	sandbox := NewClient("token")
	prod := sandbox.Production()

	assert.Equal(t, "https://connect.squareup.com/v2", prod.BaseURL())
	assert.Equal(t, Sandbox, sandbox.Environment(), "Production must not mutate the receiver")
}

func TestWithEnvironment(t *testing.T) {
	c := NewClient("token", WithEnvironment(Production))
	assert.Equal(t, "https://connect.squareup.com/v2/payments", c.EndpointURL(Endpoint{API: APIPayments}))
}

func TestWithBaseURL_OverridesEnvironment(t *testing.T) {
	c := NewClient("token", WithBaseURL("http://localhost:9000/v2/"), WithEnvironment(Production))

	assert.Equal(t, "http://localhost:9000/v2", c.BaseURL())
	assert.Equal(t, "http://localhost:9000/v2", c.Production().BaseURL())
}

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		in      string
		want    Environment
		wantErr bool
	}{
		{in: "", want: Sandbox},
		{in: "sandbox", want: Sandbox},
		{in: "Production", want: Production},
		{in: "prod", want: Production},
		{in: "staging", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEnvironment(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Endpoint rendering ─────────────────────────────────────────────────────

func TestEndpoint_String(t *testing.T) {
	tests := []struct {
		ep   Endpoint
		want string
	}{
		{Endpoint{API: APIPayments}, "/payments"},
		{Endpoint{API: APIBookings, Path: "/availability/search"}, "/bookings/availability/search"},
		{Endpoint{API: APILocations, Path: "/L1"}, "/locations/L1"},
		{Endpoint{API: APICatalog, Path: "/list"}, "/catalog/list"},
		{Endpoint{API: APICustomers, Path: "/search"}, "/customers/search"},
		{Endpoint{API: APICards}, "/cards"},
		{Endpoint{API: APIOnlineCheckout, Path: "/payment-links"}, "/online-checkout/payment-links"},
		{Endpoint{API: APIInventory, Path: "/changes/batch-create"}, "/inventory/changes/batch-create"},
		{Endpoint{API: APISites}, "/sites"},
		{Endpoint{API: APITerminals, Path: "/checkouts"}, "/terminals/checkouts"},
		{Endpoint{API: APIOrders, Path: "/calculate"}, "/orders/calculate"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ep.String())
		})
	}
}

// ── Headers and logging ────────────────────────────────────────────────────

func TestRequest_SendsSquareHeaders(t *testing.T) {
	c, fake := newFakeSquare(t, http.StatusOK, `{"locations":[]}`)

	_, err := c.Locations().List(context.Background())
	require.NoError(t, err)

	got := fake.last(t)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/v2/locations", got.Path)
	assert.Equal(t, "Bearer test-token", got.Header.Get("Authorization"))
	assert.Equal(t, DefaultSquareVersion, got.Header.Get("Square-Version"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "go-square/"+Version, got.Header.Get("User-Agent"))
	assert.Empty(t, got.Body)
}

func TestRequest_ContentTypeOnlyWithBody(t *testing.T) {
	c, fake := newFakeSquare(t, http.StatusOK, `{"location":{"id":"L1"}}`, WithSquareVersion("2025-01-23"))

	_, err := c.Locations().Create(context.Background(), CreateLocationRequest{Location: models.Location{Name: "Shop"}})
	require.NoError(t, err)

	got := fake.last(t)
	assert.Contains(t, got.Header.Get("Content-Type"), "application/json")
	assert.Equal(t, "2025-01-23", got.Header.Get("Square-Version"))
	assert.JSONEq(t, `{"location":{"name":"Shop"}}`, string(got.Body))
}

func TestRequest_LogsWithoutToken(t *testing.T) {
	var buf bytes.Buffer
	c, _ := newFakeSquare(t, http.StatusOK, `{"sites":[]}`, WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	_, err := c.Sites().List(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"square request"`)
	assert.Contains(t, out, `"endpoint":"/sites"`)
	assert.Contains(t, out, `"status":200`)
	assert.NotContains(t, out, "test-token")
}

// ── Errors ────────────────────────────────────────────────────────────────

func TestRequest_DecodesSquareErrors(t *testing.T) {
	body := `{"errors":[{"category":"PAYMENT_METHOD_ERROR","code":"CARD_DECLINED","detail":"Card declined."},` +
		`{"category":"PAYMENT_METHOD_ERROR","code":"CVV_FAILURE","field":"cvv"}]}`
	c, _ := newFakeSquare(t, http.StatusBadRequest, body)

	_, err := c.Payments().Get(context.Background(), "P1")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Len(t, apiErr.Errors, 2)
	assert.Equal(t, "cvv", apiErr.Errors[1].Field)
	assert.True(t, apiErr.HasCode("CARD_DECLINED"))
	assert.False(t, apiErr.HasCode("NOT_FOUND"))
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "square: http 400: CARD_DECLINED: Card declined.; CVV_FAILURE", err.Error())
}

func TestRequest_NonJSONErrorBody(t *testing.T) {
	c, _ := newFakeSquare(t, http.StatusBadGateway, `<html>bad gateway</html>`)

	_, err := c.Sites().List(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Empty(t, apiErr.Errors)
	assert.Equal(t, "square: http 502: Bad Gateway", err.Error())
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestAPIError_Sentinels(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusPaymentRequired, ErrPaymentRequired},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusGatewayTimeout, ErrInternalServerError},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := error(&APIError{StatusCode: tt.status})
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Nil(t, (&APIError{StatusCode: http.StatusUnprocessableEntity}).Unwrap())
}

func TestRequest_TransportErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewClient("token", WithBaseURL(srv.URL), WithRetry(0, 0, 0))
	_, err := c.Locations().List(context.Background())

	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "GET /locations request: "), err.Error())
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestRequest_ValidationSkipsHTTP(t *testing.T) {
	c, fake := newFakeSquare(t, http.StatusOK, `{}`)

	_, err := c.Locations().Create(context.Background(), CreateLocationRequest{})
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "location.name", vErr.Field)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = c.Locations().Retrieve(context.Background(), " ")
	assert.ErrorIs(t, err, ErrValidation)

	assert.Zero(t, fake.count())
}

// ── Idempotency ───────────────────────────────────────────────────────────

func TestRequest_GeneratesIdempotencyKey(t *testing.T) {
	c, fake := newFakeSquare(t, http.StatusOK, `{"payment":{"id":"P1"}}`)

	req := &CreatePaymentRequest{SourceID: "cnon:card-nonce-ok", AmountMoney: models.NewMoney(100, models.CurrencyUSD)}
	_, err := c.Payments().Create(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, req.IdempotencyKey, 36)

	var sent CreatePaymentRequest
	require.NoError(t, json.Unmarshal(fake.last(t).Body, &sent))
	assert.Equal(t, req.IdempotencyKey, sent.IdempotencyKey)
}

func TestRequest_KeepsCallerIdempotencyKey(t *testing.T) {
	c, fake := newFakeSquare(t, http.StatusOK, `{"payment":{"id":"P1"}}`,
		WithIdempotencyKeyFunc(func() string { return "generated" }))

	req := &CreatePaymentRequest{
		SourceID:       "cnon:card-nonce-ok",
		IdempotencyKey: "caller-key",
		AmountMoney:    models.NewMoney(100, models.CurrencyUSD),
	}
	_, err := c.Payments().Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "caller-key", req.IdempotencyKey)
	assert.Contains(t, string(fake.last(t).Body), `"idempotency_key":"caller-key"`)
}

func TestRequest_CustomIdempotencyKeyFunc(t *testing.T) {
	c, _ := newFakeSquare(t, http.StatusOK, `{"customer":{"id":"C1"}}`,
		WithIdempotencyKeyFunc(func() string { return "generated" }))

	req := &CreateCustomerRequest{GivenName: "Ada"}
	_, err := c.Customers().Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "generated", req.IdempotencyKey)
}

// ── Retries ───────────────────────────────────────────────────────────────

// flakyServer fails the first `failures` calls with status, then answers
// 200 with body.
func flakyServer(t *testing.T, failures int32, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) <= failures {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func fastRetries(srvURL string) *Client {
	return NewClient("token", WithBaseURL(srvURL), WithRetry(3, time.Millisecond, 5*time.Millisecond))
}

func TestRetry_GetRecoversFrom503(t *testing.T) {
	srv, hits := flakyServer(t, 1, http.StatusServiceUnavailable, `{"locations":[{"id":"L1"}]}`)

	resp, err := fastRetries(srv.URL).Locations().List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load())
	require.Len(t, resp.Locations, 1)
	assert.Equal(t, "L1", resp.Locations[0].ID)
}

func TestRetry_PostWithoutKeyIsNotRetried(t *testing.T) {
	srv, hits := flakyServer(t, 1, http.StatusInternalServerError, `{"payment":{"id":"P1"}}`)

	_, err := fastRetries(srv.URL).Payments().Cancel(context.Background(), "P1")

	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, int32(1), hits.Load())
}

func TestRetry_PostWithKeyIsRetried(t *testing.T) {
	srv, hits := flakyServer(t, 2, http.StatusTooManyRequests, `{"payment":{"id":"P1"}}`)

	req := &CreatePaymentRequest{SourceID: "cnon:ok", AmountMoney: models.NewMoney(1, models.CurrencyUSD)}
	resp, err := fastRetries(srv.URL).Payments().Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "P1", resp.Payment.ID)
	assert.Equal(t, int32(3), hits.Load())
}

func TestRetry_ClientErrorsAreFinal(t *testing.T) {
	srv, hits := flakyServer(t, 5, http.StatusBadRequest, `{}`)

	_, err := fastRetries(srv.URL).Locations().List(context.Background())

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, int32(1), hits.Load())
}

func TestRetry_DisabledWithZeroCount(t *testing.T) {
	srv, hits := flakyServer(t, 1, http.StatusServiceUnavailable, `{}`)

	c := NewClient("token", WithBaseURL(srv.URL), WithRetry(0, time.Millisecond, time.Millisecond))
	_, err := c.Sites().List(context.Background())

	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Equal(t, int32(1), hits.Load())
}

func TestRetry_CancellationStopsWaiting(t *testing.T) {
	srv, _ := flakyServer(t, 100, http.StatusServiceUnavailable, `{}`)
	c := NewClient("token", WithBaseURL(srv.URL), WithRetry(5, 2*time.Second, 5*time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.Locations().List(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRetryAfter(t *testing.T) {
	tests := []struct {
		name   string
		status int
		header string
		want   time.Duration
	}{
		{name: "seconds on 429", status: http.StatusTooManyRequests, header: "2", want: 2 * time.Second},
		{name: "seconds on 503", status: http.StatusServiceUnavailable, header: "1", want: time.Second},
		{name: "ignored on 500", status: http.StatusInternalServerError, header: "2", want: 0},
		{name: "http date falls back", status: http.StatusTooManyRequests, header: "Wed, 21 Oct 2015 07:28:00 GMT", want: 0},
		{name: "missing header", status: http.StatusTooManyRequests, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.header != "" {
					w.Header().Set("Retry-After", tt.header)
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := NewClient("token", WithRetry(0, 0, 0))
			resp, err := c.rest.R().Get(srv.URL)
			require.NoError(t, err)

			got, err := retryAfter(c.rest.Client, resp)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRetry_RetryAfterIsCappedByMaxWait(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sites":[]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient("token", WithBaseURL(srv.URL), WithRetry(1, time.Millisecond, 20*time.Millisecond))

	start := time.Now()
	_, err := c.Sites().List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
	assert.Less(t, time.Since(start), time.Second)
}

func TestRetryable(t *testing.T) {
	keyed := &CreatePaymentRequest{IdempotencyKey: "k"}
	unkeyed := &CreatePaymentRequest{}

	assert.True(t, retryable(http.MethodGet, nil))
	assert.True(t, retryable(http.MethodPut, nil))
	assert.True(t, retryable(http.MethodDelete, nil))
	assert.True(t, retryable(http.MethodPost, keyed))
	assert.False(t, retryable(http.MethodPost, unkeyed))
	assert.False(t, retryable(http.MethodPost, map[string]string{"a": "b"}))
	assert.False(t, retryable(http.MethodPatch, nil))
	assert.False(t, shouldRetry(nil, errors.New("boom")))
}
