package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-square/internal/app"
	"github.com/MKhiriev/go-square/internal/config"
	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/MKhiriev/go-square/internal/mock"
	"github.com/MKhiriev/go-square/internal/service"
	"github.com/MKhiriev/go-square/internal/store"
	"github.com/MKhiriev/go-square/models"
	"github.com/MKhiriev/go-square/square"
)

type testMocks struct {
	checkout *mock.MockCheckoutService
	catalog  *mock.MockCatalogService
	appInfo  *mock.MockAppInfoService
}

func newTestRouter(t *testing.T, cfg config.Server) (http.Handler, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := testMocks{
		checkout: mock.NewMockCheckoutService(ctrl),
		catalog:  mock.NewMockCatalogService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		CheckoutService: m.checkout,
		CatalogService:  m.catalog,
		AppInfoService:  m.appInfo,
	}

	return NewHandler(services, cfg, logger.Nop()).Init(), m
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t, config.Server{})

	rec := doRequest(t, h, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestVersion(t *testing.T) {
	h, m := newTestRouter(t, config.Server{})
	m.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.NewAppBuildInfo("v1.2.0", "2026-03-01", "abc123"))

	rec := doRequest(t, h, http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"v1.2.0","date":"2026-03-01","commit":"abc123"}`, rec.Body.String())
}

func TestListLocations(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h, m := newTestRouter(t, config.Server{})
		m.catalog.EXPECT().ListLocations(gomock.Any()).Return([]models.Location{{ID: "L1", Name: "Main"}}, nil)

		rec := doRequest(t, h, http.MethodGet, "/api/locations", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[locationsResponse](t, rec)
		require.Len(t, body.Locations, 1)
		assert.Equal(t, "L1", body.Locations[0].ID)
	})

	t.Run("bad token upstream", func(t *testing.T) {
		h, m := newTestRouter(t, config.Server{})
		m.catalog.EXPECT().ListLocations(gomock.Any()).
			Return(nil, &square.APIError{StatusCode: http.StatusUnauthorized, Errors: []models.Error{{Code: "UNAUTHORIZED"}}})

		rec := doRequest(t, h, http.MethodGet, "/api/locations", "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	})
}

func TestListCatalog(t *testing.T) {
	t.Run("types are split and upper-cased", func(t *testing.T) {
		h, m := newTestRouter(t, config.Server{})
		m.catalog.EXPECT().
			ListCatalog(gomock.Any(), []models.CatalogObjectType{"ITEM", "TAX", "DISCOUNT"}).
			Return([]models.CatalogObject{{Type: "ITEM", ID: "I1"}}, nil)

		rec := doRequest(t, h, http.MethodGet, "/api/catalog?types=item,%20tax&types=DISCOUNT", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[catalogResponse](t, rec)
		require.Len(t, body.Objects, 1)
		assert.Equal(t, "I1", body.Objects[0].ID)
	})

	t.Run("no objects gives empty array", func(t *testing.T) {
		h, m := newTestRouter(t, config.Server{})
		m.catalog.EXPECT().ListCatalog(gomock.Any(), gomock.Nil()).Return(nil, nil)

		rec := doRequest(t, h, http.MethodGet, "/api/catalog", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"objects":[]}`, rec.Body.String())
	})

	t.Run("invalid filter", func(t *testing.T) {
		h, m := newTestRouter(t, config.Server{})
		m.catalog.EXPECT().ListCatalog(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: unknown type BOGUS", service.ErrInvalidCatalogFilter))

		rec := doRequest(t, h, http.MethodGet, "/api/catalog?types=bogus", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreatePayment(t *testing.T) {
	const body = `{"source_id":"cnon:card-nonce-ok","amount":100,"currency":"USD","idempotency_key":"k-1"}`

	t.Run("new payment", func(t *testing.T) {
		h, m := newTestRouter(t, config.Server{})
		m.checkout.EXPECT().
			Charge(gomock.Any(), models.ChargeRequest{SourceID: "cnon:card-nonce-ok", Amount: 100, Currency: "USD", IdempotencyKey: "k-1"}).
			Return(models.ChargeResult{
				Attempt: models.PaymentAttempt{IdempotencyKey: "k-1", Status: models.AttemptSucceeded, PaymentID: "P1"},
				Payment: &models.Payment{ID: "P1"},
			}, nil)

		rec := doRequest(t, h, http.MethodPost, "/api/payments", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		result := decodeBody[models.ChargeResult](t, rec)
		assert.Equal(t, "P1", result.Attempt.PaymentID)
		assert.False(t, result.Replayed)
	})

	t.Run("replayed payment", func(t *testing.T) {
		h, m := newTestRouter(t, config.Server{})
		m.checkout.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(models.ChargeResult{
			Attempt:  models.PaymentAttempt{IdempotencyKey: "k-1", Status: models.AttemptSucceeded, PaymentID: "P1"},
			Replayed: true,
		}, nil)

		rec := doRequest(t, h, http.MethodPost, "/api/payments", body)

		require.Equal(t, http.StatusOK, rec.Code)
		result := decodeBody[models.ChargeResult](t, rec)
		assert.True(t, result.Replayed)
		assert.Nil(t, result.Payment)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newTestRouter(t, config.Server{})

		rec := doRequest(t, h, http.MethodPost, "/api/payments", `{"amount":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"`+app.MsgInvalidJSONBody+`"}`, rec.Body.String())
	})

	errCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid charge", fmt.Errorf("%w: amount must be positive", service.ErrInvalidCharge), http.StatusBadRequest},
		{"declined", fmt.Errorf("%w: %w", service.ErrPaymentDeclined, &square.APIError{StatusCode: http.StatusBadRequest, Errors: []models.Error{{Code: "CARD_DECLINED"}}}), http.StatusPaymentRequired},
		{"key reused", service.ErrIdempotencyKeyReused, http.StatusConflict},
		{"ledger busy", fmt.Errorf("reserve payment attempt: %w", store.ErrTransient), http.StatusServiceUnavailable},
		{"square down", fmt.Errorf("create payment: %w", &square.APIError{StatusCode: http.StatusBadGateway}), http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range errCases {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestRouter(t, config.Server{})
			m.checkout.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(models.ChargeResult{}, tt.err)

			rec := doRequest(t, h, http.MethodPost, "/api/payments", body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestCreatePayment_InternalErrorIsNotLeaked(t *testing.T) {
	h, m := newTestRouter(t, config.Server{})
	m.checkout.EXPECT().Charge(gomock.Any(), gomock.Any()).
		Return(models.ChargeResult{}, fmt.Errorf("%w: password authentication failed", store.ErrExecutingStatement))

	rec := doRequest(t, h, http.MethodPost, "/api/payments", `{"source_id":"x","amount":1,"currency":"USD"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"`+app.MsgInternalServerError+`"}`, rec.Body.String())
}

func TestListPayments(t *testing.T) {
	t.Run("limit is passed through", func(t *testing.T) {
		h, m := newTestRouter(t, config.Server{})
		m.checkout.EXPECT().ListAttempts(gomock.Any(), uint64(5)).
			Return([]models.PaymentAttempt{{IdempotencyKey: "k-1"}, {IdempotencyKey: "k-2"}}, nil)

		rec := doRequest(t, h, http.MethodGet, "/api/payments?limit=5", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[attemptsResponse](t, rec)
		assert.Len(t, body.Attempts, 2)
	})

	t.Run("no limit", func(t *testing.T) {
		h, m := newTestRouter(t, config.Server{})
		m.checkout.EXPECT().ListAttempts(gomock.Any(), uint64(0)).Return(nil, nil)

		rec := doRequest(t, h, http.MethodGet, "/api/payments", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"attempts":[]}`, rec.Body.String())
	})

	t.Run("bad limit", func(t *testing.T) {
		h, _ := newTestRouter(t, config.Server{})

		rec := doRequest(t, h, http.MethodGet, "/api/payments?limit=-1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetPayment(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, m := newTestRouter(t, config.Server{})
		m.checkout.EXPECT().GetAttempt(gomock.Any(), "k-1").
			Return(models.PaymentAttempt{IdempotencyKey: "k-1", Status: models.AttemptPending}, nil)

		rec := doRequest(t, h, http.MethodGet, "/api/payments/k-1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		attempt := decodeBody[models.PaymentAttempt](t, rec)
		assert.Equal(t, models.AttemptPending, attempt.Status)
	})

	t.Run("not found", func(t *testing.T) {
		h, m := newTestRouter(t, config.Server{})
		m.checkout.EXPECT().GetAttempt(gomock.Any(), "missing").Return(models.PaymentAttempt{}, store.ErrAttemptNotFound)

		rec := doRequest(t, h, http.MethodGet, "/api/payments/missing", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUnsupportedMethodIsNotFound(t *testing.T) {
	h, _ := newTestRouter(t, config.Server{})

	rec := doRequest(t, h, http.MethodDelete, "/api/health", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>checkout</h1>"), 0o600))

	h, _ := newTestRouter(t, config.Server{StaticDir: dir})

	rec := doRequest(t, h, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "checkout")
}

func TestNoStaticDir(t *testing.T) {
	h, _ := newTestRouter(t, config.Server{})

	rec := doRequest(t, h, http.MethodGet, "/index.html", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTraceID(t *testing.T) {
	h, _ := newTestRouter(t, config.Server{})

	t.Run("echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set(traceIDHeader, "trace-42")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
	})

	t.Run("generated", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/health", "")

		assert.Len(t, rec.Header().Get(traceIDHeader), 36)
	})
}

func TestGzipResponse(t *testing.T) {
	h, _ := newTestRouter(t, config.Server{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Contains(t, rec.Header().Values("Vary"), "Accept-Encoding")

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(plain))
}

func TestGzipRequest(t *testing.T) {
	h, m := newTestRouter(t, config.Server{})
	m.checkout.EXPECT().
		Charge(gomock.Any(), gomock.Cond(func(req models.ChargeRequest) bool { return req.SourceID == "cnon:gz" })).
		Return(models.ChargeResult{Attempt: models.PaymentAttempt{IdempotencyKey: "k"}}, nil)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"source_id":"cnon:gz","amount":1,"currency":"USD"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/payments", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCORS(t *testing.T) {
	h, _ := newTestRouter(t, config.Server{AllowedOrigins: []string{"http://shop.test"}})

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "http://shop.test")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "http://shop.test", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "http://evil.test")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRecoverer(t *testing.T) {
	h, m := newTestRouter(t, config.Server{})
	m.catalog.EXPECT().ListLocations(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Location, error) {
		panic("boom")
	})

	rec := doRequest(t, h, http.MethodGet, "/api/locations", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequestTimeout(t *testing.T) {
	h, m := newTestRouter(t, config.Server{RequestTimeout: time.Millisecond})
	m.catalog.EXPECT().ListLocations(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Location, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	rec := doRequest(t, h, http.MethodGet, "/api/locations", "")

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestRequestTimeout_WrapsWholeRouter(t *testing.T) {
	services := &service.Services{}
	dir := t.TempDir()

	plain := NewHandler(services, config.Server{StaticDir: dir}, logger.Nop()).Init()
	timed := NewHandler(services, config.Server{StaticDir: dir, RequestTimeout: time.Second}, logger.Nop()).Init()

	// Static files are served by the root router, so a root-level middleware
	// covers them as well as the API routes.
	require.Len(t, timed.Middlewares(), len(plain.Middlewares())+1)
}
