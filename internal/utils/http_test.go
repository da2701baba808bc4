package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-square/models"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		status int
		body   string
	}{
		{
			name:   "payment attempt",
			data:   models.PaymentAttempt{IdempotencyKey: "key-1", Amount: 1500, Currency: models.CurrencyUSD, Status: models.AttemptSucceeded},
			status: http.StatusCreated,
		},
		{
			name:   "nil",
			data:   nil,
			status: http.StatusOK,
			body:   "null",
		},
		{
			name:   "empty list",
			data:   []models.Location{},
			status: http.StatusOK,
			body:   "[]",
		},
		{
			name:   "not found status",
			data:   map[string]string{"error": "not found"},
			status: http.StatusNotFound,
			body:   `{"error":"not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, w.Body.Len(), n)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Cache-Control"))
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, "card declined", http.StatusPaymentRequired)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.JSONEq(t, `{"error":"card declined"}`, w.Body.String())
}
