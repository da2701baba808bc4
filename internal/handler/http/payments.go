package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-square/internal/app"
	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/MKhiriev/go-square/internal/utils"
	"github.com/MKhiriev/go-square/models"
)

// maxChargeBodySize caps the POST /api/payments body.
const maxChargeBodySize = 64 << 10

type attemptsResponse struct {
	Attempts []models.PaymentAttempt `json:"attempts"`
}

// createPayment answers 201 for a payment taken now and 200 when the result
// was replayed from the ledger.
func (h *Handler) createPayment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ChargeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChargeBodySize)).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("invalid charge body")
		utils.WriteError(w, app.MsgInvalidJSONBody, http.StatusBadRequest)
		return
	}

	result, err := h.services.CheckoutService.Charge(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	log.Info().
		Str("idempotency_key", result.Attempt.IdempotencyKey).
		Str("payment_id", result.Attempt.PaymentID).
		Bool("replayed", result.Replayed).
		Msg("charge processed")

	utils.WriteJSON(w, result, status)
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.WriteError(w, app.MsgInvalidLimit, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	attempts, err := h.services.CheckoutService.ListAttempts(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if attempts == nil {
		attempts = []models.PaymentAttempt{}
	}

	utils.WriteJSON(w, attemptsResponse{Attempts: attempts}, http.StatusOK)
}

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
	attempt, err := h.services.CheckoutService.GetAttempt(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, attempt, http.StatusOK)
}
