package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-square/internal/app"
	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/MKhiriev/go-square/internal/service"
	"github.com/MKhiriev/go-square/internal/store"
	"github.com/MKhiriev/go-square/internal/utils"
	"github.com/MKhiriev/go-square/square"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is checked in order and the first match wins. Store errors
// wrap the driver error, which is ctx.Err() once the request deadline
// passes, so the deadline comes before the generic SQL errors.
var errorStatuses = []errorStatus{
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{service.ErrInvalidCharge, http.StatusBadRequest},
	{service.ErrInvalidCatalogFilter, http.StatusBadRequest},
	{service.ErrIdempotencyKeyReused, http.StatusConflict},
	{service.ErrPaymentDeclined, http.StatusPaymentRequired},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},

	{square.ErrValidation, http.StatusBadRequest},
	{square.ErrBadRequest, http.StatusPaymentRequired},
	{square.ErrPaymentRequired, http.StatusPaymentRequired},
	{square.ErrUnauthorized, http.StatusBadGateway},
	{square.ErrForbidden, http.StatusBadGateway},
	{square.ErrNotFound, http.StatusBadGateway},
	{square.ErrInternalServerError, http.StatusBadGateway},
	{square.ErrServiceUnavailable, http.StatusBadGateway},
	{square.ErrConflict, http.StatusConflict},
	{square.ErrRateLimited, http.StatusServiceUnavailable},

	{store.ErrAttemptNotFound, http.StatusNotFound},
	{store.ErrTransient, http.StatusServiceUnavailable},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with its mapped status. The text
// of internal errors is not sent to the caller.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
		msg = app.MsgInternalServerError
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, msg, status)
}
