package square

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-square/models"
	"github.com/go-resty/resty/v2"
)

var (
	ErrBadRequest          = errors.New("square: bad request")
	ErrPaymentRequired     = errors.New("square: payment required")
	ErrUnauthorized        = errors.New("square: unauthorized")
	ErrForbidden           = errors.New("square: forbidden")
	ErrNotFound            = errors.New("square: not found")
	ErrConflict            = errors.New("square: conflict")
	ErrRateLimited         = errors.New("square: rate limited")
	ErrInternalServerError = errors.New("square: internal server error")
	ErrServiceUnavailable  = errors.New("square: service unavailable")

	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("square: invalid request")
)

// APIError is a non-2xx answer from Square. It unwraps to the sentinel of
// its status code, so errors.Is(err, ErrNotFound) works on any call.
type APIError struct {
	StatusCode int
	Errors     []models.Error
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("square: http %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	parts := make([]string, 0, len(e.Errors))
	for _, se := range e.Errors {
		part := se.Code
		if se.Detail != "" {
			part += ": " + se.Detail
		}
		parts = append(parts, part)
	}
	return fmt.Sprintf("square: http %d: %s", e.StatusCode, strings.Join(parts, "; "))
}

func (e *APIError) Unwrap() error {
	return statusSentinel(e.StatusCode)
}

// HasCode reports whether Square returned the given error code, e.g.
// "CARD_DECLINED".
func (e *APIError) HasCode(code string) bool {
	for _, se := range e.Errors {
		if se.Code == code {
			return true
		}
	}
	return false
}

func statusSentinel(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusPaymentRequired:
		return ErrPaymentRequired
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	}
	if code >= http.StatusInternalServerError {
		return ErrInternalServerError
	}
	return nil
}

type errorBody struct {
	Errors []models.Error `json:"errors"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}
	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		apiErr.Errors = body.Errors
	}
	return apiErr
}

// ValidationError is a request rejected before any HTTP call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("square: invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func required(field string) error {
	return invalid(field, "required")
}
