package validators

import (
	"context"

	"github.com/MKhiriev/go-square/models"
)

// Field name constants select the checks Validate runs.
const (
	// FieldIdempotencyKey limits a client supplied key to Square's maximum
	// length. An empty key is valid; one is generated.
	FieldIdempotencyKey = "idempotency_key"

	// FieldSourceID requires a payment source.
	FieldSourceID = "source_id"

	// FieldAmount requires a positive amount in the currency's smallest
	// unit.
	FieldAmount = "amount"

	// FieldCurrency requires three upper-case letters.
	FieldCurrency = "currency"

	// FieldLocationID requires a location.
	FieldLocationID = "location_id"

	// FieldCatalogTypes checks every entry of a catalog type filter.
	FieldCatalogTypes = "types"
)

// MaxIdempotencyKeyLength is the longest key Square accepts.
const MaxIdempotencyKeyLength = 45

var allowedCatalogTypes = []models.CatalogObjectType{
	models.CatalogItemType,
	models.CatalogItemVariationType,
	models.CatalogCategoryType,
	models.CatalogTaxType,
	models.CatalogDiscountType,
	models.CatalogImageType,
	models.CatalogModifierListType,
	models.CatalogModifierType,
}

// CheckoutValidator validates the example server's inputs: charge requests
// and catalog type filters.
type CheckoutValidator struct{}

func NewCheckoutValidator() Validator {
	return &CheckoutValidator{}
}

func (v *CheckoutValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ChargeRequest:
		return v.validateChargeRequest(ctx, value, fields...)
	case *models.ChargeRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateChargeRequest(ctx, *value, fields...)

	case []models.CatalogObjectType:
		return v.validateCatalogTypes(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CheckoutValidator) validateChargeRequest(_ context.Context, req models.ChargeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdempotencyKey, FieldSourceID, FieldAmount, FieldCurrency, FieldLocationID}
	}

	for _, f := range fields {
		switch f {
		case FieldIdempotencyKey:
			if len(req.IdempotencyKey) > MaxIdempotencyKeyLength {
				return ErrInvalidIdempotencyKey
			}
		case FieldSourceID:
			if req.SourceID == "" {
				return ErrEmptySourceID
			}
		case FieldAmount:
			if req.Amount <= 0 {
				return ErrInvalidAmount
			}
		case FieldCurrency:
			if !isCurrencyCode(string(req.Currency)) {
				return ErrInvalidCurrency
			}
		case FieldLocationID:
			if req.LocationID == "" {
				return ErrEmptyLocationID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CheckoutValidator) validateCatalogTypes(_ context.Context, types []models.CatalogObjectType, fields ...string) error {
	for _, f := range fields {
		if f != FieldCatalogTypes {
			return ErrUnknownField
		}
	}

	for _, t := range types {
		if !isAllowedCatalogType(t) {
			return ErrInvalidCatalogType
		}
	}
	return nil
}

func isAllowedCatalogType(t models.CatalogObjectType) bool {
	for _, allowed := range allowedCatalogTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
