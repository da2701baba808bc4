// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-square/models"
)

func validCharge() models.ChargeRequest {
	return models.ChargeRequest{
		SourceID:   "cnon:card-nonce-ok",
		Amount:     1000,
		Currency:   models.CurrencyUSD,
		LocationID: "L1",
	}
}

func TestCheckoutValidator_ChargeRequest(t *testing.T) {
	v := NewCheckoutValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *models.ChargeRequest)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.ChargeRequest) {}},
		{name: "valid with key", mutate: func(r *models.ChargeRequest) { r.IdempotencyKey = "k-1" }},
		{name: "key too long", mutate: func(r *models.ChargeRequest) { r.IdempotencyKey = strings.Repeat("k", 46) }, wantErr: ErrInvalidIdempotencyKey},
		{name: "missing source", mutate: func(r *models.ChargeRequest) { r.SourceID = "" }, wantErr: ErrEmptySourceID},
		{name: "zero amount", mutate: func(r *models.ChargeRequest) { r.Amount = 0 }, wantErr: ErrInvalidAmount},
		{name: "negative amount", mutate: func(r *models.ChargeRequest) { r.Amount = -5 }, wantErr: ErrInvalidAmount},
		{name: "lower-case currency", mutate: func(r *models.ChargeRequest) { r.Currency = "usd" }, wantErr: ErrInvalidCurrency},
		{name: "long currency", mutate: func(r *models.ChargeRequest) { r.Currency = "USDT" }, wantErr: ErrInvalidCurrency},
		{name: "missing location", mutate: func(r *models.ChargeRequest) { r.LocationID = "" }, wantErr: ErrEmptyLocationID},
		{
			name:   "scoped fields skip location",
			mutate: func(r *models.ChargeRequest) { r.LocationID = "" },
			fields: []string{FieldSourceID, FieldAmount},
		},
		{name: "unknown field", mutate: func(*models.ChargeRequest) {}, fields: []string{"nope"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCharge()
			tt.mutate(&req)

			err := v.Validate(ctx, req, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}

			// pointer form behaves the same
			errPtr := v.Validate(ctx, &req, tt.fields...)
			assert.Equal(t, err, errPtr)
		})
	}
}

func TestCheckoutValidator_CatalogTypes(t *testing.T) {
	v := NewCheckoutValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, []models.CatalogObjectType{}))
	require.NoError(t, v.Validate(ctx, []models.CatalogObjectType{models.CatalogItemType, models.CatalogTaxType}, FieldCatalogTypes))
	require.ErrorIs(t, v.Validate(ctx, []models.CatalogObjectType{"ITEMS"}), ErrInvalidCatalogType)
	require.ErrorIs(t, v.Validate(ctx, []models.CatalogObjectType{models.CatalogItemType}, FieldAmount), ErrUnknownField)
}

func TestCheckoutValidator_UnsupportedType(t *testing.T) {
	v := NewCheckoutValidator()

	require.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	require.ErrorIs(t, v.Validate(context.Background(), (*models.ChargeRequest)(nil)), ErrUnsupportedType)
}
