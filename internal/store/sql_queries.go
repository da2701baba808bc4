// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-square/models"
)

const paymentAttemptsTable = "payment_attempts"

// paymentAttemptColumns is the SELECT list; scanAttempt reads in this order.
var paymentAttemptColumns = []string{
	"idempotency_key",
	"location_id",
	"amount",
	"currency",
	"source_fingerprint",
	"status",
	"payment_id",
	"error_code",
	"created_at",
	"updated_at",
}

func buildInsertAttemptQuery(b sq.StatementBuilderType, a models.PaymentAttempt) (string, []any, error) {
	return b.Insert(paymentAttemptsTable).
		Columns(paymentAttemptColumns...).
		Values(
			a.IdempotencyKey,
			a.LocationID,
			a.Amount,
			string(a.Currency),
			a.SourceFingerprint,
			string(a.Status),
			a.PaymentID,
			a.ErrorCode,
			a.CreatedAt,
			a.UpdatedAt,
		).
		ToSql()
}

func buildSelectAttemptQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select(paymentAttemptColumns...).
		From(paymentAttemptsTable).
		Where(sq.Eq{"idempotency_key": key}).
		ToSql()
}

func buildListAttemptsQuery(b sq.StatementBuilderType, limit uint64) (string, []any, error) {
	return b.Select(paymentAttemptColumns...).
		From(paymentAttemptsTable).
		OrderBy("created_at DESC", "idempotency_key").
		Limit(limit).
		ToSql()
}

// buildListPendingAttemptsQuery selects PENDING rows created before cutoff,
// oldest first.
func buildListPendingAttemptsQuery(b sq.StatementBuilderType, cutoff time.Time, limit uint64) (string, []any, error) {
	return b.Select(paymentAttemptColumns...).
		From(paymentAttemptsTable).
		Where(sq.Eq{"status": string(models.AttemptPending)}).
		Where(sq.Lt{"created_at": cutoff}).
		OrderBy("created_at", "idempotency_key").
		Limit(limit).
		ToSql()
}

// buildCompleteAttemptQuery only touches PENDING rows, so an outcome is
// recorded at most once.
func buildCompleteAttemptQuery(b sq.StatementBuilderType, key string, o Outcome) (string, []any, error) {
	return b.Update(paymentAttemptsTable).
		Set("status", string(o.Status)).
		Set("payment_id", o.PaymentID).
		Set("error_code", o.ErrorCode).
		Set("updated_at", o.At).
		Where(sq.Eq{
			"idempotency_key": key,
			"status":          string(models.AttemptPending),
		}).
		ToSql()
}
