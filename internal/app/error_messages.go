// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// example server's HTTP handlers.
//
// All Msg* constants are human-readable message strings written into
// {"error": ...} response bodies when the underlying error text must not
// reach the caller. Keeping them in one place keeps the wording consistent.
package app

const (
	// MsgInvalidJSONBody is returned when the request body cannot be
	// decoded as JSON or exceeds the size limit.
	MsgInvalidJSONBody = "invalid JSON body"

	// MsgInvalidLimit is returned when the limit query parameter is not a
	// non-negative integer.
	MsgInvalidLimit = "limit must be a non-negative integer"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs, e.g. a ledger query fails. The cause is logged.
	MsgInternalServerError = "internal server error"
)
