// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the example server's inputs before they reach
// the ledger or Square.
//
// A Validator accepts any value it knows how to check and an optional list
// of field names restricting the checks. Errors are sentinel values so the
// HTTP layer can map them with errors.Is.
package validators

import "context"

// Validator validates a value, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
