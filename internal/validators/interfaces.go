// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks ledger documents before they replace the stored
// one.
//
// By default a document only has to be a JSON object. In strict mode the
// ledger shape is enforced as well: a numeric initialBalance and an array of
// transaction objects with numeric amounts. Numbers are checked on the raw
// JSON text, so quoted numbers are rejected.
package validators

import "context"

// Validator checks a value, optionally restricted to the named checks.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
