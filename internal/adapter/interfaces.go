// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a running ledger server over HTTP.
//
// Errors returned by [LedgerClient] wrap the sentinels in errors.go, so
// callers can branch with [errors.Is] (for example [ErrUnauthorized] for 401
// or [ErrRejected] for 422).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// LedgerClient is the remote view of the ledger used by ledgerctl.
type LedgerClient interface {
	// Ping checks that the server is alive. It needs no password.
	Ping(ctx context.Context) error

	// Pull downloads the stored document exactly as the server returns it.
	Pull(ctx context.Context) (models.LedgerDocument, error)

	// Push replaces the stored document with doc.
	Push(ctx context.Context, doc models.LedgerDocument) error
}
