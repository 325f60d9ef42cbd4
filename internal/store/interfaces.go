package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// LedgerRepository persists the singleton ledger document.
type LedgerRepository interface {
	// Get returns the stored document bytes verbatim.
	Get(ctx context.Context) (models.LedgerDocument, error)
	// Put replaces the stored document in a single statement.
	Put(ctx context.Context, doc models.LedgerDocument) error
	// EnsureInitialized inserts the default document unless a row exists.
	EnsureInitialized(ctx context.Context) error
	// Ping checks database connectivity.
	Ping(ctx context.Context) error
}
