package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// LedgerService reads and replaces the singleton ledger document.
type LedgerService interface {
	GetLedger(ctx context.Context) (models.LedgerDocument, error)
	ReplaceLedger(ctx context.Context, doc models.LedgerDocument) error
	EnsureInitialized(ctx context.Context) error
	CheckStorage(ctx context.Context) error
}

// AuthService verifies the shared secret presented by a caller.
type AuthService interface {
	CheckPassword(ctx context.Context, candidate string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// LedgerServiceWrapper defines middleware composition for LedgerService.
// Implementations wrap an existing LedgerService to add behavior such as
// logging or validating.
type LedgerServiceWrapper interface {
	Wrap(LedgerService) LedgerService // returns a decorated LedgerService applying additional behavior
}
