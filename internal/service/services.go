package service

import (
	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	LedgerService  LedgerService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of storages. The ledger service is
// wrapped with validation according to cfg.App.StrictLedger.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	ledgerService := NewLedgerValidationService(cfg.App.StrictLedger).
		Wrap(NewLedgerService(storages.LedgerRepository, logger))

	return &Services{
		AuthService:    authService,
		LedgerService:  ledgerService,
		AppInfoService: appInfoService,
	}, nil
}
