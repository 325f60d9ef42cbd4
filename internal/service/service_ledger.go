package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

type ledgerService struct {
	ledgerRepository store.LedgerRepository

	logger *logger.Logger
}

func NewLedgerService(ledgerRepository store.LedgerRepository, logger *logger.Logger) LedgerService {
	return &ledgerService{
		ledgerRepository: ledgerRepository,
		logger:           logger,
	}
}

func (l *ledgerService) GetLedger(ctx context.Context) (models.LedgerDocument, error) {
	return l.ledgerRepository.Get(ctx)
}

// ReplaceLedger stores doc in compact form. The previous document is
// discarded entirely.
func (l *ledgerService) ReplaceLedger(ctx context.Context, doc models.LedgerDocument) error {
	compacted, err := doc.Compact()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLedger, err)
	}

	return l.ledgerRepository.Put(ctx, compacted)
}

func (l *ledgerService) EnsureInitialized(ctx context.Context) error {
	return l.ledgerRepository.EnsureInitialized(ctx)
}

func (l *ledgerService) CheckStorage(ctx context.Context) error {
	return l.ledgerRepository.Ping(ctx)
}
