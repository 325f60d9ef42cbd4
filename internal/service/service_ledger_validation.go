package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// LedgerValidationService rejects malformed documents before they reach the
// wrapped LedgerService. Reads pass through untouched.
type LedgerValidationService struct {
	inner     LedgerService
	validator validators.Validator
}

func NewLedgerValidationService(strict bool) LedgerServiceWrapper {
	return &LedgerValidationService{
		validator: validators.NewLedgerValidator(strict),
	}
}

func (v *LedgerValidationService) GetLedger(ctx context.Context) (models.LedgerDocument, error) {
	return v.inner.GetLedger(ctx)
}

func (v *LedgerValidationService) ReplaceLedger(ctx context.Context, doc models.LedgerDocument) error {
	if err := v.validator.Validate(ctx, doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLedger, err)
	}

	return v.inner.ReplaceLedger(ctx, doc)
}

func (v *LedgerValidationService) EnsureInitialized(ctx context.Context) error {
	return v.inner.EnsureInitialized(ctx)
}

func (v *LedgerValidationService) CheckStorage(ctx context.Context) error {
	return v.inner.CheckStorage(ctx)
}

func (v *LedgerValidationService) Wrap(wrapped LedgerService) LedgerService {
	v.inner = wrapped
	return v
}
