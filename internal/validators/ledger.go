package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// Field name constants used to restrict validation to a subset of checks.
const (
	// FieldObject requires the document to be a well-formed JSON object.
	FieldObject = "object"

	// FieldInitialBalance requires initialBalance to be a JSON number.
	FieldInitialBalance = "initialBalance"

	// FieldTransactions requires transactions to be an array of objects
	// whose optional amount is a JSON number.
	FieldTransactions = "transactions"
)

// LedgerValidator implements [Validator] for ledger documents.
//
// In the default mode only the JSON object check runs. In strict mode the
// ledger shape is checked as well.
type LedgerValidator struct {
	strict bool
}

// NewLedgerValidator constructs a LedgerValidator. strict enables the
// initialBalance and transactions checks.
func NewLedgerValidator(strict bool) Validator {
	return &LedgerValidator{strict: strict}
}

// Validate accepts models.LedgerDocument, *models.LedgerDocument,
// json.RawMessage or []byte. Without fields, the object check runs and, in
// strict mode, the shape checks follow.
func (v *LedgerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LedgerDocument:
		return v.validateLedger(ctx, value, fields...)
	case *models.LedgerDocument:
		if value == nil {
			return ErrMalformedJSON
		}
		return v.validateLedger(ctx, *value, fields...)
	case json.RawMessage:
		return v.validateLedger(ctx, models.LedgerDocument(value), fields...)
	case []byte:
		return v.validateLedger(ctx, models.LedgerDocument(value), fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *LedgerValidator) validateLedger(ctx context.Context, doc models.LedgerDocument, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldObject}
		if v.strict {
			fields = append(fields, FieldInitialBalance, FieldTransactions)
		}
	}

	var members map[string]json.RawMessage
	for _, f := range fields {
		if members == nil {
			var err error
			if members, err = objectMembers(doc); err != nil {
				return err
			}
		}

		switch f {
		case FieldObject:
		case FieldInitialBalance:
			raw, ok := members["initialBalance"]
			if !ok || !isNumber(raw) {
				return ErrInvalidInitialBalance
			}
		case FieldTransactions:
			if err := validateTransactions(members["transactions"]); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// objectMembers parses doc as a JSON object. A literal null is not an object.
func objectMembers(doc models.LedgerDocument) (map[string]json.RawMessage, error) {
	if !json.Valid(doc) {
		return nil, ErrMalformedJSON
	}

	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrNotJSONObject
	}

	members := make(map[string]json.RawMessage)
	if err := json.Unmarshal(trimmed, &members); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotJSONObject, err)
	}
	return members, nil
}

func validateTransactions(raw json.RawMessage) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return ErrInvalidTransactions
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTransactions, err)
	}

	for i, item := range items {
		tx := bytes.TrimSpace(item)
		if len(tx) == 0 || tx[0] != '{' {
			return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidTransaction)
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(tx, &fields); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidTransaction)
		}

		if amount, ok := fields["amount"]; ok && !isNumber(amount) {
			return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidAmount)
		}
	}

	return nil
}

// isNumber reports whether raw is a bare JSON number. Quoted numerals are
// rejected because decimal.NewFromString does not accept the quotes.
func isNumber(raw json.RawMessage) bool {
	_, err := decimal.NewFromString(string(bytes.TrimSpace(raw)))
	return err == nil
}
