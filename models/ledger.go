package models

import (
	"bytes"
	"encoding/json"
)

// LedgerID is the primary key of the only ledger row that ever exists.
const LedgerID = 1

// defaultLedger is the payload written on first startup.
const defaultLedger = `{"initialBalance":0,"transactions":[]}`

// LedgerDocument is the raw JSON of the single stored ledger.
//
// Semantically it is an object of the form
//
//	{"initialBalance": <number>, "transactions": [<object>, ...]}
//
// but the storage layer treats it as opaque bytes: it is written as received
// (after compaction) and served back verbatim.
type LedgerDocument []byte

// NewDefaultLedgerDocument returns a fresh copy of the empty ledger
// {"initialBalance":0,"transactions":[]}.
func NewDefaultLedgerDocument() LedgerDocument {
	return LedgerDocument(defaultLedger)
}

// MarshalJSON returns the stored bytes unchanged. An empty document is
// encoded as null.
func (d LedgerDocument) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

// UnmarshalJSON keeps a copy of the raw JSON value.
func (d *LedgerDocument) UnmarshalJSON(b []byte) error {
	*d = append((*d)[0:0], b...)
	return nil
}

// Compact returns the document with insignificant whitespace removed.
// It fails if the document is not valid JSON.
func (d LedgerDocument) Compact() (LedgerDocument, error) {
	buf := new(bytes.Buffer)
	if err := json.Compact(buf, d); err != nil {
		return nil, err
	}
	return LedgerDocument(buf.Bytes()), nil
}

func (d LedgerDocument) String() string {
	return string(d)
}
