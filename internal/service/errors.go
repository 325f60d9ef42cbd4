package service

import "errors"

var (
	// ErrInvalidLedger wraps every validation failure of a written document.
	ErrInvalidLedger = errors.New("invalid ledger document")

	ErrMissingPassword = errors.New("missing password")
	ErrWrongPassword   = errors.New("wrong password")

	ErrPasswordNotConfigured = errors.New("shared password is not configured")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
