package adapter

import "errors"

var (
	ErrUnauthorized   = errors.New("server rejected the password")
	ErrRejected       = errors.New("server rejected the document")
	ErrUnavailable    = errors.New("server storage is unavailable")
	ErrServer         = errors.New("server error")
	ErrInvalidAddress = errors.New("invalid server address")
	ErrBadResponse    = errors.New("unexpected server response")
)
