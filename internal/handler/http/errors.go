// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrRequestBodyTooLarge is returned when the body exceeds the configured
	// limit.
	ErrRequestBodyTooLarge = errors.New("request body too large")

	// ErrReadingRequestBody is returned when the body cannot be read, for
	// example because the client disconnected or sent broken gzip data.
	ErrReadingRequestBody = errors.New("error reading request body")
)

// Details sent to clients. Internal error text never leaves the server for
// 5xx responses.
const (
	detailInvalidPassword    = "invalid password"
	detailStorageUnavailable = "storage unavailable"
	detailInternal           = "internal server error"
	detailNotFound           = "Not Found"
	detailMethodNotAllowed   = "Method Not Allowed"
)
