// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// ── GET /data ────────────────────────────────────────────────────────────────

func TestGetData_ReturnsStoredBytesVerbatim(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectPassword()
	stored := models.LedgerDocument(`{"initialBalance":1.50,"transactions":[{"amount":-1e2}]}`)
	deps.ledger.EXPECT().GetLedger(gomock.Any()).Return(stored, nil)

	rr := doRequest(h.Init(), http.MethodGet, "/data", nil, withPasswordHeader(testPassword))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, string(stored), rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestGetData_ETag(t *testing.T) {
	stored := models.LedgerDocument(`{"initialBalance":7,"transactions":[]}`)
	etag := utils.DocumentETag(stored)

	tests := []struct {
		name        string
		ifNoneMatch string
		wantStatus  int
		wantBody    string
	}{
		{name: "no condition", wantStatus: http.StatusOK, wantBody: string(stored)},
		{name: "current version", ifNoneMatch: etag, wantStatus: http.StatusNotModified},
		{name: "stale version", ifNoneMatch: `"0000"`, wantStatus: http.StatusOK, wantBody: string(stored)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			deps.expectPassword()
			deps.ledger.EXPECT().GetLedger(gomock.Any()).Return(stored, nil)

			headers := withPasswordHeader(testPassword)
			if tt.ifNoneMatch != "" {
				headers["If-None-Match"] = tt.ifNoneMatch
			}
			rr := doRequest(h.Init(), http.MethodGet, "/data", nil, headers)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, etag, rr.Header().Get("ETag"))
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestGetData_StorageErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{name: "unavailable", err: store.ErrStorageUnavailable, wantStatus: http.StatusServiceUnavailable, wantDetail: `{"detail":"storage unavailable"}`},
		{name: "missing row", err: store.ErrLedgerNotFound, wantStatus: http.StatusInternalServerError, wantDetail: `{"detail":"internal server error"}`},
		{name: "query", err: errors.Join(store.ErrExecutingQuery, errors.New("pq: secret table")), wantStatus: http.StatusInternalServerError, wantDetail: `{"detail":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			deps.expectPassword()
			deps.ledger.EXPECT().GetLedger(gomock.Any()).Return(nil, tt.err)

			rr := doRequest(h.Init(), http.MethodGet, "/data", nil, withPasswordHeader(testPassword))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantDetail, rr.Body.String())
		})
	}
}

// ── PUT /data ────────────────────────────────────────────────────────────────

func TestPutData_Success(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectPassword()
	body := `{"initialBalance":100,"transactions":[{"amount":-10,"note":"coffee"}]}`
	deps.ledger.EXPECT().ReplaceLedger(gomock.Any(), models.LedgerDocument(body)).Return(nil)

	rr := doRequest(h.Init(), http.MethodPut, "/data", []byte(body), withPasswordHeader(testPassword))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
}

func TestPutData_InvalidLedgerIs422(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectPassword()
	deps.ledger.EXPECT().ReplaceLedger(gomock.Any(), gomock.Any()).
		Return(errors.Join(service.ErrInvalidLedger, validators.ErrNotJSONObject))

	rr := doRequest(h.Init(), http.MethodPut, "/data", []byte(`[1,2]`), withPasswordHeader(testPassword))

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "body must be a JSON object")
}

func TestPutData_StorageUnavailableIs503(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectPassword()
	deps.ledger.EXPECT().ReplaceLedger(gomock.Any(), gomock.Any()).Return(store.ErrStorageUnavailable)

	rr := doRequest(h.Init(), http.MethodPut, "/data", []byte(`{}`), withPasswordHeader(testPassword))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestPutData_BodyTooLarge(t *testing.T) {
	h, deps := newTestHandler(t)
	h.cfg.MaxBodyBytes = 16
	deps.expectPassword()

	rr := doRequest(h.Init(), http.MethodPut, "/data", []byte(`{"initialBalance":0,"transactions":[]}`), withPasswordHeader(testPassword))

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Contains(t, rr.Body.String(), "request body too large")
}

func TestPutData_UnauthorizedNeverReachesService(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectPassword()
	// no ReplaceLedger expectation: any call fails the test

	rr := doRequest(h.Init(), http.MethodPut, "/data", []byte(`{"initialBalance":9}`), withPasswordHeader("nope"))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"detail":"invalid password"}`, rr.Body.String())
}

func TestPutData_EmptyBodyIsPassedToValidation(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.expectPassword()
	deps.ledger.EXPECT().ReplaceLedger(gomock.Any(), gomock.Len(0)).
		Return(errors.Join(service.ErrInvalidLedger, validators.ErrMalformedJSON))

	rr := doRequest(h.Init(), http.MethodPut, "/data", nil, withPasswordHeader(testPassword))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Body.String(), `{"detail":`))
}
