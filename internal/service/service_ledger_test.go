// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/mock"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLedgerSvc(t *testing.T) (LedgerService, *mock.MockLedgerRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLedgerRepository(ctrl)
	return NewLedgerService(repo, logger.Nop()), repo
}

// ── GetLedger ────────────────────────────────────────────────────────────────

func TestLedgerService_GetLedger_ReturnsRepositoryBytes(t *testing.T) {
	svc, repo := newTestLedgerSvc(t)
	ctx := context.Background()
	stored := models.LedgerDocument(`{"initialBalance":3,"transactions":[]}`)

	repo.EXPECT().Get(ctx).Return(stored, nil)

	got, err := svc.GetLedger(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestLedgerService_GetLedger_PropagatesError(t *testing.T) {
	svc, repo := newTestLedgerSvc(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx).Return(nil, store.ErrStorageUnavailable)

	_, err := svc.GetLedger(ctx)

	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

// ── ReplaceLedger ────────────────────────────────────────────────────────────

func TestLedgerService_ReplaceLedger_StoresCompactForm(t *testing.T) {
	svc, repo := newTestLedgerSvc(t)
	ctx := context.Background()

	repo.EXPECT().
		Put(ctx, models.LedgerDocument(`{"initialBalance":1,"transactions":[{"amount":2}]}`)).
		Return(nil)

	err := svc.ReplaceLedger(ctx, models.LedgerDocument("{\n  \"initialBalance\": 1,\n  \"transactions\": [ {\"amount\": 2} ]\n}"))

	require.NoError(t, err)
}

func TestLedgerService_ReplaceLedger_MalformedNeverReachesRepository(t *testing.T) {
	svc, _ := newTestLedgerSvc(t)

	err := svc.ReplaceLedger(context.Background(), models.LedgerDocument(`{"initialBalance":`))

	assert.ErrorIs(t, err, ErrInvalidLedger)
}

func TestLedgerService_ReplaceLedger_PropagatesRepositoryError(t *testing.T) {
	svc, repo := newTestLedgerSvc(t)
	ctx := context.Background()
	dbErr := errors.New("disk full")

	repo.EXPECT().Put(ctx, gomock.Any()).Return(dbErr)

	err := svc.ReplaceLedger(ctx, models.LedgerDocument(`{}`))

	assert.ErrorIs(t, err, dbErr)
}

// ── EnsureInitialized / CheckStorage ─────────────────────────────────────────

func TestLedgerService_EnsureInitialized_Delegates(t *testing.T) {
	svc, repo := newTestLedgerSvc(t)
	ctx := context.Background()

	repo.EXPECT().EnsureInitialized(ctx).Return(nil)

	assert.NoError(t, svc.EnsureInitialized(ctx))
}

func TestLedgerService_CheckStorage_Delegates(t *testing.T) {
	svc, repo := newTestLedgerSvc(t)
	ctx := context.Background()

	repo.EXPECT().Ping(ctx).Return(store.ErrStorageUnavailable)

	assert.ErrorIs(t, svc.CheckStorage(ctx), store.ErrStorageUnavailable)
}
