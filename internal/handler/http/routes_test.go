package http

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/metrics"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
)

// newIntegrationRouter wires the real stack on a temporary SQLite file.
func newIntegrationRouter(t *testing.T, strict bool, m *metrics.HTTPMetrics) *chi.Mux {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	cfg := config.StructuredConfig{
		App: config.App{Password: testPassword, Version: "test", StrictLedger: strict},
		Storage: config.Storage{DB: config.DB{
			DSN: "sqlite://" + filepath.Join(t.TempDir(), "ledger.db"),
		}},
		Server: testServerConfig(),
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	require.NoError(t, storages.LedgerRepository.EnsureInitialized(ctx))

	services, err := service.NewServices(storages, cfg, log)
	require.NoError(t, err)

	return NewHandler(services, cfg.Server, m, log).Init()
}

func TestRoutes_FreshStoreServesDefaultDocument(t *testing.T) {
	router := newIntegrationRouter(t, false, nil)

	rr := doRequest(router, http.MethodGet, "/data", nil, withPasswordHeader(testPassword))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"initialBalance":0,"transactions":[]}`, rr.Body.String())
}

func TestRoutes_PutThenGetRoundTrip(t *testing.T) {
	router := newIntegrationRouter(t, false, nil)
	doc := `{"initialBalance":250.75,"transactions":[{"amount":-20,"category":"food","date":"2026-01-02"}],"currency":"EUR"}`

	rr := doRequest(router, http.MethodPut, "/data", []byte(doc), withPasswordHeader(testPassword))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok":true}`, rr.Body.String())

	rr = doRequest(router, http.MethodGet, "/data", nil, withPasswordHeader(testPassword))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, doc, rr.Body.String())
}

func TestRoutes_PutReplacesWholeDocument(t *testing.T) {
	router := newIntegrationRouter(t, false, nil)
	auth := withPasswordHeader(testPassword)

	require.Equal(t, http.StatusOK, doRequest(router, http.MethodPut, "/data", []byte(`{"initialBalance":1,"extra":true}`), auth).Code)
	require.Equal(t, http.StatusOK, doRequest(router, http.MethodPut, "/data", []byte(`{"transactions":[]}`), auth).Code)

	rr := doRequest(router, http.MethodGet, "/data", nil, auth)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"transactions":[]}`, rr.Body.String())
}

func TestRoutes_Unauthorized(t *testing.T) {
	router := newIntegrationRouter(t, false, nil)

	for _, method := range []string{http.MethodGet, http.MethodPut} {
		for _, headers := range []map[string]string{nil, withPasswordHeader("wrong")} {
			rr := doRequest(router, method, "/data", []byte(`{"initialBalance":666}`), headers)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.JSONEq(t, `{"detail":"invalid password"}`, rr.Body.String())
		}
	}

	// rejected writes leave the document untouched
	rr := doRequest(router, http.MethodGet, "/data", nil, withPasswordHeader(testPassword))
	assert.JSONEq(t, `{"initialBalance":0,"transactions":[]}`, rr.Body.String())
}

func TestRoutes_RejectsNonObjects(t *testing.T) {
	router := newIntegrationRouter(t, false, nil)

	for _, body := range []string{`[1,2,3]`, `"text"`, `42`, `null`, `{"broken":`, ``} {
		rr := doRequest(router, http.MethodPut, "/data", []byte(body), withPasswordHeader(testPassword))
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, "body %q", body)
	}
}

func TestRoutes_StrictValidation(t *testing.T) {
	router := newIntegrationRouter(t, true, nil)
	auth := withPasswordHeader(testPassword)

	rr := doRequest(router, http.MethodPut, "/data", []byte(`{"initialBalance":"100","transactions":[]}`), auth)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "initialBalance")

	rr = doRequest(router, http.MethodPut, "/data", []byte(`{"initialBalance":100,"transactions":[{"amount":-5}]}`), auth)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRoutes_PingAndHealth(t *testing.T) {
	router := newIntegrationRouter(t, false, nil)

	rr := doRequest(router, http.MethodGet, "/ping", nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"pong":true}`, rr.Body.String())

	rr = doRequest(router, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(router, http.MethodGet, "/version", nil, nil)
	assert.Equal(t, "test", rr.Body.String())
}

func TestRoutes_MetricsOnlyWhenEnabled(t *testing.T) {
	rr := doRequest(newIntegrationRouter(t, false, nil), http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	router := newIntegrationRouter(t, false, metrics.NewHTTPMetrics())
	doRequest(router, http.MethodGet, "/ping", nil, nil)

	rr = doRequest(router, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `ledger_http_requests_total{method="GET",route="/ping",status="200"} 1`))
}

func TestRoutes_ETagFollowsWrites(t *testing.T) {
	router := newIntegrationRouter(t, false, nil)
	auth := withPasswordHeader(testPassword)

	first := doRequest(router, http.MethodGet, "/data", nil, auth).Header().Get("ETag")
	require.NotEmpty(t, first)

	cached := withPasswordHeader(testPassword)
	cached["If-None-Match"] = first
	assert.Equal(t, http.StatusNotModified, doRequest(router, http.MethodGet, "/data", nil, cached).Code)

	require.Equal(t, http.StatusOK, doRequest(router, http.MethodPut, "/data", []byte(`{"initialBalance":3}`), auth).Code)

	rr := doRequest(router, http.MethodGet, "/data", nil, cached)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEqual(t, first, rr.Header().Get("ETag"))
}
