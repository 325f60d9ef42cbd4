package http

import (
	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/metrics"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	metrics  *metrics.HTTPMetrics
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. m may be nil, in which case requests
// are not measured and /metrics is not served.
func NewHandler(services *service.Services, cfg config.Server, m *metrics.HTTPMetrics, logger *logger.Logger) *Handler {
	logger.Info().Bool("metrics", m != nil).Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  m,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
