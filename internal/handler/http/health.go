package http

import (
	"net/http"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

const (
	healthOK          = "ok"
	healthUnavailable = "unavailable"
)

// ping is the liveness probe. It never touches storage or headers.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.PingResponse{Pong: true}, http.StatusOK)
}

// healthz is the readiness probe: 200 when storage answers, 503 otherwise.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.LedgerService.CheckStorage(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.healthz").Msg("storage is not ready")
		utils.WriteJSON(w, models.HealthResponse{Status: healthUnavailable}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: healthOK}, http.StatusOK)
}
