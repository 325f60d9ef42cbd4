package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrMissingPassword: http.StatusUnauthorized,
	service.ErrWrongPassword:   http.StatusUnauthorized,
	service.ErrInvalidLedger:   http.StatusUnprocessableEntity,

	ErrRequestBodyTooLarge: http.StatusRequestEntityTooLarge,
	ErrReadingRequestBody:  http.StatusBadRequest,

	store.ErrStorageUnavailable: http.StatusServiceUnavailable,
	store.ErrLedgerNotFound:     http.StatusInternalServerError,
	store.ErrLedgerNotSaved:     http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError picks the client-facing message for err. Client errors
// explain themselves; server errors stay generic.
func detailFromError(err error, status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return detailInvalidPassword
	case status == http.StatusServiceUnavailable:
		return detailStorageUnavailable
	case status >= http.StatusInternalServerError:
		return detailInternal
	}
	return err.Error()
}

// writeError maps err to a status and writes {"detail": ...}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteDetail(w, detailFromError(err, status), status)
}
