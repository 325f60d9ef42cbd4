package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// getData serves the stored document bytes exactly as stored. A client that
// already holds the current version gets 304 without a body.
func (h *Handler) getData(w http.ResponseWriter, r *http.Request) {
	doc, err := h.services.LedgerService.GetLedger(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	etag := utils.DocumentETag(doc)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")

	if utils.ETagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	utils.WriteRawJSON(w, doc, http.StatusOK)
}

// putData replaces the stored document with the request body.
func (h *Handler) putData(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, fmt.Errorf("%w: limit is %d bytes", ErrRequestBodyTooLarge, maxBytesErr.Limit))
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", ErrReadingRequestBody, err))
		return
	}

	if err = h.services.LedgerService.ReplaceLedger(r.Context(), models.LedgerDocument(body)); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("func", "*Handler.putData").Int("bytes", len(body)).Msg("ledger replaced")
	utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}
