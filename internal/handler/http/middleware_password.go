package http

import (
	"net/http"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
)

// withPassword rejects requests whose X-App-Password header does not match
// the configured secret. Missing and wrong passwords are answered the same
// way, 401 {"detail":"invalid password"}, and the handler never runs.
func (h *Handler) withPassword(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := h.services.AuthService.CheckPassword(r.Context(), r.Header.Get(utils.PasswordHeader))
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.withPassword").Msg("password check failed")
			utils.WriteDetail(w, detailInvalidPassword, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
