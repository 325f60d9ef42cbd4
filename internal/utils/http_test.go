package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

func TestResponseWriters(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter) (int, error)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "struct",
			write:      func(w http.ResponseWriter) (int, error) { return WriteJSON(w, models.PingResponse{Pong: true}, http.StatusOK) },
			wantStatus: http.StatusOK,
			wantBody:   `{"pong":true}`,
		},
		{
			name: "raw bytes are not re-encoded",
			write: func(w http.ResponseWriter) (int, error) {
				return WriteRawJSON(w, []byte(`{"initialBalance": 1.50,  "transactions":[]}`), http.StatusOK)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"initialBalance": 1.50,  "transactions":[]}`,
		},
		{
			name:       "detail",
			write:      func(w http.ResponseWriter) (int, error) { return WriteDetail(w, "invalid password", http.StatusUnauthorized) },
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"invalid password"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			n, err := tt.write(rr)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	rr := httptest.NewRecorder()

	_, err := WriteJSON(rr, func() {}, http.StatusOK)

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
