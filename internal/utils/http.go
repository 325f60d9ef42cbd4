// Package utils provides small helpers shared by the ledger server and
// ledgerctl: JSON response writing, the resty HTTP client, document entity
// tags and trace id generation.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

const contentTypeJSON = "application/json"

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// It sets "Content-Type: application/json" before writing the header. If
// marshaling fails, it responds with 500 Internal Server Error and returns a
// wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.PingResponse{Pong: true}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return WriteRawJSON(w, jsonData, statusCode)
}

// WriteRawJSON writes body, which must already be encoded JSON, without
// re-encoding it.
func WriteRawJSON(w http.ResponseWriter, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteDetail writes the error body {"detail": detail}.
func WriteDetail(w http.ResponseWriter, detail string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}
