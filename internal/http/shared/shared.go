// Package shared centralizes JSON response envelopes and domain error
// translation so every handler returns consistent payloads.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	"lustre/pkg/derrors"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a domain error to its HTTP status and writes the standard
// error envelope. Non-domain errors surface as an opaque internal error.
func WriteError(w http.ResponseWriter, err error) {
	code := derrors.CodeOf(err)
	message := "internal error"
	var de *derrors.Error
	if errors.As(err, &de) {
		message = de.Message
	}
	WriteJSON(w, derrors.ToHTTPStatus(code), map[string]string{
		"error":   string(code),
		"message": message,
	})
}
