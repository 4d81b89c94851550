package http

import (
	"encoding/json"
	"net/http"
)

// RelayResponse is the body for the success and failure outcomes of the
// trigger endpoint.
type RelayResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AuthErrorResponse is the 401 body. Its shape predates RelayResponse and
// is kept as-is for compatibility with existing callers.
type AuthErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

const internalErrorMessage = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
