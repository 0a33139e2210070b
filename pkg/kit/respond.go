// Package kit holds the HTTP plumbing shared by every part of the demo:
// JSON responses, logging, metrics, rate limiting and the declarative
// redirect/rewrite/header rules.
package kit

import (
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse is the envelope for every non-2xx JSON response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string, details any) {
	reqID := chimw.GetReqID(r.Context())
	WriteJSON(w, status, ErrorResponse{
		Error:     msg,
		Details:   details,
		RequestID: reqID,
	})
}

// WriteNotFound writes the 404 envelope used by every identifier lookup.
func WriteNotFound(w http.ResponseWriter, r *http.Request, id string) {
	WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
}
