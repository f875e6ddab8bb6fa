package kit

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the single failure shape every endpoint shares: a short
// human-readable summary plus an optional detail message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, summary, message string) {
	WriteJSON(w, status, ErrorResponse{Error: summary, Message: message})
}
