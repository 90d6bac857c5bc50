package api

import (
	"encoding/json"
	"net/http"

	"github.com/mariuschr/vinlookup-open/internal/models/dtos"
)

// The dispatch surface returns flat JSON bodies, matching the contract its
// clients already depend on. No envelope.

func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, dtos.ErrorResponse{Error: message})
}
