package api

import (
	"encoding/json"
	"net/http"

	"github.com/mariuschr/vinlookup-open/internal/logging"
	"github.com/mariuschr/vinlookup-open/internal/models/dtos"
)

// SalesTextHandler generates marketing copy for a vehicle's model, color and
// top-ranked equipment.
func (h *Handlers) SalesTextHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request dtos.SalesTextRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			respondError(w, http.StatusBadRequest, "Body parsing error")
			return
		}

		text, err := h.deps.Services.SalesText.Generate(r.Context(), request)
		if err != nil {
			logging.Error("Sales text generation failed", "model", request.Model, "error", err.Error())
			respondError(w, http.StatusInternalServerError, "Something went wrong.")
			return
		}

		respondJSON(w, http.StatusOK, dtos.SalesTextResponse{Text: text})
	}
}
