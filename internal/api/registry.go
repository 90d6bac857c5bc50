package api

import (
	"errors"
	"net/http"

	"github.com/mariuschr/vinlookup-open/internal/constants"
	"github.com/mariuschr/vinlookup-open/internal/logging"
	"github.com/mariuschr/vinlookup-open/internal/models/dtos"
	"github.com/mariuschr/vinlookup-open/internal/services"
)

// syncRegistry runs the registry fetch-upsert-verify cycle. The response is
// always 200 once the VIN parameter is present: enrichment is advisory and
// must never fail the request.
func (h *Handlers) syncRegistry(w http.ResponseWriter, r *http.Request) {
	vin := r.URL.Query().Get("vin")
	if vin == "" {
		respondError(w, http.StatusBadRequest, constants.MsgInvalidVIN)
		return
	}

	present := h.deps.Services.RegistrySync.Synchronize(r.Context(), vin)
	respondJSON(w, http.StatusOK, dtos.RegistrySyncResponse{HasRegistryData: present})
}

func (h *Handlers) registryPresence(w http.ResponseWriter, r *http.Request) {
	vin := r.URL.Query().Get("vin")
	if vin == "" {
		respondError(w, http.StatusBadRequest, constants.MsgMissingVIN)
		return
	}

	respondJSON(w, http.StatusOK, h.deps.Services.RegistrySync.Presence(r.Context(), vin))
}

func (h *Handlers) registryFullRecord(w http.ResponseWriter, r *http.Request) {
	vin := r.URL.Query().Get("vin")
	if vin == "" {
		respondError(w, http.StatusBadRequest, constants.MsgMissingVIN)
		return
	}

	record, err := h.deps.Services.RegistrySync.FullRecord(r.Context(), vin)
	if err != nil {
		if !errors.Is(err, services.ErrRegistryNotFound) {
			logging.Warn("Registry record read failed", "vin", vin, "error", err.Error())
		}
		respondError(w, http.StatusNotFound, constants.MsgRegistryNotFound)
		return
	}

	respondJSON(w, http.StatusOK, record)
}
