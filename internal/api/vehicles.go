package api

import (
	"errors"
	"net/http"

	"github.com/mariuschr/vinlookup-open/internal/constants"
	"github.com/mariuschr/vinlookup-open/internal/logging"
	"github.com/mariuschr/vinlookup-open/internal/services"
)

func (h *Handlers) listVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.deps.Repo.Vehicles.ListVehicles(r.Context())
	if err != nil {
		logging.Error("Failed to list vehicles", "error", err.Error())
		respondError(w, http.StatusInternalServerError, constants.MsgVehicleFetchFailed)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

func (h *Handlers) vehicleView(w http.ResponseWriter, r *http.Request) {
	vin := r.URL.Query().Get("vin")
	if vin == "" {
		respondError(w, http.StatusBadRequest, constants.MsgMissingVIN)
		return
	}

	view, err := h.deps.Services.VehicleView.GetVehicleView(r.Context(), vin)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVehicleNotFound):
			respondError(w, http.StatusNotFound, constants.MsgVehicleNotFound)
		case errors.Is(err, services.ErrYearNotFound):
			respondError(w, http.StatusNotFound, constants.MsgYearNotFoundForVIN)
		case errors.Is(err, services.ErrModelNotFound):
			respondError(w, http.StatusNotFound, constants.MsgModelNotFound)
		default:
			logging.Error("Vehicle view resolution failed", "vin", vin, "error", err.Error())
			respondError(w, http.StatusInternalServerError, constants.MsgVehicleFetchFailed)
		}
		return
	}

	h.deps.Metrics.VehicleViewsTotal.Inc()
	respondJSON(w, http.StatusOK, view)
}

func (h *Handlers) vehicleFullView(w http.ResponseWriter, r *http.Request) {
	vin := r.URL.Query().Get("vin")
	if vin == "" {
		respondError(w, http.StatusBadRequest, constants.MsgMissingVIN)
		return
	}

	view, err := h.deps.Services.VehicleView.GetVehicleFullView(r.Context(), vin)
	if err != nil {
		if errors.Is(err, services.ErrVehicleNotFound) {
			respondError(w, http.StatusNotFound, constants.MsgFullViewNotFound)
			return
		}
		logging.Error("Full view resolution failed", "vin", vin, "error", err.Error())
		respondError(w, http.StatusInternalServerError, constants.MsgVehicleFetchFailed)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (h *Handlers) listFullView(w http.ResponseWriter, r *http.Request) {
	rows, err := h.deps.Repo.Vehicles.ListFullView(r.Context())
	if err != nil {
		logging.Error("Failed to list full view", "error", err.Error())
		respondError(w, http.StatusInternalServerError, constants.MsgVehicleFetchFailed)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}
