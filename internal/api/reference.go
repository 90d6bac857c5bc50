package api

import (
	"errors"
	"net/http"

	"github.com/mariuschr/vinlookup-open/internal/constants"
	"github.com/mariuschr/vinlookup-open/internal/logging"
	"github.com/mariuschr/vinlookup-open/internal/models/dtos"
	"github.com/mariuschr/vinlookup-open/internal/services"
)

func (h *Handlers) yearForCode(w http.ResponseWriter, r *http.Request) {
	kode := r.URL.Query().Get("kode")
	if kode == "" {
		respondError(w, http.StatusBadRequest, constants.MsgMissingCodeParam)
		return
	}

	year, err := h.deps.Services.Reference.YearForCode(r.Context(), kode)
	if err != nil {
		if errors.Is(err, services.ErrYearNotFound) {
			respondError(w, http.StatusNotFound, constants.MsgYearNotFound)
			return
		}
		logging.Error("Year code lookup failed", "kode", kode, "error", err.Error())
		respondError(w, http.StatusInternalServerError, constants.MsgYearNotFound)
		return
	}

	respondJSON(w, http.StatusOK, dtos.YearResponse{Year: year})
}

func (h *Handlers) colorForGerman(w http.ResponseWriter, r *http.Request) {
	fargeTysk := r.URL.Query().Get("farge_tysk")
	if fargeTysk == "" {
		respondError(w, http.StatusBadRequest, constants.MsgMissingColorParam)
		return
	}

	norwegian, err := h.deps.Services.Reference.ColorForGerman(r.Context(), fargeTysk)
	if err != nil {
		if errors.Is(err, services.ErrColorNotFound) {
			respondError(w, http.StatusNotFound, constants.MsgColorNotFound)
			return
		}
		logging.Error("Color lookup failed", "farge_tysk", fargeTysk, "error", err.Error())
		respondError(w, http.StatusInternalServerError, constants.MsgColorNotFound)
		return
	}

	respondJSON(w, http.StatusOK, dtos.ColorResponse{Norwegian: norwegian})
}

func (h *Handlers) allColors(w http.ResponseWriter, r *http.Request) {
	colors, err := h.deps.Services.Reference.AllColors(r.Context())
	if err != nil {
		logging.Error("Failed to list color table", "error", err.Error())
		respondError(w, http.StatusInternalServerError, constants.MsgColorTableFailed)
		return
	}
	respondJSON(w, http.StatusOK, colors)
}
