package api

import (
	"net/http"
	"sort"

	"github.com/mariuschr/vinlookup-open/internal/constants"
	"github.com/mariuschr/vinlookup-open/internal/logging"
	"github.com/mariuschr/vinlookup-open/internal/models/dtos"
)

// vehicleImages proxies the media CDN. Media availability is advisory: a
// failing upstream yields an empty image list, not a request failure.
func (h *Handlers) vehicleImages(w http.ResponseWriter, r *http.Request) {
	vin := r.URL.Query().Get("vin")
	if vin == "" {
		respondError(w, http.StatusBadRequest, constants.MsgMissingVIN)
		return
	}

	images, status, err := h.deps.Providers.Media.GetVehicleImages(r.Context(), vin)
	if err != nil {
		logging.Warn("Media fetch failed, returning empty image list",
			"vin", vin,
			"status", status,
			"error", err.Error(),
		)
		respondJSON(w, http.StatusOK, dtos.VehicleImagesResponse{Images: []dtos.VehicleImage{}})
		return
	}

	filtered := make([]dtos.VehicleImage, 0, len(images))
	for label, url := range images {
		if url == "" {
			continue
		}
		filtered = append(filtered, dtos.VehicleImage{Label: label, URL: url})
	}
	// Map order is random; keep the payload deterministic.
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Label < filtered[j].Label })

	respondJSON(w, http.StatusOK, dtos.VehicleImagesResponse{Images: filtered})
}
