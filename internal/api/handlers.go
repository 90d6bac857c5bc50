package api

import (
	"net/http"

	"github.com/mariuschr/vinlookup-open/internal/constants"
	"github.com/mariuschr/vinlookup-open/internal/logging"
	"github.com/mariuschr/vinlookup-open/internal/middleware"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// Dispatch routes /api/data requests by their action parameter. Each action
// validates its own required parameters; an unknown action is a client error.
func (h *Handlers) Dispatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		action := r.URL.Query().Get("action")
		logging.WithRequest(
			middleware.RequestIDFromContext(r.Context()),
			action,
			r.URL.Query().Get("vin"),
		).Debug("Dispatching action")

		switch action {
		case "biler":
			h.listVehicles(w, r)
		case "bilvisning":
			h.vehicleView(w, r)
		case "bilvisning_full":
			h.vehicleFullView(w, r)
		case "biler_full_view":
			h.listFullView(w, r)
		case "svv_oppdater":
			h.syncRegistry(w, r)
		case "svv_data":
			h.registryPresence(w, r)
		case "svv_data_full":
			h.registryFullRecord(w, r)
		case "arsmodell":
			h.yearForCode(w, r)
		case "farge":
			h.colorForGerman(w, r)
		case "alle_farger":
			h.allColors(w, r)
		case "tuv":
			h.documentLink(w, r)
		case "bilder":
			h.vehicleImages(w, r)
		case "beregn_mva":
			h.calculateVAT(w, r)
		default:
			respondError(w, http.StatusBadRequest, constants.MsgInvalidRequest)
		}
	}
}
