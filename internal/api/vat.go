package api

import (
	"net/http"
	"strconv"

	"github.com/mariuschr/vinlookup-open/internal/constants"
	"github.com/mariuschr/vinlookup-open/internal/logging"
)

// calculateVAT delegates the VAT breakdown to the beregn_mva_detaljert
// stored function and returns its single result row.
func (h *Handlers) calculateVAT(w http.ResponseWriter, r *http.Request) {
	salgspris, err1 := strconv.ParseFloat(r.URL.Query().Get("salgspris"), 64)
	regavgift, err2 := strconv.ParseFloat(r.URL.Query().Get("regavgift"), 64)
	co2, err3 := strconv.ParseFloat(r.URL.Query().Get("co2"), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		respondError(w, http.StatusBadRequest, constants.MsgInvalidRequest)
		return
	}

	result, err := h.deps.Repo.VAT.Calculate(r.Context(), salgspris, regavgift, co2)
	if err != nil {
		logging.Error("VAT calculation failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, constants.MsgVATFailed)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
