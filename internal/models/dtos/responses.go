package dtos

import (
	"github.com/mariuschr/vinlookup-open/internal/models/entities"
)

// ErrorResponse is the flat error body the dispatch surface returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// EquipmentValuation is one ranked equipment entry in a vehicle view.
type EquipmentValuation struct {
	PRCode    string  `json:"prCode"`
	Desc      string  `json:"desc"`
	Valuation float64 `json:"valuation"`
}

// VehicleViewResponse is the bilvisning payload: the vehicle record plus its
// ranked equipment valuations.
type VehicleViewResponse struct {
	Vehicle *entities.Vehicle    `json:"bil"`
	PRCodes []EquipmentValuation `json:"prCodes"`
}

// VehicleFullViewResponse is the bilvisning_full payload built from the
// denormalized database view.
type VehicleFullViewResponse struct {
	Vehicle *entities.VehicleFullView `json:"bil"`
	PRCodes []EquipmentValuation      `json:"prCodes"`
}

// RegistrySyncResponse reports whether registry enrichment exists after a
// synchronization or presence probe.
type RegistrySyncResponse struct {
	HasRegistryData bool `json:"har_svv_data"`
}

// RegistryPresenceResponse is the svv_data probe payload.
type RegistryPresenceResponse struct {
	HasRegistryData bool `json:"har_svv_data"`
	HasPlateNumber  bool `json:"har_kjennemerke"`
}

// YearResponse is the arsmodell payload.
type YearResponse struct {
	Year int `json:"aar"`
}

// ColorResponse is the farge payload.
type ColorResponse struct {
	Norwegian string `json:"farge_norsk"`
}

// SignedURLResponse is the tuv payload.
type SignedURLResponse struct {
	SignedURL string `json:"signedUrl"`
}

// VehicleImage is one labeled image URL from the media CDN.
type VehicleImage struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// VehicleImagesResponse is the bilder payload.
type VehicleImagesResponse struct {
	Images []VehicleImage `json:"bilder"`
}

// SalesTextResponse carries generated marketing copy.
type SalesTextResponse struct {
	Text string `json:"text"`
}

// SalesTextRequest is the POST body for sales text generation.
type SalesTextRequest struct {
	Model        string   `json:"model"`
	Color        string   `json:"color"`
	TopEquipment []string `json:"topUtstyr"`
}
