package entities

// ModelCode maps a VIN model-identifier code to a brand and model base
// (bilmodell_kode). Identifier matching is case-insensitive.
type ModelCode struct {
	ModelBase string `db:"bilmodell" json:"bilmodell"`
	Brand     string `db:"merke" json:"merke"`
}

// Color is a row in farger, a one-to-one German to Norwegian color mapping.
type Color struct {
	German    string `db:"farge_tysk" json:"farge_tysk"`
	Norwegian string `db:"farge_norsk" json:"farge_norsk"`
}
