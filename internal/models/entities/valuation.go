package entities

// ValuationEntry is a row in pr_koder: a market valuation for one equipment
// code scoped by brand, model base and model year.
type ValuationEntry struct {
	PRCode        string   `db:"pr_code" json:"pr_code"`
	DescNorwegian *string  `db:"desc_norwegian" json:"desc_norwegian"`
	DescGerman    *string  `db:"desc_german" json:"desc_german"`
	Valuation     *float64 `db:"uc_valuation" json:"uc_valuation"`
	ModelYear     string   `db:"model_year" json:"model_year"`
	Brand         string   `db:"brand" json:"brand"`
	ModelBase     string   `db:"model_base" json:"model_base"`
}
