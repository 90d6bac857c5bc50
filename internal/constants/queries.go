package constants

const (
	ListVehicles = `
	SELECT id, vin, model, color, mileage, purchase_date, first_registration,
	       net_invoice_price, co2_emissions, pr_codes
	FROM ucp_biler
	`

	GetVehicleByVIN = `
	SELECT id, vin, model, color, mileage, purchase_date, first_registration,
	       net_invoice_price, co2_emissions, pr_codes
	FROM ucp_biler WHERE vin = $1
	`

	GetYearForCode = `
	SELECT aar FROM arsmodeller WHERE kode = $1
	`

	// LIMIT 2 so the caller can detect and log ambiguous identifier matches.
	GetModelForIdentifier = `
	SELECT bilmodell, merke FROM bilmodell_kode WHERE identifikator ILIKE $1 LIMIT 2
	`

	GetColorForGerman = `
	SELECT farge_norsk FROM farger WHERE farge_tysk = $1
	`

	ListColors = `
	SELECT farge_tysk, farge_norsk FROM farger
	`

	// Expanded with sqlx.In before use.
	GetValuationsForVehicle = `
	SELECT pr_code, desc_norwegian, desc_german, uc_valuation, model_year, brand, model_base
	FROM pr_koder
	WHERE pr_code IN (?) AND model_year = ? AND brand = ? AND model_base = ?
	`

	GetPrevaluedCodesForVIN = `
	SELECT "prCode", "desc", valuation FROM pr_koder_med_verdi WHERE vin = $1
	`

	ListVehicleFullView = `
	SELECT id, vin, model, color, mileage, purchase_date, first_registration,
	       net_invoice_price, co2_emissions, pr_codes, kjennemerke,
	       co2_vektet_kombinert, forbruk_vektet_kombinert, nedc_co2, nedc_forbruk,
	       rekkevidde_km, el_forbruk, nox, egenvekt_minimum,
	       forstegang_registrert, forstegang_registrert_norge, sist_oppdatert
	FROM bilvisning_full_view
	`

	GetVehicleFullViewByVIN = `
	SELECT id, vin, model, color, mileage, purchase_date, first_registration,
	       net_invoice_price, co2_emissions, pr_codes, kjennemerke,
	       co2_vektet_kombinert, forbruk_vektet_kombinert, nedc_co2, nedc_forbruk,
	       rekkevidde_km, el_forbruk, nox, egenvekt_minimum,
	       forstegang_registrert, forstegang_registrert_norge, sist_oppdatert
	FROM bilvisning_full_view WHERE vin = $1
	`

	CalculateVAT = `
	SELECT * FROM beregn_mva_detaljert($1, $2, $3)
	`
)
