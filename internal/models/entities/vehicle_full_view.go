package entities

import "time"

// VehicleFullView is a row in bilvisning_full_view, the denormalized join of
// ucp_biler and svv_data maintained in the database.
type VehicleFullView struct {
	ID                int64      `db:"id" json:"id"`
	VIN               string     `db:"vin" json:"vin"`
	Model             string     `db:"model" json:"model"`
	Color             *string    `db:"color" json:"color"`
	Mileage           *int64     `db:"mileage" json:"mileage"`
	PurchaseDate      *time.Time `db:"purchase_date" json:"purchase_date"`
	FirstRegistration *time.Time `db:"first_registration" json:"first_registration"`
	NetInvoicePrice   *float64   `db:"net_invoice_price" json:"net_invoice_price"`
	CO2Emissions      *float64   `db:"co2_emissions" json:"co2_emissions"`
	PRCodes           *string    `db:"pr_codes" json:"pr_codes"`

	PlateNumber           *string    `db:"kjennemerke" json:"kjennemerke"`
	CO2WeightedCombined   *float64   `db:"co2_vektet_kombinert" json:"co2_vektet_kombinert"`
	FuelWeightedCombined  *float64   `db:"forbruk_vektet_kombinert" json:"forbruk_vektet_kombinert"`
	NEDCCO2               *float64   `db:"nedc_co2" json:"nedc_co2"`
	NEDCFuel              *float64   `db:"nedc_forbruk" json:"nedc_forbruk"`
	RangeKM               *float64   `db:"rekkevidde_km" json:"rekkevidde_km"`
	ElectricConsumption   *float64   `db:"el_forbruk" json:"el_forbruk"`
	NOx                   *float64   `db:"nox" json:"nox"`
	CurbWeightMinimum     *int64     `db:"egenvekt_minimum" json:"egenvekt_minimum"`
	FirstRegistered       *string    `db:"forstegang_registrert" json:"forstegang_registrert"`
	FirstRegisteredNorway *string    `db:"forstegang_registrert_norge" json:"forstegang_registrert_norge"`
	RegistrySyncedAt      *time.Time `db:"sist_oppdatert" json:"sist_oppdatert"`
}
