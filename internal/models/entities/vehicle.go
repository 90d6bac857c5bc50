package entities

import "time"

// Vehicle is a row in ucp_biler. It is owned by the purchasing pipeline;
// this service only reads it.
type Vehicle struct {
	ID                int64      `db:"id" json:"id"`
	VIN               string     `db:"vin" json:"vin"`
	Model             string     `db:"model" json:"model"`
	Color             *string    `db:"color" json:"color"`
	Mileage           *int64     `db:"mileage" json:"mileage"`
	PurchaseDate      *time.Time `db:"purchase_date" json:"purchase_date"`
	FirstRegistration *time.Time `db:"first_registration" json:"first_registration"`
	NetInvoicePrice   *float64   `db:"net_invoice_price" json:"net_invoice_price"`
	CO2Emissions      *float64   `db:"co2_emissions" json:"co2_emissions"`
	// Comma-joined PR codes as stored upstream; split and trimmed before use.
	PRCodes *string `db:"pr_codes" json:"pr_codes"`
}
