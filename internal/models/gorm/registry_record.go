package gorm

import "time"

// RegistryRecord is the persisted snapshot of the national registry (SVV)
// lookup for one VIN. At most one logical row per VIN; a synchronization
// replaces every column so stale fields never survive a newer snapshot.
type RegistryRecord struct {
	VIN                   string     `gorm:"column:vin;primaryKey" json:"vin"`
	PlateNumber           *string    `gorm:"column:kjennemerke" json:"kjennemerke"`
	CO2WeightedCombined   *float64   `gorm:"column:co2_vektet_kombinert" json:"co2_vektet_kombinert"`
	FuelWeightedCombined  *float64   `gorm:"column:forbruk_vektet_kombinert" json:"forbruk_vektet_kombinert"`
	NEDCCO2               *float64   `gorm:"column:nedc_co2" json:"nedc_co2"`
	NEDCFuel              *float64   `gorm:"column:nedc_forbruk" json:"nedc_forbruk"`
	RangeKM               *float64   `gorm:"column:rekkevidde_km" json:"rekkevidde_km"`
	ElectricConsumption   *float64   `gorm:"column:el_forbruk" json:"el_forbruk"`
	NOx                   *float64   `gorm:"column:nox" json:"nox"`
	CurbWeightMinimum     *int64     `gorm:"column:egenvekt_minimum" json:"egenvekt_minimum"`
	FirstRegistered       *string    `gorm:"column:forstegang_registrert" json:"forstegang_registrert"`
	FirstRegisteredNorway *string    `gorm:"column:forstegang_registrert_norge" json:"forstegang_registrert_norge"`
	SyncedAt              time.Time  `gorm:"column:sist_oppdatert" json:"sist_oppdatert"`
}

func (RegistryRecord) TableName() string {
	return "svv_data"
}
