package dtos

// DTOs for the national vehicle registry (SVV kjoretoydata) document. The
// upstream schema nests approval, technical, environmental and weight
// sections several levels deep and omits any of them per vehicle type, so
// every intermediate node is a pointer and reads go through nil-safe
// accessors instead of repeated guard clauses.

type RegistryLookupResponse struct {
	Vehicles []RegistryVehicle `json:"kjoretoydataListe"`
}

// FirstVehicle returns the first vehicle entry, or an empty value when the
// lookup matched nothing.
func (r *RegistryLookupResponse) FirstVehicle() *RegistryVehicle {
	if r == nil || len(r.Vehicles) == 0 {
		return &RegistryVehicle{}
	}
	return &r.Vehicles[0]
}

type RegistryVehicle struct {
	VehicleID         *RegistryVehicleID  `json:"kjoretoyId"`
	PlateNumbers      []RegistryPlate     `json:"kjennemerke"`
	FirstRegistration *FirstRegistration  `json:"forstegangsregistrering"`
	Approval          *Approval           `json:"godkjenning"`
}

type RegistryVehicleID struct {
	PlateNumber *string `json:"kjennemerke"`
	VIN         *string `json:"understellsnummer"`
}

type RegistryPlate struct {
	PlateNumber string `json:"kjennemerke"`
}

type FirstRegistration struct {
	RegisteredNorwayDate *string `json:"registrertForstegangNorgeDato"`
}

type Approval struct {
	FirstApproval     *FirstApproval     `json:"forstegangsGodkjenning"`
	TechnicalApproval *TechnicalApproval `json:"tekniskGodkjenning"`
}

type FirstApproval struct {
	FirstRegisteredDate *string `json:"forstegangRegistrertDato"`
}

type TechnicalApproval struct {
	TechnicalData *TechnicalData `json:"tekniskeData"`
}

type TechnicalData struct {
	Environmental *EnvironmentalData `json:"miljodata"`
	Weights       *Weights           `json:"vekter"`
}

type EnvironmentalData struct {
	FuelGroups []EnvironmentalFuelGroup `json:"miljoOgdrivstoffGruppe"`
}

type EnvironmentalFuelGroup struct {
	ConsumptionAndEmissions []ConsumptionAndEmissions `json:"forbrukOgUtslipp"`
}

type ConsumptionAndEmissions struct {
	WLTP     *WLTPFigures `json:"wltpKjoretoyspesifikk"`
	NOxMgPer *float64     `json:"utslippNOxMgPrKm"`
}

type WLTPFigures struct {
	CO2WeightedCombined  *float64 `json:"co2VektetKombinert"`
	FuelWeightedCombined *float64 `json:"forbrukVektetKombinert"`
	NEDCCO2              *float64 `json:"nedcVektetKombinertDrivstoffCo2"`
	NEDCFuel             *float64 `json:"nedcVektetKombinertDrivstoff"`
	RangeKMCombined      *float64 `json:"rekkeviddeKmBlandetkjoring"`
	ElectricConsumption  *float64 `json:"elEnergiforbruk"`
}

type Weights struct {
	CurbWeightMinimum *int64 `json:"egenvektMinimum"`
}

// FirstApproval walks godkjenning.forstegangsGodkjenning.
func (v *RegistryVehicle) FirstApprovalData() *FirstApproval {
	if v == nil || v.Approval == nil || v.Approval.FirstApproval == nil {
		return &FirstApproval{}
	}
	return v.Approval.FirstApproval
}

// TechnicalDataNode walks godkjenning.tekniskGodkjenning.tekniskeData.
func (v *RegistryVehicle) TechnicalDataNode() *TechnicalData {
	if v == nil || v.Approval == nil || v.Approval.TechnicalApproval == nil ||
		v.Approval.TechnicalApproval.TechnicalData == nil {
		return &TechnicalData{}
	}
	return v.Approval.TechnicalApproval.TechnicalData
}

// FirstConsumption walks miljodata.miljoOgdrivstoffGruppe[0].forbrukOgUtslipp[0].
func (t *TechnicalData) FirstConsumption() *ConsumptionAndEmissions {
	if t == nil || t.Environmental == nil || len(t.Environmental.FuelGroups) == 0 {
		return &ConsumptionAndEmissions{}
	}
	group := t.Environmental.FuelGroups[0]
	if len(group.ConsumptionAndEmissions) == 0 {
		return &ConsumptionAndEmissions{}
	}
	return &group.ConsumptionAndEmissions[0]
}

// WLTPData returns the WLTP figures node, empty when absent.
func (c *ConsumptionAndEmissions) WLTPData() *WLTPFigures {
	if c == nil || c.WLTP == nil {
		return &WLTPFigures{}
	}
	return c.WLTP
}

// WeightData returns the weights node, empty when absent.
func (t *TechnicalData) WeightData() *Weights {
	if t == nil || t.Weights == nil {
		return &Weights{}
	}
	return t.Weights
}

// RawPlateNumber resolves the plate number from either of its two possible
// locations, first non-empty wins. Whitespace is left to the caller.
func (v *RegistryVehicle) RawPlateNumber() *string {
	if v == nil {
		return nil
	}
	if len(v.PlateNumbers) > 0 && v.PlateNumbers[0].PlateNumber != "" {
		return &v.PlateNumbers[0].PlateNumber
	}
	if v.VehicleID != nil && v.VehicleID.PlateNumber != nil && *v.VehicleID.PlateNumber != "" {
		return v.VehicleID.PlateNumber
	}
	return nil
}
