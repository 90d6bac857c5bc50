package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mariuschr/vinlookup-open/internal/logging"
	"github.com/mariuschr/vinlookup-open/internal/metrics"
	"github.com/mariuschr/vinlookup-open/internal/models/dtos"
	gormModels "github.com/mariuschr/vinlookup-open/internal/models/gorm"

	"gorm.io/gorm"
)

// RegistryFetcher pulls the national registry document for a VIN.
type RegistryFetcher interface {
	GetVehicleData(ctx context.Context, vin string) (*dtos.RegistryLookupResponse, int, error)
}

// RegistryStore persists normalized registry snapshots.
type RegistryStore interface {
	Upsert(ctx context.Context, record *gormModels.RegistryRecord) error
	FindByVIN(ctx context.Context, vin string) (*gormModels.RegistryRecord, error)
	ExistsByVIN(ctx context.Context, vin string) (bool, error)
}

// RegistrySyncService runs the fetch-normalize-upsert-verify cycle against
// the national registry. Enrichment is advisory: every failure mode reports
// "no registry data" instead of failing the request. Two concurrent
// synchronizations for one VIN are last-write-wins; the read-back may
// observe either writer. Accepted, not locked.
type RegistrySyncService struct {
	fetcher RegistryFetcher
	store   RegistryStore
	metrics *metrics.MetricsRegistry
}

func NewRegistrySyncService(fetcher RegistryFetcher, store RegistryStore, metricsReg *metrics.MetricsRegistry) *RegistrySyncService {
	return &RegistrySyncService{
		fetcher: fetcher,
		store:   store,
		metrics: metricsReg,
	}
}

// Synchronize fetches, flattens and upserts the registry snapshot for a VIN,
// then reports enrichment presence from an explicit read-back. The read-back
// runs even when the upsert reported success, because a downstream
// constraint can silently drop the row after an optimistic return.
func (svc *RegistrySyncService) Synchronize(ctx context.Context, vin string) bool {
	start := time.Now()
	outcome := "synced"
	defer func() {
		if svc.metrics != nil {
			svc.metrics.RegistrySyncTotal.WithLabelValues(outcome).Inc()
			svc.metrics.RegistrySyncDuration.Observe(time.Since(start).Seconds())
		}
	}()

	response, status, err := svc.fetcher.GetVehicleData(ctx, vin)
	if err != nil {
		logging.Warn("Registry fetch failed, treating as no registry data",
			"vin", vin,
			"status", status,
			"error", err.Error(),
		)
		outcome = "fetch_failed"
		return false
	}

	record := BuildRegistryRecord(vin, response, time.Now().UTC())

	if err := svc.store.Upsert(ctx, record); err != nil {
		// Verification below decides the outcome, not this error.
		logging.Error("Registry upsert failed", "vin", vin, "error", err.Error())
		outcome = "upsert_failed"
	}

	exists, err := svc.store.ExistsByVIN(ctx, vin)
	if err != nil {
		logging.Error("Registry verification read failed", "vin", vin, "error", err.Error())
		outcome = "verify_failed"
		return false
	}
	return exists
}

// Presence reports whether a persisted registry row and a plate number exist
// for the VIN. Errors read as absence; this probe is advisory.
func (svc *RegistrySyncService) Presence(ctx context.Context, vin string) *dtos.RegistryPresenceResponse {
	record, err := svc.store.FindByVIN(ctx, vin)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logging.Warn("Registry presence read failed", "vin", vin, "error", err.Error())
		}
		return &dtos.RegistryPresenceResponse{}
	}
	return &dtos.RegistryPresenceResponse{
		HasRegistryData: true,
		HasPlateNumber:  record.PlateNumber != nil && *record.PlateNumber != "",
	}
}

// FullRecord returns the persisted snapshot for a VIN.
func (svc *RegistrySyncService) FullRecord(ctx context.Context, vin string) (*gormModels.RegistryRecord, error) {
	record, err := svc.store.FindByVIN(ctx, vin)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistryNotFound
		}
		return nil, err
	}
	return record, nil
}

// BuildRegistryRecord flattens the nested registry document into the
// normalized svv_data row. Every section of the upstream schema can be
// absent per vehicle type (electric vs. combustion), so all reads go
// through the nil-safe accessors.
func BuildRegistryRecord(vin string, response *dtos.RegistryLookupResponse, syncedAt time.Time) *gormModels.RegistryRecord {
	vehicle := response.FirstVehicle()
	technical := vehicle.TechnicalDataNode()
	consumption := technical.FirstConsumption()
	wltp := consumption.WLTPData()
	weights := technical.WeightData()

	record := &gormModels.RegistryRecord{
		VIN:                  vin,
		PlateNumber:          normalizePlate(vehicle.RawPlateNumber()),
		CO2WeightedCombined:  wltp.CO2WeightedCombined,
		FuelWeightedCombined: wltp.FuelWeightedCombined,
		NEDCCO2:              wltp.NEDCCO2,
		NEDCFuel:             wltp.NEDCFuel,
		RangeKM:              wltp.RangeKMCombined,
		ElectricConsumption:  wltp.ElectricConsumption,
		NOx:                  consumption.NOxMgPer,
		CurbWeightMinimum:    weights.CurbWeightMinimum,
		FirstRegistered:      vehicle.FirstApprovalData().FirstRegisteredDate,
		SyncedAt:             syncedAt,
	}
	if vehicle.FirstRegistration != nil {
		record.FirstRegisteredNorway = vehicle.FirstRegistration.RegisteredNorwayDate
	}
	return record
}

// normalizePlate strips all whitespace from the plate number, whichever of
// the two upstream locations it came from.
func normalizePlate(plate *string) *string {
	if plate == nil {
		return nil
	}
	normalized := strings.Join(strings.Fields(*plate), "")
	if normalized == "" {
		return nil
	}
	return &normalized
}
