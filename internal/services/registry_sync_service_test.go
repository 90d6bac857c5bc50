package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/mariuschr/vinlookup-open/internal/constants"
	"github.com/mariuschr/vinlookup-open/internal/db/repositories"
	"github.com/mariuschr/vinlookup-open/internal/models/dtos"
	gormModels "github.com/mariuschr/vinlookup-open/internal/models/gorm"
	"github.com/mariuschr/vinlookup-open/internal/providers"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRegistryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&gormModels.RegistryRecord{}); err != nil {
		t.Fatalf("failed to migrate svv_data: %v", err)
	}
	return db
}

type mockRegistryFetcher struct {
	getVehicleData func(ctx context.Context, vin string) (*dtos.RegistryLookupResponse, int, error)
}

func (m *mockRegistryFetcher) GetVehicleData(ctx context.Context, vin string) (*dtos.RegistryLookupResponse, int, error) {
	return m.getVehicleData(ctx, vin)
}

func registryDocument(plate string) *dtos.RegistryLookupResponse {
	return &dtos.RegistryLookupResponse{
		Vehicles: []dtos.RegistryVehicle{
			{
				PlateNumbers: []dtos.RegistryPlate{{PlateNumber: plate}},
				FirstRegistration: &dtos.FirstRegistration{
					RegisteredNorwayDate: strPtr("2010-06-15"),
				},
				Approval: &dtos.Approval{
					FirstApproval: &dtos.FirstApproval{
						FirstRegisteredDate: strPtr("2010-06-01"),
					},
					TechnicalApproval: &dtos.TechnicalApproval{
						TechnicalData: &dtos.TechnicalData{
							Environmental: &dtos.EnvironmentalData{
								FuelGroups: []dtos.EnvironmentalFuelGroup{
									{
										ConsumptionAndEmissions: []dtos.ConsumptionAndEmissions{
											{
												WLTP: &dtos.WLTPFigures{
													CO2WeightedCombined:  f64Ptr(129),
													FuelWeightedCombined: f64Ptr(5.6),
												},
												NOxMgPer: f64Ptr(38.4),
											},
										},
									},
								},
							},
							Weights: &dtos.Weights{CurbWeightMinimum: i64Ptr(1320)},
						},
					},
				},
			},
		},
	}
}

func i64Ptr(n int64) *int64 { return &n }

func TestSynchronizePersistsFlattenedSnapshot(t *testing.T) {
	const testVIN = "WVWZZZ1KZAW000001"
	db := setupRegistryDB(t)
	store := repositories.NewRegistryRepository(db)

	fetcher := &mockRegistryFetcher{
		getVehicleData: func(ctx context.Context, vin string) (*dtos.RegistryLookupResponse, int, error) {
			return registryDocument(" AB 1234 "), 200, nil
		},
	}

	svc := NewRegistrySyncService(fetcher, store, nil)
	if !svc.Synchronize(context.Background(), testVIN) {
		t.Fatal("Synchronize = false, want true")
	}

	record, err := store.FindByVIN(context.Background(), testVIN)
	if err != nil {
		t.Fatalf("read-back failed: %v", err)
	}
	if record.PlateNumber == nil || *record.PlateNumber != "AB1234" {
		t.Errorf("plate number = %v, want AB1234 with whitespace stripped", record.PlateNumber)
	}
	if record.CO2WeightedCombined == nil || *record.CO2WeightedCombined != 129 {
		t.Errorf("co2_vektet_kombinert = %v, want 129", record.CO2WeightedCombined)
	}
	if record.NOx == nil || *record.NOx != 38.4 {
		t.Errorf("nox = %v, want 38.4", record.NOx)
	}
	if record.CurbWeightMinimum == nil || *record.CurbWeightMinimum != 1320 {
		t.Errorf("egenvekt_minimum = %v, want 1320", record.CurbWeightMinimum)
	}
	if record.FirstRegistered == nil || *record.FirstRegistered != "2010-06-01" {
		t.Errorf("forstegang_registrert = %v, want 2010-06-01", record.FirstRegistered)
	}
	if record.FirstRegisteredNorway == nil || *record.FirstRegisteredNorway != "2010-06-15" {
		t.Errorf("forstegang_registrert_norge = %v, want 2010-06-15", record.FirstRegisteredNorway)
	}
}

func TestSynchronizeFetchFailureWritesNothing(t *testing.T) {
	const testVIN = "WVWZZZ1KZAW000001"
	db := setupRegistryDB(t)
	store := repositories.NewRegistryRepository(db)

	fetcher := &mockRegistryFetcher{
		getVehicleData: func(ctx context.Context, vin string) (*dtos.RegistryLookupResponse, int, error) {
			return nil, 404, &providers.ProviderError{
				Code:    constants.ErrCodeResourceNotFound,
				Message: "no registry entry",
			}
		},
	}

	svc := NewRegistrySyncService(fetcher, store, nil)
	if svc.Synchronize(context.Background(), testVIN) {
		t.Error("Synchronize = true, want false on fetch failure")
	}

	exists, err := store.ExistsByVIN(context.Background(), testVIN)
	if err != nil {
		t.Fatalf("existence check failed: %v", err)
	}
	if exists {
		t.Error("a row was written despite the fetch failure")
	}
}

func TestSynchronizeReplacesEveryColumn(t *testing.T) {
	const testVIN = "WVWZZZ1KZAW000001"
	db := setupRegistryDB(t)
	store := repositories.NewRegistryRepository(db)

	doc := registryDocument("AB1234")
	fetcher := &mockRegistryFetcher{
		getVehicleData: func(ctx context.Context, vin string) (*dtos.RegistryLookupResponse, int, error) {
			return doc, 200, nil
		},
	}

	svc := NewRegistrySyncService(fetcher, store, nil)
	if !svc.Synchronize(context.Background(), testVIN) {
		t.Fatal("first synchronization failed")
	}

	// The second snapshot no longer reports environmental data. The stale
	// WLTP columns must not survive the replace.
	doc = &dtos.RegistryLookupResponse{
		Vehicles: []dtos.RegistryVehicle{
			{PlateNumbers: []dtos.RegistryPlate{{PlateNumber: "CD5678"}}},
		},
	}
	if !svc.Synchronize(context.Background(), testVIN) {
		t.Fatal("second synchronization failed")
	}

	var count int64
	if err := db.Model(&gormModels.RegistryRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("row count = %d, want 1", count)
	}

	record, err := store.FindByVIN(context.Background(), testVIN)
	if err != nil {
		t.Fatalf("read-back failed: %v", err)
	}
	if record.PlateNumber == nil || *record.PlateNumber != "CD5678" {
		t.Errorf("plate number = %v, want CD5678", record.PlateNumber)
	}
	if record.CO2WeightedCombined != nil {
		t.Errorf("co2_vektet_kombinert = %v, want nil after replacing snapshot", *record.CO2WeightedCombined)
	}
	if record.NOx != nil {
		t.Errorf("nox = %v, want nil after replacing snapshot", *record.NOx)
	}
}

func TestSynchronizeSameSnapshotTwiceIsIdempotent(t *testing.T) {
	const testVIN = "WVWZZZ1KZAW000001"
	db := setupRegistryDB(t)
	store := repositories.NewRegistryRepository(db)

	fetcher := &mockRegistryFetcher{
		getVehicleData: func(ctx context.Context, vin string) (*dtos.RegistryLookupResponse, int, error) {
			return registryDocument("AB1234"), 200, nil
		},
	}

	svc := NewRegistrySyncService(fetcher, store, nil)
	if !svc.Synchronize(context.Background(), testVIN) {
		t.Fatal("first synchronization failed")
	}
	first, err := store.FindByVIN(context.Background(), testVIN)
	if err != nil {
		t.Fatalf("read-back failed: %v", err)
	}

	if !svc.Synchronize(context.Background(), testVIN) {
		t.Fatal("second synchronization failed")
	}
	second, err := store.FindByVIN(context.Background(), testVIN)
	if err != nil {
		t.Fatalf("read-back failed: %v", err)
	}

	var count int64
	if err := db.Model(&gormModels.RegistryRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("row count = %d, want 1", count)
	}

	// Only the sync timestamp may move between identical snapshots.
	first.SyncedAt = time.Time{}
	second.SyncedAt = time.Time{}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("record drifted across identical snapshots:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

// failingUpsertStore delegates reads to a real repository but rejects writes,
// for exercising the read-back verification path.
type failingUpsertStore struct {
	*repositories.RegistryRepository
}

func (s *failingUpsertStore) Upsert(ctx context.Context, record *gormModels.RegistryRecord) error {
	return errors.New("constraint violation")
}

func TestSynchronizeVerificationOutlivesUpsertError(t *testing.T) {
	const testVIN = "WVWZZZ1KZAW000001"
	db := setupRegistryDB(t)
	repo := repositories.NewRegistryRepository(db)

	// Pre-existing row from an earlier synchronization.
	if err := repo.Upsert(context.Background(), &gormModels.RegistryRecord{
		VIN:      testVIN,
		SyncedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed upsert failed: %v", err)
	}

	fetcher := &mockRegistryFetcher{
		getVehicleData: func(ctx context.Context, vin string) (*dtos.RegistryLookupResponse, int, error) {
			return registryDocument("AB1234"), 200, nil
		},
	}

	svc := NewRegistrySyncService(fetcher, &failingUpsertStore{repo}, nil)
	if !svc.Synchronize(context.Background(), testVIN) {
		t.Error("Synchronize = false, want true: the row exists even though the upsert failed")
	}
}

func TestPresence(t *testing.T) {
	const testVIN = "WVWZZZ1KZAW000001"
	db := setupRegistryDB(t)
	store := repositories.NewRegistryRepository(db)
	svc := NewRegistrySyncService(&mockRegistryFetcher{}, store, nil)

	resp := svc.Presence(context.Background(), testVIN)
	if resp.HasRegistryData || resp.HasPlateNumber {
		t.Errorf("presence before sync = %+v, want both false", resp)
	}

	if err := store.Upsert(context.Background(), &gormModels.RegistryRecord{
		VIN:      testVIN,
		SyncedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	resp = svc.Presence(context.Background(), testVIN)
	if !resp.HasRegistryData || resp.HasPlateNumber {
		t.Errorf("presence without plate = %+v, want data true, plate false", resp)
	}

	if err := store.Upsert(context.Background(), &gormModels.RegistryRecord{
		VIN:         testVIN,
		PlateNumber: strPtr("AB1234"),
		SyncedAt:    time.Now().UTC(),
	}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	resp = svc.Presence(context.Background(), testVIN)
	if !resp.HasRegistryData || !resp.HasPlateNumber {
		t.Errorf("presence with plate = %+v, want both true", resp)
	}
}

func TestFullRecordNotFound(t *testing.T) {
	db := setupRegistryDB(t)
	store := repositories.NewRegistryRepository(db)
	svc := NewRegistrySyncService(&mockRegistryFetcher{}, store, nil)

	_, err := svc.FullRecord(context.Background(), "WVWZZZ1KZAW000001")
	if !errors.Is(err, ErrRegistryNotFound) {
		t.Errorf("error = %v, want ErrRegistryNotFound", err)
	}
}

func TestBuildRegistryRecordEmptyDocument(t *testing.T) {
	syncedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	record := BuildRegistryRecord("WVWZZZ1KZAW000001", &dtos.RegistryLookupResponse{}, syncedAt)

	if record.VIN != "WVWZZZ1KZAW000001" {
		t.Errorf("vin = %q", record.VIN)
	}
	if record.PlateNumber != nil {
		t.Errorf("plate number = %v, want nil", *record.PlateNumber)
	}
	if record.CO2WeightedCombined != nil || record.NOx != nil || record.CurbWeightMinimum != nil {
		t.Error("empty document produced non-nil technical fields")
	}
	if !record.SyncedAt.Equal(syncedAt) {
		t.Errorf("synced at = %v, want %v", record.SyncedAt, syncedAt)
	}
}

func TestBuildRegistryRecordPlateFallbackLocation(t *testing.T) {
	response := &dtos.RegistryLookupResponse{
		Vehicles: []dtos.RegistryVehicle{
			{
				VehicleID: &dtos.RegistryVehicleID{PlateNumber: strPtr(" EK 9002 ")},
			},
		},
	}

	record := BuildRegistryRecord("WVWZZZ1KZAW000001", response, time.Now().UTC())
	if record.PlateNumber == nil || *record.PlateNumber != "EK9002" {
		t.Errorf("plate number = %v, want EK9002 from the vehicle id fallback", record.PlateNumber)
	}
}
