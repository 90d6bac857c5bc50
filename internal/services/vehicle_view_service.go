package services

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/mariuschr/vinlookup-open/internal/constants"
	"github.com/mariuschr/vinlookup-open/internal/logging"
	"github.com/mariuschr/vinlookup-open/internal/models/dtos"
	"github.com/mariuschr/vinlookup-open/internal/models/entities"
	"github.com/mariuschr/vinlookup-open/internal/vin"

	"golang.org/x/sync/errgroup"
)

// VehicleStore loads vehicle rows by VIN.
type VehicleStore interface {
	FindByVIN(ctx context.Context, vin string) (*entities.Vehicle, error)
	FindFullViewByVIN(ctx context.Context, vin string) (*entities.VehicleFullView, error)
}

// ValuationStore joins equipment codes against the valuation table.
type ValuationStore interface {
	FindForVehicle(ctx context.Context, codes []string, modelYear, brand, modelBase string) ([]entities.ValuationEntry, error)
	FindPrevaluedForVIN(ctx context.Context, vin string) ([]dtos.EquipmentValuation, error)
}

// VehicleViewService resolves a vehicle's commercial profile: VIN decode,
// reference resolution and the ranked equipment valuation join.
type VehicleViewService struct {
	vehicles   VehicleStore
	references ReferenceStore
	valuations ValuationStore
}

func NewVehicleViewService(vehicles VehicleStore, references ReferenceStore, valuations ValuationStore) *VehicleViewService {
	return &VehicleViewService{
		vehicles:   vehicles,
		references: references,
		valuations: valuations,
	}
}

// GetVehicleView builds the bilvisning payload for a VIN. Year and model
// resolution failures are terminal because valuation rows are scoped by the
// resolved triple; a failing valuation query is not, and degrades to an
// empty equipment list.
func (svc *VehicleViewService) GetVehicleView(ctx context.Context, vinNumber string) (*dtos.VehicleViewResponse, error) {
	vehicle, err := svc.vehicles.FindByVIN(ctx, vinNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	codes := vin.Decode(vinNumber)
	if codes.ModelYear == "" {
		return nil, ErrYearNotFound
	}

	// Year and model lookups are independent reads; only the valuation
	// join depends on both. Errors are collected per lookup and checked in
	// a fixed order so a vehicle missing both resolutions always reports
	// the year failure.
	var (
		modelYear int
		yearErr   error
		model     *entities.ModelCode
		modelErr  error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		modelYear, yearErr = svc.references.YearForCode(gctx, codes.ModelYear)
		return nil
	})
	g.Go(func() error {
		model, modelErr = svc.references.ModelForIdentifier(gctx, codes.ModelIdentifier)
		return nil
	})
	_ = g.Wait()
	if yearErr != nil {
		return nil, yearErr
	}
	if modelErr != nil {
		return nil, modelErr
	}

	response := &dtos.VehicleViewResponse{
		Vehicle: vehicle,
		PRCodes: []dtos.EquipmentValuation{},
	}

	rawCodes := ""
	if vehicle.PRCodes != nil {
		rawCodes = *vehicle.PRCodes
	}
	prCodes := NormalizeCodes(rawCodes)
	if len(prCodes) == 0 {
		return response, nil
	}

	rows, err := svc.valuations.FindForVehicle(ctx, prCodes, strconv.Itoa(modelYear), model.Brand, model.ModelBase)
	if err != nil {
		// Partial-failure isolation: the vehicle still renders without
		// equipment data.
		logging.Warn("Valuation query failed, returning empty equipment list",
			"vin", vinNumber,
			"error", err.Error(),
		)
		return response, nil
	}

	response.PRCodes = RankValuations(rows)
	return response, nil
}

// GetVehicleFullView builds the bilvisning_full payload from the
// denormalized view, fetching prevalued equipment separately.
func (svc *VehicleViewService) GetVehicleFullView(ctx context.Context, vinNumber string) (*dtos.VehicleFullViewResponse, error) {
	row, err := svc.vehicles.FindFullViewByVIN(ctx, vinNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	response := &dtos.VehicleFullViewResponse{
		Vehicle: row,
		PRCodes: []dtos.EquipmentValuation{},
	}

	entries, err := svc.valuations.FindPrevaluedForVIN(ctx, vinNumber)
	if err != nil {
		logging.Warn("Prevalued equipment query failed, returning empty equipment list",
			"vin", vinNumber,
			"error", err.Error(),
		)
		return response, nil
	}
	if entries != nil {
		response.PRCodes = entries
	}

	return response, nil
}

// NormalizeCodes splits a comma-joined equipment code string into a trimmed,
// deduplicated list. Order is preserved but carries no meaning at this stage.
func NormalizeCodes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var codes []string
	for _, part := range strings.Split(raw, ",") {
		code := strings.TrimSpace(part)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}

// RankValuations merges valuation rows into display entries and ranks them
// by valuation descending. The sort must be stable: equal valuations keep
// table order, which is part of the ranking contract.
func RankValuations(rows []entities.ValuationEntry) []dtos.EquipmentValuation {
	entries := make([]dtos.EquipmentValuation, 0, len(rows))
	for _, row := range rows {
		entry := dtos.EquipmentValuation{
			PRCode: row.PRCode,
			Desc:   describeEquipment(row),
		}
		if row.Valuation != nil {
			entry.Valuation = *row.Valuation
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Valuation > entries[j].Valuation
	})
	return entries
}

// describeEquipment picks the first non-empty description: Norwegian, then
// German, then the literal placeholder.
func describeEquipment(row entities.ValuationEntry) string {
	if row.DescNorwegian != nil && *row.DescNorwegian != "" {
		return *row.DescNorwegian
	}
	if row.DescGerman != nil && *row.DescGerman != "" {
		return *row.DescGerman
	}
	return constants.DescriptionMissing
}
