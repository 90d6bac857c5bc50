package repositories

import (
	"context"

	"github.com/mariuschr/vinlookup-open/internal/constants"
	"github.com/mariuschr/vinlookup-open/internal/models/dtos"
	"github.com/mariuschr/vinlookup-open/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// ValuationRepository reads pr_koder, the market valuation table for
// equipment codes scoped by brand, model base and model year.
type ValuationRepository struct {
	db *sqlx.DB
}

func NewValuationRepository(db *sqlx.DB) *ValuationRepository {
	return &ValuationRepository{db}
}

// FindForVehicle returns valuation rows whose pr_code is in codes and whose
// brand, model base and model year match the resolved triple exactly. The
// year is compared in its string form because pr_koder stores it as text.
func (r *ValuationRepository) FindForVehicle(ctx context.Context, codes []string, modelYear, brand, modelBase string) ([]entities.ValuationEntry, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(constants.GetValuationsForVehicle, codes, modelYear, brand, modelBase)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var rows []entities.ValuationEntry
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// FindPrevaluedForVIN reads pr_koder_med_verdi, the database-side view that
// already carries merged descriptions and valuations per VIN.
func (r *ValuationRepository) FindPrevaluedForVIN(ctx context.Context, vin string) ([]dtos.EquipmentValuation, error) {
	rows, err := r.db.QueryxContext(ctx, constants.GetPrevaluedCodesForVIN, vin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []dtos.EquipmentValuation
	for rows.Next() {
		var (
			code      string
			desc      *string
			valuation *float64
		)
		if err := rows.Scan(&code, &desc, &valuation); err != nil {
			return nil, err
		}
		entry := dtos.EquipmentValuation{PRCode: code}
		if desc != nil {
			entry.Desc = *desc
		}
		if valuation != nil {
			entry.Valuation = *valuation
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
