package repositories

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/mariuschr/vinlookup-open/internal/constants"

	"github.com/jmoiron/sqlx"
)

// VATRepository delegates the VAT breakdown to the beregn_mva_detaljert
// stored function. The function owns the fiscal rules; this side only
// forwards the numeric inputs and decodes the single result row.
type VATRepository struct {
	db *sqlx.DB
}

func NewVATRepository(db *sqlx.DB) *VATRepository {
	return &VATRepository{db}
}

func (r *VATRepository) Calculate(ctx context.Context, salgspris, regavgift, co2 float64) (map[string]interface{}, error) {
	rows, err := r.db.QueryxContext(ctx, constants.CalculateVAT, salgspris, regavgift, co2)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, sql.ErrNoRows
	}

	result := make(map[string]interface{})
	if err := rows.MapScan(result); err != nil {
		return nil, err
	}
	decodeRawColumns(result)
	return result, nil
}

// decodeRawColumns converts the []byte values MapScan leaves for NUMERIC and
// TEXT columns into numbers or strings. Without this the JSON encoder would
// base64-encode every money figure the stored function returns.
func decodeRawColumns(row map[string]interface{}) {
	for key, value := range row {
		raw, ok := value.([]byte)
		if !ok {
			continue
		}
		text := string(raw)
		if number, err := strconv.ParseFloat(text, 64); err == nil {
			row[key] = number
			continue
		}
		row[key] = text
	}
}
