package repositories

import (
	"context"
	"database/sql"

	"github.com/mariuschr/vinlookup-open/internal/constants"
	"github.com/mariuschr/vinlookup-open/internal/logging"
	"github.com/mariuschr/vinlookup-open/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// ReferenceRepository reads the externally maintained reference tables:
// arsmodeller (year codes), bilmodell_kode (model identifiers) and farger
// (color translations). All tables are read-only from this service.
type ReferenceRepository struct {
	db *sqlx.DB
}

func NewReferenceRepository(db *sqlx.DB) *ReferenceRepository {
	return &ReferenceRepository{db}
}

// YearForCode resolves a single-character model-year code to a four-digit
// year. Lookup is exact; sql.ErrNoRows means the code is unknown.
func (r *ReferenceRepository) YearForCode(ctx context.Context, kode string) (int, error) {
	var year int
	if err := r.db.QueryRowxContext(ctx, constants.GetYearForCode, kode).Scan(&year); err != nil {
		return 0, err
	}
	return year, nil
}

// ModelForIdentifier resolves a model-identifier code case-insensitively.
// The identifier is a non-unique key in bilmodell_kode: on multiple matches
// the first row wins and the ambiguity is logged.
func (r *ReferenceRepository) ModelForIdentifier(ctx context.Context, identifikator string) (*entities.ModelCode, error) {
	var rows []entities.ModelCode
	if err := r.db.SelectContext(ctx, &rows, constants.GetModelForIdentifier, identifikator); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, sql.ErrNoRows
	}
	if len(rows) > 1 {
		logging.Warn("Ambiguous model identifier, using first match",
			"identifikator", identifikator,
			"brand", rows[0].Brand,
			"model_base", rows[0].ModelBase,
		)
	}
	return &rows[0], nil
}

func (r *ReferenceRepository) ColorForGerman(ctx context.Context, fargeTysk string) (string, error) {
	var norwegian string
	if err := r.db.QueryRowxContext(ctx, constants.GetColorForGerman, fargeTysk).Scan(&norwegian); err != nil {
		return "", err
	}
	return norwegian, nil
}

func (r *ReferenceRepository) AllColors(ctx context.Context) ([]entities.Color, error) {
	var colors []entities.Color
	if err := r.db.SelectContext(ctx, &colors, constants.ListColors); err != nil {
		return nil, err
	}
	return colors, nil
}
