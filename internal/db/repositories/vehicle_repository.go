package repositories

import (
	"context"

	"github.com/mariuschr/vinlookup-open/internal/constants"
	"github.com/mariuschr/vinlookup-open/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type VehicleRepository struct {
	db *sqlx.DB
}

func NewVehicleRepository(db *sqlx.DB) *VehicleRepository {
	return &VehicleRepository{db}
}

func (r *VehicleRepository) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	var vehicles []entities.Vehicle
	if err := r.db.SelectContext(ctx, &vehicles, constants.ListVehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) FindByVIN(ctx context.Context, vin string) (*entities.Vehicle, error) {
	var vehicle entities.Vehicle
	if err := r.db.QueryRowxContext(ctx, constants.GetVehicleByVIN, vin).StructScan(&vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) ListFullView(ctx context.Context) ([]entities.VehicleFullView, error) {
	var rows []entities.VehicleFullView
	if err := r.db.SelectContext(ctx, &rows, constants.ListVehicleFullView); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *VehicleRepository) FindFullViewByVIN(ctx context.Context, vin string) (*entities.VehicleFullView, error) {
	var row entities.VehicleFullView
	if err := r.db.QueryRowxContext(ctx, constants.GetVehicleFullViewByVIN, vin).StructScan(&row); err != nil {
		return nil, err
	}
	return &row, nil
}
