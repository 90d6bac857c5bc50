package repositories

import (
	"context"

	gormModels "github.com/mariuschr/vinlookup-open/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegistryRepository persists national-registry snapshots in svv_data,
// keyed by VIN.
type RegistryRepository struct {
	db *gorm.DB
}

func NewRegistryRepository(db *gorm.DB) *RegistryRepository {
	return &RegistryRepository{db}
}

// Upsert writes the snapshot, replacing every column of an existing row for
// the same VIN. Fields the new snapshot no longer reports must not survive,
// so this is a full-row replace rather than a partial patch.
func (r *RegistryRepository) Upsert(ctx context.Context, record *gormModels.RegistryRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "vin"}},
			UpdateAll: true,
		}).
		Create(record).Error
}

// FindByVIN returns the persisted snapshot, or gorm.ErrRecordNotFound.
func (r *RegistryRepository) FindByVIN(ctx context.Context, vin string) (*gormModels.RegistryRecord, error) {
	var record gormModels.RegistryRecord
	if err := r.db.WithContext(ctx).Where("vin = ?", vin).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ExistsByVIN reports actual row existence. The synchronizer uses this for
// its read-back verification instead of trusting the upsert's return value.
func (r *RegistryRepository) ExistsByVIN(ctx context.Context, vin string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&gormModels.RegistryRecord{}).
		Where("vin = ?", vin).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
