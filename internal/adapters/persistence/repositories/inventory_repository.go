package repositories

import (
	"context"
	"errors"

	"bloodbridge/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// inventoryRepository implements InventoryRepository interface
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

// GetByBloodType gets the inventory row for a blood type
func (r *inventoryRepository) GetByBloodType(ctx context.Context, bloodType string) (*models.BloodInventory, error) {
	var inv models.BloodInventory
	err := r.db.WithContext(ctx).Where("blood_type = ?", bloodType).First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Upsert creates or overwrites the inventory row for a blood type
func (r *inventoryRepository) Upsert(ctx context.Context, inv *models.BloodInventory) error {
	var existing models.BloodInventory
	err := r.db.WithContext(ctx).Where("blood_type = ?", inv.BloodType).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(inv).Error
	}
	if err != nil {
		return err
	}

	existing.AvailableUnits = inv.AvailableUnits
	existing.Status = inv.Status
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	*inv = existing
	return nil
}

// IncrementUnits atomically credits the unit counter for a blood type,
// creating the row on first donation. The SQL-side increment avoids the
// lost-update race of a read-modify-write cycle.
func (r *inventoryRepository) IncrementUnits(ctx context.Context, bloodType string, units int) error {
	result := r.db.WithContext(ctx).
		Model(&models.BloodInventory{}).
		Where("blood_type = ?", bloodType).
		UpdateColumn("available_units", gorm.Expr("available_units + ?", units))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	inv := &models.BloodInventory{
		BloodType:      bloodType,
		AvailableUnits: units,
		Status:         "Low",
	}
	return r.db.WithContext(ctx).Create(inv).Error
}

// List lists inventory rows, optionally filtered to one blood type
func (r *inventoryRepository) List(ctx context.Context, bloodType string) ([]*models.BloodInventory, error) {
	query := r.db.WithContext(ctx).Model(&models.BloodInventory{})
	if bloodType != "" {
		query = query.Where("blood_type = ?", bloodType)
	}

	var rows []*models.BloodInventory
	if err := query.Order("blood_type ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
