package repositories

import (
	"context"

	"bloodbridge/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// bankRepository implements BankRepository interface
type bankRepository struct {
	db *gorm.DB
}

// NewBankRepository creates a new blood bank repository
func NewBankRepository(db *gorm.DB) BankRepository {
	return &bankRepository{db: db}
}

// Create creates a new blood bank
func (r *bankRepository) Create(ctx context.Context, bank *models.BloodBank) error {
	return r.db.WithContext(ctx).Create(bank).Error
}

// GetByID gets a blood bank by ID
func (r *bankRepository) GetByID(ctx context.Context, id uint) (*models.BloodBank, error) {
	var bank models.BloodBank
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bank).Error
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

// Update updates a blood bank
func (r *bankRepository) Update(ctx context.Context, bank *models.BloodBank) error {
	return r.db.WithContext(ctx).Save(bank).Error
}

// Delete deletes a blood bank
func (r *bankRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.BloodBank{}, id).Error
}

// List lists all blood banks
func (r *bankRepository) List(ctx context.Context) ([]*models.BloodBank, error) {
	var banks []*models.BloodBank
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&banks).Error; err != nil {
		return nil, err
	}
	return banks, nil
}

// ExistsByName checks if a bank name is already taken
func (r *bankRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BloodBank{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}
