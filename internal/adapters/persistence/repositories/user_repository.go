package repositories

import (
	"context"
	"strings"

	"bloodbridge/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID gets a user by ID
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail gets a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a user
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete soft deletes a user
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, id).Error
}

// List lists users with pagination
func (r *userRepository) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	var users []*models.User
	var total int64

	// Count total
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get users with pagination
	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ExistsByEmail checks if email exists
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// FindMatchingDonors gets donor-role users with the exact blood type and region
func (r *userRepository) FindMatchingDonors(ctx context.Context, bloodType, region string) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Where("role = ?", "donor").
		Where("blood_type = ?", bloodType).
		Where("region = ?", region).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// SearchDonors searches donor-role users. Blood type and region are exact
// matches, name is a case-insensitive substring match.
func (r *userRepository) SearchDonors(ctx context.Context, filter DonorFilter) ([]*models.User, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", "donor")

	if filter.BloodType != "" {
		query = query.Where("blood_type = ?", filter.BloodType)
	}
	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}
	if filter.Name != "" {
		query = query.Where("LOWER(full_name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}

	var users []*models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
