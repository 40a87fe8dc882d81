package repositories

import (
	"context"

	"bloodbridge/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// donorRepository implements DonorRepository interface
type donorRepository struct {
	db *gorm.DB
}

// NewDonorRepository creates a new donor repository
func NewDonorRepository(db *gorm.DB) DonorRepository {
	return &donorRepository{db: db}
}

// Create creates a new donor profile
func (r *donorRepository) Create(ctx context.Context, donor *models.Donor) error {
	return r.db.WithContext(ctx).Create(donor).Error
}

// GetByUserID gets a donor profile by its owning user ID
func (r *donorRepository) GetByUserID(ctx context.Context, userID uint) (*models.Donor, error) {
	var donor models.Donor
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&donor).Error
	if err != nil {
		return nil, err
	}
	return &donor, nil
}

// Update updates a donor profile
func (r *donorRepository) Update(ctx context.Context, donor *models.Donor) error {
	return r.db.WithContext(ctx).Save(donor).Error
}

// DeleteByUserID deletes the donor profile owned by a user (admin cascade)
func (r *donorRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Donor{}).Error
}

// AppendDonation appends one entry to a donor's donation log
func (r *donorRepository) AppendDonation(ctx context.Context, entry *models.DonationEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListDonations lists a donor's donation log in insertion order
func (r *donorRepository) ListDonations(ctx context.Context, donorID uint) ([]*models.DonationEntry, error) {
	var entries []*models.DonationEntry
	err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// AvailabilityByUserIDs maps user IDs to their donor availability flag.
// User IDs without a donor profile are absent from the result.
func (r *donorRepository) AvailabilityByUserIDs(ctx context.Context, userIDs []uint) (map[uint]bool, error) {
	if len(userIDs) == 0 {
		return map[uint]bool{}, nil
	}

	var donors []*models.Donor
	err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&donors).Error
	if err != nil {
		return nil, err
	}

	result := make(map[uint]bool, len(donors))
	for _, d := range donors {
		result[d.UserID] = d.Availability
	}
	return result, nil
}
