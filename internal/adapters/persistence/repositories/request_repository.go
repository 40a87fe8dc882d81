package repositories

import (
	"context"

	"bloodbridge/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// requestRepository implements RequestRepository interface
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new blood request repository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

// Create creates a new blood request
func (r *requestRepository) Create(ctx context.Context, request *models.BloodRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID gets a blood request by ID
func (r *requestRepository) GetByID(ctx context.Context, id uint) (*models.BloodRequest, error) {
	var request models.BloodRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Update updates a blood request
func (r *requestRepository) Update(ctx context.Context, request *models.BloodRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// List lists blood requests within the given visibility scope. The full
// listing preloads the requester for the admin summary join.
func (r *requestRepository) List(ctx context.Context, scope RequestScope) ([]*models.BloodRequest, error) {
	query := r.db.WithContext(ctx).Model(&models.BloodRequest{})

	switch {
	case scope.All:
		query = query.Preload("Requester")
	case scope.Region != "":
		query = query.Where("region = ?", scope.Region)
	default:
		query = query.Where("requester_id = ?", scope.RequesterID)
	}

	if scope.NewestFirst {
		query = query.Order("created_at DESC")
	}

	var requests []*models.BloodRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
