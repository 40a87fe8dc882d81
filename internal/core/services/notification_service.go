package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/adapters/persistence/repositories"
	"bloodbridge/internal/core/domain"

	"gorm.io/gorm"
)

// Notification service errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidAudience      = errors.New("invalid notification audience")
	ErrMissingTitle         = errors.New("title is required")
	ErrMissingMessage       = errors.New("message is required")
)

// NotificationService handles notification fan-out, broadcasts, and the
// role/region scoped listing. Delivery is pull-based.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// FanOutRequest creates one notification per matching donor for a new
// blood request. Best-effort: individual insert failures are logged and
// never surfaced to the request path.
func (s *NotificationService) FanOutRequest(ctx context.Context, request *models.BloodRequest, donors []*models.User) {
	for _, donor := range donors {
		notification := &models.Notification{
			Title: fmt.Sprintf("Blood Needed: %s", request.BloodGroup),
			Message: fmt.Sprintf("Hi %s, a request for %s blood was posted in %s. Hospital: %s",
				donor.FullName, request.BloodGroup, request.Region, request.Hospital),
			Role:   string(domain.RoleDonor),
			Region: request.Region,
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			log.Printf("⚠️ Notification fan-out failed for donor %d (request %d): %v",
				donor.ID, request.ID, err)
		}
	}
}

// BroadcastInput represents an admin broadcast
type BroadcastInput struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
	Role    string `json:"role" validate:"required"`
	Region  string `json:"region,omitempty"`
}

// Broadcast creates an admin notification targeted at a role (or all roles)
// and optionally a region.
func (s *NotificationService) Broadcast(ctx context.Context, input *BroadcastInput) (*models.Notification, error) {
	if input.Title == "" {
		return nil, ErrMissingTitle
	}
	if input.Message == "" {
		return nil, ErrMissingMessage
	}
	if !domain.IsValidAudience(input.Role) {
		return nil, ErrInvalidAudience
	}
	if input.Region != "" && !domain.IsValidRegion(input.Region) {
		return nil, ErrInvalidRegion
	}

	notification := &models.Notification{
		Title:   input.Title,
		Message: input.Message,
		Role:    input.Role,
		Region:  input.Region,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// List returns the notifications visible to the caller, newest first
func (s *NotificationService) List(ctx context.Context, identity domain.Identity) ([]*models.Notification, error) {
	region := ""
	if identity.Role != domain.RoleAdmin {
		user, err := s.userRepo.GetByID(ctx, identity.UserID)
		if err != nil {
			return nil, ErrUserNotFound
		}
		region = user.Region
	}

	scope := NotificationScopeFor(identity, region)
	notifications, err := s.notificationRepo.List(ctx, scope)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []*models.Notification{}
	}
	return notifications, nil
}

// MarkRead marks a single notification as read
func (s *NotificationService) MarkRead(ctx context.Context, id uint) (*models.Notification, error) {
	notification, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}

	notification.IsRead = true
	if err := s.notificationRepo.Update(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}
