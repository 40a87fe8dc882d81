package services

import (
	"context"
	"errors"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/adapters/persistence/repositories"
	"bloodbridge/internal/core/domain"

	"gorm.io/gorm"
)

// Request service errors
var (
	ErrRequestNotFound   = errors.New("blood request not found")
	ErrMissingBloodGroup = errors.New("blood group is required")
	ErrMissingRegion     = errors.New("region is required")
	ErrInvalidStatus     = errors.New("invalid request status")
	ErrDonorRegionNotSet = errors.New("donor has no region set")
)

// RequestService implements the blood request workflow: submission with
// donor fan-out, the status lifecycle, and role-scoped listing.
type RequestService struct {
	requestRepo repositories.RequestRepository
	userRepo    repositories.UserRepository
	notifySvc   *NotificationService
}

// NewRequestService creates a new request service
func NewRequestService(
	requestRepo repositories.RequestRepository,
	userRepo repositories.UserRepository,
	notifySvc *NotificationService,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		notifySvc:   notifySvc,
	}
}

// SubmitInput represents a new blood request
type SubmitInput struct {
	BloodGroup string `json:"blood_group" validate:"required"`
	Region     string `json:"region" validate:"required"`
	Hospital   string `json:"hospital,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Status     string `json:"status,omitempty"`
}

// Submit creates a blood request and fans out one notification per donor
// whose blood type and region match. Fan-out is best-effort: a failed
// notification insert never rolls back the created request.
func (s *RequestService) Submit(ctx context.Context, requesterID uint, input *SubmitInput) (*models.BloodRequest, error) {
	if input.BloodGroup == "" {
		return nil, ErrMissingBloodGroup
	}
	if input.Region == "" {
		return nil, ErrMissingRegion
	}
	if !domain.IsValidBloodType(input.BloodGroup) {
		return nil, ErrInvalidBloodType
	}
	if !domain.IsValidRegion(input.Region) {
		return nil, ErrInvalidRegion
	}

	// Caller-supplied status is trusted once it parses as a known state.
	status := input.Status
	if status == "" {
		status = domain.RequestPending
	} else if !domain.IsValidRequestStatus(status) {
		return nil, ErrInvalidStatus
	}

	request := &models.BloodRequest{
		RequesterID: requesterID,
		BloodGroup:  input.BloodGroup,
		Region:      input.Region,
		Hospital:    input.Hospital,
		Notes:       input.Notes,
		Status:      status,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	// Fan out to matching donors
	donors, err := s.userRepo.FindMatchingDonors(ctx, request.BloodGroup, request.Region)
	if err == nil {
		s.notifySvc.FanOutRequest(ctx, request, donors)
	}

	return request, nil
}

// UpdateStatus transitions a request to a new lifecycle state. On the
// Approved transition the actor's name and phone are snapshotted into the
// request; later transitions leave the snapshot untouched.
func (s *RequestService) UpdateStatus(ctx context.Context, requestID uint, newStatus string, actor domain.Identity) (*models.BloodRequest, error) {
	if !domain.IsValidRequestStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if newStatus == domain.RequestApproved {
		actorUser, err := s.userRepo.GetByID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		request.ApprovedByName = actorUser.FullName
		request.ApprovedByPhone = actorUser.Phone
	}

	request.Status = newStatus
	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// List returns the requests the caller may see. Admins get every request
// joined with a requester summary, donors get their region, plain users get
// their own requests.
func (s *RequestService) List(ctx context.Context, identity domain.Identity) ([]*models.BloodRequestResponse, error) {
	region := ""
	if identity.Role == domain.RoleDonor {
		donorUser, err := s.userRepo.GetByID(ctx, identity.UserID)
		if err != nil {
			return nil, ErrUserNotFound
		}
		region = donorUser.Region
	}

	scope, err := RequestScopeFor(identity, region)
	if err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.BloodRequestResponse, len(requests))
	for i, r := range requests {
		responses[i] = r.ToResponse()
	}
	return responses, nil
}
