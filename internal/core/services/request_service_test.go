package services

import (
	"context"
	"testing"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/adapters/persistence/repositories"
	"bloodbridge/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newRequestServiceForTest() (*RequestService, *MockRequestRepository, *MockUserRepository, *MockNotificationRepository) {
	requestRepo := new(MockRequestRepository)
	userRepo := new(MockUserRepository)
	notificationRepo := new(MockNotificationRepository)
	notifySvc := NewNotificationService(notificationRepo, userRepo)
	svc := NewRequestService(requestRepo, userRepo, notifySvc)
	return svc, requestRepo, userRepo, notificationRepo
}

func TestSubmit_DefaultsToPendingAndFansOut(t *testing.T) {
	svc, requestRepo, userRepo, notificationRepo := newRequestServiceForTest()
	ctx := context.Background()

	donors := []*models.User{
		{ID: 10, FullName: "Alice", BloodType: "A+", Region: "North"},
		{ID: 11, FullName: "Bob", BloodType: "A+", Region: "North"},
	}

	requestRepo.On("Create", ctx, mock.AnythingOfType("*models.BloodRequest")).Return(nil)
	userRepo.On("FindMatchingDonors", ctx, "A+", "North").Return(donors, nil)
	notificationRepo.On("Create", ctx, mock.AnythingOfType("*models.Notification")).Return(nil)

	request, err := svc.Submit(ctx, 5, &SubmitInput{
		BloodGroup: "A+",
		Region:     "North",
		Hospital:   "City General",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RequestPending, request.Status)
	assert.Equal(t, uint(5), request.RequesterID)
	notificationRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestSubmit_FanOutTargetsDonorRoleInRequestRegion(t *testing.T) {
	svc, requestRepo, userRepo, notificationRepo := newRequestServiceForTest()
	ctx := context.Background()

	donors := []*models.User{{ID: 10, FullName: "Alice", BloodType: "O-", Region: "South"}}

	requestRepo.On("Create", ctx, mock.AnythingOfType("*models.BloodRequest")).Return(nil)
	userRepo.On("FindMatchingDonors", ctx, "O-", "South").Return(donors, nil)
	notificationRepo.On("Create", ctx, mock.MatchedBy(func(n *models.Notification) bool {
		return n.Role == "donor" && n.Region == "South" && n.Title == "Blood Needed: O-"
	})).Return(nil)

	_, err := svc.Submit(ctx, 5, &SubmitInput{BloodGroup: "O-", Region: "South"})

	assert.NoError(t, err)
	notificationRepo.AssertExpectations(t)
}

func TestSubmit_CallerSuppliedStatusIsTrusted(t *testing.T) {
	svc, requestRepo, userRepo, _ := newRequestServiceForTest()
	ctx := context.Background()

	requestRepo.On("Create", ctx, mock.AnythingOfType("*models.BloodRequest")).Return(nil)
	userRepo.On("FindMatchingDonors", ctx, "B+", "East").Return([]*models.User{}, nil)

	request, err := svc.Submit(ctx, 5, &SubmitInput{
		BloodGroup: "B+",
		Region:     "East",
		Status:     domain.RequestCritical,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RequestCritical, request.Status)
}

func TestSubmit_RejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := newRequestServiceForTest()

	_, err := svc.Submit(context.Background(), 5, &SubmitInput{
		BloodGroup: "B+",
		Region:     "East",
		Status:     "Urgent",
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSubmit_ValidatesInput(t *testing.T) {
	svc, _, _, _ := newRequestServiceForTest()
	ctx := context.Background()

	_, err := svc.Submit(ctx, 5, &SubmitInput{Region: "East"})
	assert.ErrorIs(t, err, ErrMissingBloodGroup)

	_, err = svc.Submit(ctx, 5, &SubmitInput{BloodGroup: "A+"})
	assert.ErrorIs(t, err, ErrMissingRegion)

	_, err = svc.Submit(ctx, 5, &SubmitInput{BloodGroup: "C+", Region: "East"})
	assert.ErrorIs(t, err, ErrInvalidBloodType)

	_, err = svc.Submit(ctx, 5, &SubmitInput{BloodGroup: "A+", Region: "Central"})
	assert.ErrorIs(t, err, ErrInvalidRegion)
}

func TestSubmit_FanOutFailureDoesNotFailSubmission(t *testing.T) {
	svc, requestRepo, userRepo, _ := newRequestServiceForTest()
	ctx := context.Background()

	requestRepo.On("Create", ctx, mock.AnythingOfType("*models.BloodRequest")).Return(nil)
	userRepo.On("FindMatchingDonors", ctx, "A+", "North").Return(nil, gorm.ErrInvalidDB)

	request, err := svc.Submit(ctx, 5, &SubmitInput{BloodGroup: "A+", Region: "North"})

	assert.NoError(t, err)
	assert.NotNil(t, request)
}

func TestUpdateStatus_ApprovedStampsActorSnapshot(t *testing.T) {
	svc, requestRepo, userRepo, _ := newRequestServiceForTest()
	ctx := context.Background()

	stored := &models.BloodRequest{ID: 9, Status: domain.RequestPending}
	actor := &models.User{ID: 3, FullName: "Dana Admin", Phone: "555-0101"}

	requestRepo.On("GetByID", ctx, uint(9)).Return(stored, nil)
	userRepo.On("GetByID", ctx, uint(3)).Return(actor, nil)
	requestRepo.On("Update", ctx, stored).Return(nil)

	updated, err := svc.UpdateStatus(ctx, 9, domain.RequestApproved, domain.Identity{UserID: 3, Role: domain.RoleDonor})

	assert.NoError(t, err)
	assert.Equal(t, domain.RequestApproved, updated.Status)
	assert.Equal(t, "Dana Admin", updated.ApprovedByName)
	assert.Equal(t, "555-0101", updated.ApprovedByPhone)
}

func TestUpdateStatus_LaterTransitionKeepsApproverSnapshot(t *testing.T) {
	svc, requestRepo, _, _ := newRequestServiceForTest()
	ctx := context.Background()

	stored := &models.BloodRequest{
		ID:              9,
		Status:          domain.RequestApproved,
		ApprovedByName:  "Dana Admin",
		ApprovedByPhone: "555-0101",
	}

	requestRepo.On("GetByID", ctx, uint(9)).Return(stored, nil)
	requestRepo.On("Update", ctx, stored).Return(nil)

	updated, err := svc.UpdateStatus(ctx, 9, domain.RequestFulfilled, domain.Identity{UserID: 8, Role: domain.RoleUser})

	assert.NoError(t, err)
	assert.Equal(t, domain.RequestFulfilled, updated.Status)
	assert.Equal(t, "Dana Admin", updated.ApprovedByName)
	assert.Equal(t, "555-0101", updated.ApprovedByPhone)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := newRequestServiceForTest()

	_, err := svc.UpdateStatus(context.Background(), 9, "Done", domain.Identity{UserID: 3})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, requestRepo, _, _ := newRequestServiceForTest()
	ctx := context.Background()

	requestRepo.On("GetByID", ctx, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateStatus(ctx, 99, domain.RequestFulfilled, domain.Identity{UserID: 3})

	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestList_AdminGetsAllRequests(t *testing.T) {
	svc, requestRepo, _, _ := newRequestServiceForTest()
	ctx := context.Background()

	stored := []*models.BloodRequest{
		{ID: 2, Requester: &models.User{FullName: "Pat", Email: "pat@example.com"}},
		{ID: 1},
	}
	requestRepo.On("List", ctx, repositories.RequestScope{All: true, NewestFirst: true}).Return(stored, nil)

	responses, err := svc.List(ctx, domain.Identity{UserID: 1, Role: domain.RoleAdmin})

	assert.NoError(t, err)
	assert.Len(t, responses, 2)
	assert.NotNil(t, responses[0].Requester)
	assert.Equal(t, "Pat", responses[0].Requester.FullName)
}

func TestList_DonorScopedToOwnRegion(t *testing.T) {
	svc, requestRepo, userRepo, _ := newRequestServiceForTest()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, uint(4)).Return(&models.User{ID: 4, Region: "West"}, nil)
	requestRepo.On("List", ctx, repositories.RequestScope{Region: "West", NewestFirst: true}).
		Return([]*models.BloodRequest{{ID: 1, Region: "West"}}, nil)

	responses, err := svc.List(ctx, domain.Identity{UserID: 4, Role: domain.RoleDonor})

	assert.NoError(t, err)
	assert.Len(t, responses, 1)
}

func TestList_DonorWithoutRegionFails(t *testing.T) {
	svc, _, userRepo, _ := newRequestServiceForTest()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, uint(4)).Return(&models.User{ID: 4, Region: ""}, nil)

	_, err := svc.List(ctx, domain.Identity{UserID: 4, Role: domain.RoleDonor})

	assert.ErrorIs(t, err, ErrDonorRegionNotSet)
}

func TestList_UserScopedToOwnRequests(t *testing.T) {
	svc, requestRepo, _, _ := newRequestServiceForTest()
	ctx := context.Background()

	requestRepo.On("List", ctx, repositories.RequestScope{RequesterID: 6}).
		Return([]*models.BloodRequest{}, nil)

	responses, err := svc.List(ctx, domain.Identity{UserID: 6, Role: domain.RoleUser})

	assert.NoError(t, err)
	assert.Empty(t, responses)
}
