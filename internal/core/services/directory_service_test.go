package services

import (
	"context"
	"testing"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newDirectoryServiceForTest() (*DirectoryService, *MockUserRepository, *MockDonorRepository, *MockBankRepository, *MockInventoryRepository) {
	userRepo := new(MockUserRepository)
	donorRepo := new(MockDonorRepository)
	bankRepo := new(MockBankRepository)
	inventoryRepo := new(MockInventoryRepository)
	svc := NewDirectoryService(userRepo, donorRepo, bankRepo, inventoryRepo)
	return svc, userRepo, donorRepo, bankRepo, inventoryRepo
}

func TestSearchInventory_RegionFiltersBanksBySubstring(t *testing.T) {
	svc, _, _, bankRepo, inventoryRepo := newDirectoryServiceForTest()
	ctx := context.Background()

	banks := []*models.BloodBank{
		{ID: 1, Name: "Northside Center", Location: "North District, Block 4"},
		{ID: 2, Name: "Harbor Bank", Location: "South Harbor"},
	}
	bankRepo.On("List", ctx).Return(banks, nil)
	inventoryRepo.On("List", ctx, "").Return([]*models.BloodInventory{}, nil)

	result, err := svc.SearchInventory(ctx, "", "north")

	assert.NoError(t, err)
	assert.Len(t, result.Banks, 1)
	assert.Equal(t, "Northside Center", result.Banks[0].Name)
}

func TestSearchInventory_BloodTypeFiltersLedger(t *testing.T) {
	svc, _, _, bankRepo, inventoryRepo := newDirectoryServiceForTest()
	ctx := context.Background()

	bankRepo.On("List", ctx).Return([]*models.BloodBank{}, nil)
	inventoryRepo.On("List", ctx, "AB-").
		Return([]*models.BloodInventory{{BloodType: "AB-", AvailableUnits: 3}}, nil)

	result, err := svc.SearchInventory(ctx, "AB-", "")

	assert.NoError(t, err)
	assert.Len(t, result.Inventory, 1)
	assert.Equal(t, "AB-", result.Inventory[0].BloodType)
}

func TestSearchInventory_NoMatchesReturnsEmptySlices(t *testing.T) {
	svc, _, _, bankRepo, inventoryRepo := newDirectoryServiceForTest()
	ctx := context.Background()

	bankRepo.On("List", ctx).Return(nil, nil)
	inventoryRepo.On("List", ctx, "").Return(nil, nil)

	result, err := svc.SearchInventory(ctx, "", "")

	assert.NoError(t, err)
	assert.NotNil(t, result.Banks)
	assert.NotNil(t, result.Inventory)
	assert.Empty(t, result.Banks)
	assert.Empty(t, result.Inventory)
}

func TestSearchDonors_AnnotatesAvailability(t *testing.T) {
	svc, userRepo, donorRepo, _, _ := newDirectoryServiceForTest()
	ctx := context.Background()

	filter := repositories.DonorFilter{BloodType: "O+"}
	users := []*models.User{
		{ID: 1, FullName: "Alice", Role: "donor", BloodType: "O+"},
		{ID: 2, FullName: "Bob", Role: "donor", BloodType: "O+"},
	}

	userRepo.On("SearchDonors", ctx, filter).Return(users, nil)
	donorRepo.On("AvailabilityByUserIDs", ctx, []uint{1, 2}).
		Return(map[uint]bool{1: true}, nil)

	results, err := svc.SearchDonors(ctx, filter)

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.NotNil(t, results[0].Availability)
	assert.True(t, *results[0].Availability)
	assert.Nil(t, results[1].Availability)
}

func TestSearchDonors_AvailabilityJoinFailureLeavesFlagAbsent(t *testing.T) {
	svc, userRepo, donorRepo, _, _ := newDirectoryServiceForTest()
	ctx := context.Background()

	filter := repositories.DonorFilter{Name: "ali"}
	users := []*models.User{{ID: 1, FullName: "Alice", Role: "donor"}}

	userRepo.On("SearchDonors", ctx, filter).Return(users, nil)
	donorRepo.On("AvailabilityByUserIDs", ctx, []uint{1}).Return(nil, gorm.ErrInvalidDB)

	results, err := svc.SearchDonors(ctx, filter)

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Nil(t, results[0].Availability)
}

func TestDemandTable_IsStaticAndComplete(t *testing.T) {
	svc, _, _, _, _ := newDirectoryServiceForTest()

	table := svc.DemandTable()

	assert.Len(t, table, 8)
	assert.Equal(t, "O-", table[0].BloodType)
	assert.Equal(t, "Very High", table[0].Demand)
}

func TestCreateBank_RejectsDuplicateName(t *testing.T) {
	svc, _, _, bankRepo, _ := newDirectoryServiceForTest()
	ctx := context.Background()

	bankRepo.On("ExistsByName", ctx, "Harbor Bank").Return(true, nil)

	_, err := svc.CreateBank(ctx, &BankInput{Name: "Harbor Bank"})

	assert.ErrorIs(t, err, ErrBankAlreadyExists)
}

func TestCreateBank_RequiresName(t *testing.T) {
	svc, _, _, _, _ := newDirectoryServiceForTest()

	_, err := svc.CreateBank(context.Background(), &BankInput{})

	assert.ErrorIs(t, err, ErrMissingBankName)
}

func TestUpdateBank_RenameChecksUniqueness(t *testing.T) {
	svc, _, _, bankRepo, _ := newDirectoryServiceForTest()
	ctx := context.Background()

	stored := &models.BloodBank{ID: 3, Name: "Old Name"}
	bankRepo.On("GetByID", ctx, uint(3)).Return(stored, nil)
	bankRepo.On("ExistsByName", ctx, "New Name").Return(false, nil)
	bankRepo.On("Update", ctx, stored).Return(nil)

	bank, err := svc.UpdateBank(ctx, 3, &BankInput{Name: "New Name"})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", bank.Name)
}

func TestDeleteBank_NotFound(t *testing.T) {
	svc, _, _, bankRepo, _ := newDirectoryServiceForTest()
	ctx := context.Background()

	bankRepo.On("GetByID", ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeleteBank(ctx, 9)

	assert.ErrorIs(t, err, ErrBankNotFound)
}

func TestUpsertInventory_DefaultsStatusToLow(t *testing.T) {
	svc, _, _, _, inventoryRepo := newDirectoryServiceForTest()
	ctx := context.Background()

	inventoryRepo.On("Upsert", ctx, &models.BloodInventory{
		BloodType:      "A+",
		AvailableUnits: 40,
		Status:         "Low",
	}).Return(nil)

	inv, err := svc.UpsertInventory(ctx, &InventoryUpsertInput{BloodType: "A+", AvailableUnits: 40})

	assert.NoError(t, err)
	assert.Equal(t, "Low", inv.Status)
}

func TestUpsertInventory_RejectsUnknownStatusOrBloodType(t *testing.T) {
	svc, _, _, _, _ := newDirectoryServiceForTest()
	ctx := context.Background()

	_, err := svc.UpsertInventory(ctx, &InventoryUpsertInput{BloodType: "Z+"})
	assert.ErrorIs(t, err, ErrInvalidBloodType)

	_, err = svc.UpsertInventory(ctx, &InventoryUpsertInput{BloodType: "A+", Status: "Overflowing"})
	assert.ErrorIs(t, err, ErrInvalidInventoryStatus)
}
