package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/adapters/persistence/repositories"
	"bloodbridge/internal/core/domain"

	"gorm.io/gorm"
)

// Directory service errors
var (
	ErrBankNotFound           = errors.New("blood bank not found")
	ErrBankAlreadyExists      = errors.New("blood bank name already exists")
	ErrMissingBankName        = errors.New("bank name is required")
	ErrInvalidInventoryStatus = errors.New("invalid inventory status")
)

// DirectoryService implements role-aware search over donors, partner banks,
// and the inventory ledger, plus the admin-managed bank directory.
type DirectoryService struct {
	userRepo      repositories.UserRepository
	donorRepo     repositories.DonorRepository
	bankRepo      repositories.BankRepository
	inventoryRepo repositories.InventoryRepository
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(
	userRepo repositories.UserRepository,
	donorRepo repositories.DonorRepository,
	bankRepo repositories.BankRepository,
	inventoryRepo repositories.InventoryRepository,
) *DirectoryService {
	return &DirectoryService{
		userRepo:      userRepo,
		donorRepo:     donorRepo,
		bankRepo:      bankRepo,
		inventoryRepo: inventoryRepo,
	}
}

// InventorySearchResult pairs partner banks with the inventory ledger
type InventorySearchResult struct {
	Banks     []*models.BloodBank      `json:"banks"`
	Inventory []*models.BloodInventory `json:"inventory"`
}

// SearchInventory searches partner banks and the inventory ledger. Banks
// are filtered by a case-insensitive substring match of region against
// location (a post-fetch scan over the directory); inventory by exact blood
// type. Both filters are optional and independent.
func (s *DirectoryService) SearchInventory(ctx context.Context, bloodType, region string) (*InventorySearchResult, error) {
	banks, err := s.bankRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if region != "" {
		needle := strings.ToLower(region)
		filtered := make([]*models.BloodBank, 0, len(banks))
		for _, bank := range banks {
			if strings.Contains(strings.ToLower(bank.Location), needle) {
				filtered = append(filtered, bank)
			}
		}
		banks = filtered
	}

	inventory, err := s.inventoryRepo.List(ctx, bloodType)
	if err != nil {
		return nil, err
	}

	if banks == nil {
		banks = []*models.BloodBank{}
	}
	if inventory == nil {
		inventory = []*models.BloodInventory{}
	}

	return &InventorySearchResult{
		Banks:     banks,
		Inventory: inventory,
	}, nil
}

// SearchDonors searches donor-role users and joins each one's availability
// flag from the donor profiles. A failed join leaves availability absent
// for that user rather than failing the search. No matches is an empty
// slice, not an error.
func (s *DirectoryService) SearchDonors(ctx context.Context, filter repositories.DonorFilter) ([]*models.UserResponse, error) {
	users, err := s.userRepo.SearchDonors(ctx, filter)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint, len(users))
	for i, u := range users {
		userIDs[i] = u.ID
	}

	availability, err := s.donorRepo.AvailabilityByUserIDs(ctx, userIDs)
	if err != nil {
		log.Printf("⚠️ Availability join failed: %v", err)
		availability = map[uint]bool{}
	}

	results := make([]*models.UserResponse, len(users))
	for i, u := range users {
		resp := u.ToResponse()
		if avail, ok := availability[u.ID]; ok {
			resp.Availability = &avail
		}
		results[i] = resp
	}
	return results, nil
}

// DemandLevel is a static demand entry for one blood type
type DemandLevel struct {
	BloodType string `json:"blood_type"`
	Demand    string `json:"demand"`
}

// demandTable is the static per-blood-type demand reference. The only
// analytics this system ships.
var demandTable = []DemandLevel{
	{BloodType: "O-", Demand: "Very High"},
	{BloodType: "O+", Demand: "High"},
	{BloodType: "A+", Demand: "High"},
	{BloodType: "B+", Demand: "Medium"},
	{BloodType: "A-", Demand: "Medium"},
	{BloodType: "B-", Demand: "Low"},
	{BloodType: "AB+", Demand: "Low"},
	{BloodType: "AB-", Demand: "Low"},
}

// DemandTable returns the static blood demand table
func (s *DirectoryService) DemandTable() []DemandLevel {
	return demandTable
}

// BankInput represents admin create/update of a partner bank
type BankInput struct {
	Name           string         `json:"name" validate:"required"`
	Location       string         `json:"location,omitempty"`
	Contact        string         `json:"contact,omitempty"`
	AvailableUnits map[string]int `json:"available_units,omitempty"`
}

// CreateBank creates a partner bank directory entry
func (s *DirectoryService) CreateBank(ctx context.Context, input *BankInput) (*models.BloodBank, error) {
	if input.Name == "" {
		return nil, ErrMissingBankName
	}

	exists, err := s.bankRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrBankAlreadyExists
	}

	bank := &models.BloodBank{
		Name:           input.Name,
		Location:       input.Location,
		Contact:        input.Contact,
		AvailableUnits: input.AvailableUnits,
	}
	if err := s.bankRepo.Create(ctx, bank); err != nil {
		return nil, err
	}
	return bank, nil
}

// UpdateBank updates a partner bank directory entry
func (s *DirectoryService) UpdateBank(ctx context.Context, id uint, input *BankInput) (*models.BloodBank, error) {
	bank, err := s.bankRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBankNotFound
		}
		return nil, err
	}

	if input.Name != "" && input.Name != bank.Name {
		exists, err := s.bankRepo.ExistsByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrBankAlreadyExists
		}
		bank.Name = input.Name
	}
	if input.Location != "" {
		bank.Location = input.Location
	}
	if input.Contact != "" {
		bank.Contact = input.Contact
	}
	if input.AvailableUnits != nil {
		bank.AvailableUnits = input.AvailableUnits
	}

	if err := s.bankRepo.Update(ctx, bank); err != nil {
		return nil, err
	}
	return bank, nil
}

// DeleteBank deletes a partner bank directory entry
func (s *DirectoryService) DeleteBank(ctx context.Context, id uint) error {
	if _, err := s.bankRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBankNotFound
		}
		return err
	}
	return s.bankRepo.Delete(ctx, id)
}

// ListBanks lists all partner banks
func (s *DirectoryService) ListBanks(ctx context.Context) ([]*models.BloodBank, error) {
	return s.bankRepo.List(ctx)
}

// InventoryUpsertInput represents an admin inventory overwrite
type InventoryUpsertInput struct {
	BloodType      string `json:"blood_type" validate:"required"`
	AvailableUnits int    `json:"available_units"`
	Status         string `json:"status,omitempty"`
}

// UpsertInventory overwrites (or creates) the inventory row for a blood
// type. The status level is descriptive and taken as given.
func (s *DirectoryService) UpsertInventory(ctx context.Context, input *InventoryUpsertInput) (*models.BloodInventory, error) {
	if !domain.IsValidBloodType(input.BloodType) {
		return nil, ErrInvalidBloodType
	}

	status := input.Status
	if status == "" {
		status = domain.InventoryLow
	} else if !domain.IsValidInventoryStatus(status) {
		return nil, ErrInvalidInventoryStatus
	}

	inv := &models.BloodInventory{
		BloodType:      input.BloodType,
		AvailableUnits: input.AvailableUnits,
		Status:         status,
	}
	if err := s.inventoryRepo.Upsert(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}
