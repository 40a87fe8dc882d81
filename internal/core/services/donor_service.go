package services

import (
	"context"
	"errors"
	"log"
	"time"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Donor service errors
var (
	ErrDonorProfileNotFound = errors.New("donor profile not found")
	ErrInvalidUnits         = errors.New("units must be at least 1")
)

// DefaultDonationNotes is used when a donation carries no notes
const DefaultDonationNotes = "Recorded via dashboard"

// DonorService implements the donation and inventory ledger: donation
// recording with the shared inventory credit, availability, and history.
type DonorService struct {
	donorRepo     repositories.DonorRepository
	userRepo      repositories.UserRepository
	inventoryRepo repositories.InventoryRepository
}

// NewDonorService creates a new donor service
func NewDonorService(
	donorRepo repositories.DonorRepository,
	userRepo repositories.UserRepository,
	inventoryRepo repositories.InventoryRepository,
) *DonorService {
	return &DonorService{
		donorRepo:     donorRepo,
		userRepo:      userRepo,
		inventoryRepo: inventoryRepo,
	}
}

// DonationResult is the outcome of a recorded donation
type DonationResult struct {
	Donor     *models.Donor          `json:"donor"`
	Inventory *models.BloodInventory `json:"inventory"`
}

// RecordDonation appends a donation to the donor's log and credits the
// shared inventory counter for the donor's blood type. The log append and
// the inventory credit are two separate writes: the credit itself is an
// atomic SQL increment, but there is no cross-table transaction (see
// DESIGN.md).
func (s *DonorService) RecordDonation(ctx context.Context, userID uint, units int, notes string) (*DonationResult, error) {
	if units < 1 {
		return nil, ErrInvalidUnits
	}

	donor, err := s.donorRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorProfileNotFound
		}
		return nil, err
	}

	if notes == "" {
		notes = DefaultDonationNotes
	}

	now := time.Now()
	entry := &models.DonationEntry{
		DonorID: donor.ID,
		Date:    now,
		Units:   units,
		Notes:   notes,
	}
	if err := s.donorRepo.AppendDonation(ctx, entry); err != nil {
		return nil, err
	}

	donor.LastDonationDate = &now
	if err := s.donorRepo.Update(ctx, donor); err != nil {
		return nil, err
	}

	// Credit the shared counter for the donor's blood type
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.IncrementUnits(ctx, user.BloodType, units); err != nil {
		return nil, err
	}

	inventory, err := s.inventoryRepo.GetByBloodType(ctx, user.BloodType)
	if err != nil {
		// The credit went through; a failed read-back only degrades the response
		log.Printf("⚠️ Failed to read back inventory for %s: %v", user.BloodType, err)
		inventory = nil
	}

	log.Printf("✅ Donation recorded: user %d, %d unit(s) of %s", userID, units, user.BloodType)

	return &DonationResult{
		Donor:     donor,
		Inventory: inventory,
	}, nil
}

// SetAvailability updates the donor's availability flag. Idempotent.
func (s *DonorService) SetAvailability(ctx context.Context, userID uint, available bool) (*models.Donor, error) {
	donor, err := s.donorRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorProfileNotFound
		}
		return nil, err
	}

	donor.Availability = available
	if err := s.donorRepo.Update(ctx, donor); err != nil {
		return nil, err
	}
	return donor, nil
}

// GetHistory returns the donor's donation log in insertion order, oldest
// first. An empty log is an empty slice, not an error.
func (s *DonorService) GetHistory(ctx context.Context, userID uint) ([]*models.DonationEntry, error) {
	donor, err := s.donorRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorProfileNotFound
		}
		return nil, err
	}

	entries, err := s.donorRepo.ListDonations(ctx, donor.ID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.DonationEntry{}
	}
	return entries, nil
}
