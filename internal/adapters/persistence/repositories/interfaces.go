package repositories

import (
	"context"

	"bloodbridge/internal/adapters/persistence/models"
)

// RequestScope narrows a blood request listing to what the caller may see.
// Built by the service layer, executed here.
type RequestScope struct {
	All         bool
	Region      string
	RequesterID uint
	NewestFirst bool
}

// NotificationScope narrows a notification listing. When All is false the
// listing is (role = 'all') OR (role = Role AND region = Region).
type NotificationScope struct {
	All    bool
	Role   string
	Region string
}

// DonorFilter holds the optional donor search criteria
type DonorFilter struct {
	BloodType string
	Name      string
	Region    string
}

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindMatchingDonors(ctx context.Context, bloodType, region string) ([]*models.User, error)
	SearchDonors(ctx context.Context, filter DonorFilter) ([]*models.User, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// DonorRepository defines donor profile and donation log access
type DonorRepository interface {
	Create(ctx context.Context, donor *models.Donor) error
	GetByUserID(ctx context.Context, userID uint) (*models.Donor, error)
	Update(ctx context.Context, donor *models.Donor) error
	DeleteByUserID(ctx context.Context, userID uint) error
	AppendDonation(ctx context.Context, entry *models.DonationEntry) error
	ListDonations(ctx context.Context, donorID uint) ([]*models.DonationEntry, error)
	AvailabilityByUserIDs(ctx context.Context, userIDs []uint) (map[uint]bool, error)
}

// InventoryRepository defines blood inventory access
type InventoryRepository interface {
	GetByBloodType(ctx context.Context, bloodType string) (*models.BloodInventory, error)
	Upsert(ctx context.Context, inv *models.BloodInventory) error
	IncrementUnits(ctx context.Context, bloodType string, units int) error
	List(ctx context.Context, bloodType string) ([]*models.BloodInventory, error)
}

// RequestRepository defines blood request access
type RequestRepository interface {
	Create(ctx context.Context, request *models.BloodRequest) error
	GetByID(ctx context.Context, id uint) (*models.BloodRequest, error)
	Update(ctx context.Context, request *models.BloodRequest) error
	List(ctx context.Context, scope RequestScope) ([]*models.BloodRequest, error)
}

// NotificationRepository defines notification access
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	Update(ctx context.Context, notification *models.Notification) error
	List(ctx context.Context, scope NotificationScope) ([]*models.Notification, error)
}

// BankRepository defines partner blood bank access
type BankRepository interface {
	Create(ctx context.Context, bank *models.BloodBank) error
	GetByID(ctx context.Context, id uint) (*models.BloodBank, error)
	Update(ctx context.Context, bank *models.BloodBank) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.BloodBank, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
