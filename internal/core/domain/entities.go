package domain

import "time"

// Role represents a user role in the system
type Role string

const (
	RoleUser  Role = "user"
	RoleDonor Role = "donor"
	RoleAdmin Role = "admin"
)

// IsValidRole checks whether a role string is one of the known roles
func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleUser, RoleDonor, RoleAdmin:
		return true
	}
	return false
}

// BloodTypes lists the eight supported blood groups
var BloodTypes = []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"}

// IsValidBloodType checks whether a blood type is supported
func IsValidBloodType(bloodType string) bool {
	for _, bt := range BloodTypes {
		if bt == bloodType {
			return true
		}
	}
	return false
}

// Regions lists the service regions
var Regions = []string{"North", "East", "West", "South"}

// IsValidRegion checks whether a region is one of the service regions
func IsValidRegion(region string) bool {
	for _, r := range Regions {
		if r == region {
			return true
		}
	}
	return false
}

// Request lifecycle statuses
const (
	RequestPending   = "Pending"
	RequestApproved  = "Approved"
	RequestFulfilled = "Fulfilled"
	RequestCritical  = "Critical"
)

// RequestStatuses lists the request lifecycle states
var RequestStatuses = []string{RequestPending, RequestApproved, RequestFulfilled, RequestCritical}

// IsValidRequestStatus checks whether a status is a known lifecycle state
func IsValidRequestStatus(status string) bool {
	for _, s := range RequestStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Inventory stock levels. Descriptive only: set by admins, never derived
// from the unit counter.
const (
	InventoryHigh   = "High"
	InventoryMedium = "Medium"
	InventoryLow    = "Low"
)

// IsValidInventoryStatus checks whether a stock level is known
func IsValidInventoryStatus(status string) bool {
	return status == InventoryHigh || status == InventoryMedium || status == InventoryLow
}

// AudienceAll targets a notification at every role
const AudienceAll = "all"

// IsValidAudience checks whether a notification audience is valid
func IsValidAudience(audience string) bool {
	return audience == AudienceAll || IsValidRole(audience)
}

// Identity is the authenticated caller as seen by domain logic
type Identity struct {
	UserID uint
	Email  string
	Role   Role
}

// User represents a user in the domain layer
type User struct {
	ID        uint
	FullName  string
	Email     string
	Phone     string
	Password  string // Hashed
	Role      Role
	BloodType string
	Region    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Donor is the one-to-one extension of a donor-role user
type Donor struct {
	ID               uint
	UserID           uint
	Availability     bool
	LastDonationDate *time.Time
	Reputation       int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
