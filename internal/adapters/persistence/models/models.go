package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FullName  string         `gorm:"size:100;not null" json:"full_name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Phone     string         `gorm:"size:20" json:"phone"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'user';index" json:"role"`
	BloodType string         `gorm:"size:5;index" json:"blood_type"`
	Region    string         `gorm:"size:20;index" json:"region"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID           uint      `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	BloodType    string    `json:"blood_type,omitempty"`
	Region       string    `json:"region,omitempty"`
	Availability *bool     `json:"availability,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		BloodType: u.BloodType,
		Region:    u.Region,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Donor Tables
// ============================================================

// Donor is the 1:1 extension of a donor-role user
type Donor struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Availability     bool       `gorm:"default:true" json:"availability"`
	LastDonationDate *time.Time `json:"last_donation_date"`
	Reputation       int        `gorm:"default:5" json:"reputation"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Donor) TableName() string {
	return "donors"
}

// DonationEntry is one row of a donor's donation log (insertion order)
type DonationEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DonorID   uint      `gorm:"index;not null" json:"donor_id"`
	Date      time.Time `gorm:"not null" json:"date"`
	Units     int       `gorm:"not null" json:"units"`
	Notes     string    `gorm:"size:255" json:"notes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`

	Donor *Donor `gorm:"foreignKey:DonorID" json:"-"`
}

func (DonationEntry) TableName() string {
	return "donation_entries"
}

// ============================================================
// Inventory & Blood Bank Tables
// ============================================================

// BloodInventory is the shared unit counter, one row per blood type
type BloodInventory struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	BloodType      string    `gorm:"uniqueIndex;size:5;not null" json:"blood_type"`
	AvailableUnits int       `gorm:"default:0" json:"available_units"`
	Status         string    `gorm:"size:10;default:'Low'" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BloodInventory) TableName() string {
	return "blood_inventories"
}

// BloodBank is an admin-managed partner directory entry. Its unit map is
// self-reported by the partner and independent of blood_inventories.
type BloodBank struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Location       string         `gorm:"size:200" json:"location"`
	Contact        string         `gorm:"size:50" json:"contact"`
	AvailableUnits map[string]int `gorm:"serializer:json" json:"available_units"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BloodBank) TableName() string {
	return "blood_banks"
}

// ============================================================
// Request & Notification Tables
// ============================================================

// BloodRequest represents blood_requests table
type BloodRequest struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	RequesterID     uint      `gorm:"index;not null" json:"requester_id"`
	BloodGroup      string    `gorm:"size:5;not null;index" json:"blood_group"`
	Region          string    `gorm:"size:20;not null;index" json:"region"`
	Hospital        string    `gorm:"size:200" json:"hospital"`
	Notes           string    `gorm:"type:text" json:"notes"`
	Status          string    `gorm:"size:20;default:'Pending'" json:"status"`
	ApprovedByName  string    `gorm:"size:100" json:"-"`
	ApprovedByPhone string    `gorm:"size:20" json:"-"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Requester *User `gorm:"foreignKey:RequesterID" json:"-"`
}

func (BloodRequest) TableName() string {
	return "blood_requests"
}

// ApprovedBy is the approver snapshot taken at approval time
type ApprovedBy struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// RequesterSummary is the joined requester info on admin listings
type RequesterSummary struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// BloodRequestResponse DTO
type BloodRequestResponse struct {
	ID          uint              `json:"id"`
	RequesterID uint              `json:"requester_id"`
	BloodGroup  string            `json:"blood_group"`
	Region      string            `json:"region"`
	Hospital    string            `json:"hospital,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	Status      string            `json:"status"`
	ApprovedBy  *ApprovedBy       `json:"approved_by,omitempty"`
	Requester   *RequesterSummary `json:"requester,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

func (r *BloodRequest) ToResponse() *BloodRequestResponse {
	resp := &BloodRequestResponse{
		ID:          r.ID,
		RequesterID: r.RequesterID,
		BloodGroup:  r.BloodGroup,
		Region:      r.Region,
		Hospital:    r.Hospital,
		Notes:       r.Notes,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}

	if r.ApprovedByName != "" || r.ApprovedByPhone != "" {
		resp.ApprovedBy = &ApprovedBy{
			Name:  r.ApprovedByName,
			Phone: r.ApprovedByPhone,
		}
	}
	if r.Requester != nil {
		resp.Requester = &RequesterSummary{
			FullName: r.Requester.FullName,
			Email:    r.Requester.Email,
			Phone:    r.Requester.Phone,
		}
	}

	return resp
}

// Notification represents notifications table. Delivery is pull-based:
// recipients read rows whose role/region match their identity.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Role      string    `gorm:"size:20;not null;index" json:"role"`
	Region    string    `gorm:"size:20;index" json:"region,omitempty"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Donor{},
		&DonationEntry{},
		&BloodInventory{},
		&BloodBank{},
		&BloodRequest{},
		&Notification{},
	)
}
