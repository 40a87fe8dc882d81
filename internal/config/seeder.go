package config

import (
	"log"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser creates the bootstrap admin account from env credentials.
// Idempotent: a second run with an admin already present is a no-op.
func (s *Seeder) seedAdminUser() error {
	if s.cfg.Admin.Email == "" || s.cfg.Admin.Password == "" {
		log.Println("⚠️ Skipping admin seed: ADMIN_EMAIL / ADMIN_PASSWORD not set")
		return nil
	}

	var count int64
	s.db.Model(&models.User{}).Where("email = ?", s.cfg.Admin.Email).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash(s.cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		FullName: s.cfg.Admin.FullName,
		Email:    s.cfg.Admin.Email,
		Phone:    s.cfg.Admin.Phone,
		Password: hashedPassword,
		Role:     "admin",
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Email)
	return nil
}
