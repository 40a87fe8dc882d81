package services

import (
	"context"
	"log"

	"bloodbridge/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled maintenance jobs
type CronService struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	cron             *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(refreshTokenRepo repositories.RefreshTokenRepository) *CronService {
	return &CronService{
		refreshTokenRepo: refreshTokenRepo,
		cron:             cron.New(),
	}
}

// Start schedules the maintenance jobs (02:30 daily token purge)
func (s *CronService) Start() {
	_, err := s.cron.AddFunc("30 2 * * *", s.purgeStaleTokens)
	if err != nil {
		log.Printf("❌ Failed to schedule token purge: %v", err)
		return
	}

	s.cron.Start()
	log.Println("🚀 CronService started (token purge at 02:30 daily)")
}

// Stop gracefully stops the scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 CronService stopped")
}

// purgeStaleTokens deletes expired and revoked refresh tokens
func (s *CronService) purgeStaleTokens() {
	if err := s.refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
		log.Printf("❌ Token purge error: %v", err)
		return
	}
	log.Println("✅ Stale refresh tokens purged")
}
