package service

import (
	"context"
	"log"
	"time"

	"bookmydoc-api/internal/repository"
)

type WorkerService struct {
	userRepo *repository.UserRepository
	interval time.Duration
}

func NewWorkerService(userRepo *repository.UserRepository) *WorkerService {
	return &WorkerService{
		userRepo: userRepo,
		interval: time.Hour,
	}
}

// Start begins the background worker that purges stale refresh tokens
func (w *WorkerService) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Printf("Background worker started - purging stale refresh tokens every %s", w.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Background worker stopped")
			return
		case <-ticker.C:
			w.purgeStaleTokens()
		}
	}
}

// purgeStaleTokens removes refresh tokens that expired or were revoked.
// Failures are logged and retried on the next tick.
func (w *WorkerService) purgeStaleTokens() {
	removed, err := w.userRepo.DeleteStaleRefreshTokens(time.Now())
	if err != nil {
		log.Printf("Error purging stale refresh tokens: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Purged %d stale refresh tokens", removed)
	}
}
