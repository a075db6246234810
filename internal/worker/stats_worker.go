package worker

import (
	"context"
	"log"
	"time"

	"github.com/tradejournal/internal/repository"
	"github.com/tradejournal/internal/service"
)

// StatsWorker keeps the cached performance summaries warm so dashboard
// reads stay cheap even after the cache TTL lapses
type StatsWorker struct {
	statsService *service.StatsService
	userRepo     *repository.UserRepository
	interval     time.Duration
	stopChan     chan struct{}
}

// NewStatsWorker creates a new stats refresh worker
func NewStatsWorker(
	statsService *service.StatsService,
	userRepo *repository.UserRepository,
	interval time.Duration,
) *StatsWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &StatsWorker{
		statsService: statsService,
		userRepo:     userRepo,
		interval:     interval,
		stopChan:     make(chan struct{}),
	}
}

// Start begins the refresh loop
func (w *StatsWorker) Start() {
	log.Printf("Stats Worker started with interval: %v", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.refreshAll()
		case <-w.stopChan:
			log.Println("Stats Worker stopped")
			return
		}
	}
}

// Stop stops the refresh loop
func (w *StatsWorker) Stop() {
	close(w.stopChan)
}

// refreshAll recomputes the cached summaries for every user
func (w *StatsWorker) refreshAll() {
	ids, err := w.userRepo.ListIDs()
	if err != nil {
		log.Printf("Stats Worker: failed to list users: %v", err)
		return
	}

	ctx := context.Background()
	for _, id := range ids {
		if err := w.statsService.Refresh(ctx, id); err != nil {
			log.Printf("Stats Worker: failed to refresh stats for user %d: %v", id, err)
		}
	}
}
