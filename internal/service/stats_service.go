package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tradejournal/internal/journal"
	"github.com/tradejournal/internal/models"
	"github.com/tradejournal/internal/repository"
)

// StatsService computes performance summaries and calendar projections
// over a user's trades. Summaries are cached in redis and invalidated on
// every trade mutation; a cold redis only costs a recompute.
type StatsService struct {
	tradeRepo *repository.TradeRepository
	redis     *redis.Client
	cacheTTL  time.Duration
}

// NewStatsService creates a new StatsService
func NewStatsService(tradeRepo *repository.TradeRepository, redisClient *redis.Client, cacheTTL time.Duration) *StatsService {
	return &StatsService{
		tradeRepo: tradeRepo,
		redis:     redisClient,
		cacheTTL:  cacheTTL,
	}
}

// Summary returns the scalar metrics for a user in the given display mode
func (s *StatsService) Summary(ctx context.Context, userID uint, mode journal.DisplayMode) (journal.Summary, error) {
	key := summaryCacheKey(userID, mode)

	if data, err := s.redis.Get(ctx, key).Bytes(); err == nil {
		var cached journal.Summary
		if json.Unmarshal(data, &cached) == nil {
			return cached, nil
		}
	}

	records, err := s.tradeRepo.GetByUserID(userID)
	if err != nil {
		return journal.Summary{}, err
	}

	summary := journal.Summarize(models.JournalTrades(records), mode)

	if data, err := json.Marshal(summary); err == nil {
		s.redis.Set(ctx, key, data, s.cacheTTL)
	}

	return summary, nil
}

// Calendar returns the month projection for a user. Week windows can reach
// into adjacent months, so the projection folds over the full trade set
// rather than a date-range query.
func (s *StatsService) Calendar(ctx context.Context, userID uint, year int, month time.Month, mode journal.DisplayMode) (journal.MonthView, error) {
	records, err := s.tradeRepo.GetByUserID(userID)
	if err != nil {
		return journal.MonthView{}, err
	}
	return journal.ProjectMonth(models.JournalTrades(records), year, month, mode), nil
}

// Refresh recomputes and re-caches both summary modes for a user
func (s *StatsService) Refresh(ctx context.Context, userID uint) error {
	s.Invalidate(ctx, userID)
	for _, mode := range []journal.DisplayMode{journal.DisplayModeCurrency, journal.DisplayModeRisk} {
		if _, err := s.Summary(ctx, userID, mode); err != nil {
			return err
		}
	}
	return nil
}

// Invalidate drops the cached summaries for a user
func (s *StatsService) Invalidate(ctx context.Context, userID uint) {
	s.redis.Del(ctx,
		summaryCacheKey(userID, journal.DisplayModeCurrency),
		summaryCacheKey(userID, journal.DisplayModeRisk),
	)
}

func summaryCacheKey(userID uint, mode journal.DisplayMode) string {
	return fmt.Sprintf("stats:summary:%d:%s", userID, mode)
}
