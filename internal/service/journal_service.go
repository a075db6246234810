package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tradejournal/internal/events"
	"github.com/tradejournal/internal/journal"
	"github.com/tradejournal/internal/models"
	"github.com/tradejournal/internal/repository"
)

var (
	ErrInvalidTradeDate = errors.New("invalid trade date")
)

const tradeDateLayout = "2006-01-02"

// JournalService owns the trade lifecycle: calculation, persistence,
// import/export and the profile-default propagation that follows every new
// trade.
type JournalService struct {
	tradeRepo   *repository.TradeRepository
	profileRepo *repository.ProfileRepository
	statsSvc    *StatsService
	hub         *events.Hub
}

// NewJournalService creates a new JournalService
func NewJournalService(
	tradeRepo *repository.TradeRepository,
	profileRepo *repository.ProfileRepository,
	statsSvc *StatsService,
	hub *events.Hub,
) *JournalService {
	return &JournalService{
		tradeRepo:   tradeRepo,
		profileRepo: profileRepo,
		statsSvc:    statsSvc,
		hub:         hub,
	}
}

// CreateTradeRequest carries the raw entry form fields. Which fields are
// required depends on the entry method; the calculator validates them.
type CreateTradeRequest struct {
	Pair        string              `json:"pair" binding:"required,max=20"`
	EntryMethod journal.EntryMethod `json:"entry_method" binding:"required,oneof=simple detailed"`
	TradeDate   string              `json:"trade_date" binding:"required"`

	AccountBalance float64 `json:"account_balance" binding:"required,gt=0"`

	// Detailed mode
	EntryPrice  float64 `json:"entry_price"`
	ExitPrice   float64 `json:"exit_price"`
	StopLoss    float64 `json:"stop_loss"`
	TakeProfit  float64 `json:"take_profit"`
	RiskPercent float64 `json:"risk_percent"`

	// Simple mode
	RRValue float64 `json:"rr_value"`
}

// CreateTrade computes and persists a new trade, then moves the profile
// defaults to the trade's balance snapshot (and risk percent for detailed
// entries). Calculation failures surface as journal.ErrInvalidInput and
// nothing is persisted.
func (s *JournalService) CreateTrade(ctx context.Context, userID uint, req *CreateTradeRequest) (*models.Trade, error) {
	date, err := time.Parse(tradeDateLayout, req.TradeDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTradeDate, req.TradeDate)
	}

	var trade journal.Trade
	switch req.EntryMethod {
	case journal.EntryMethodDetailed:
		trade, err = journal.CalculateDetailed(journal.DetailedInput{
			Pair:           req.Pair,
			Entry:          req.EntryPrice,
			Exit:           req.ExitPrice,
			StopLoss:       req.StopLoss,
			TakeProfit:     req.TakeProfit,
			AccountBalance: req.AccountBalance,
			RiskPercent:    req.RiskPercent,
			Date:           date,
		})
	default:
		trade, err = journal.CalculateSimple(journal.SimpleInput{
			Pair:           req.Pair,
			RRValue:        req.RRValue,
			AccountBalance: req.AccountBalance,
			Date:           date,
		})
	}
	if err != nil {
		return nil, err
	}

	record := models.NewTradeRecord(userID, trade)
	if err := s.tradeRepo.Create(record); err != nil {
		return nil, err
	}

	s.propagateDefaults(userID, record)
	s.statsSvc.Invalidate(ctx, userID)
	s.hub.Publish(events.Event{Type: events.EventTradeCreated, UserID: userID, Payload: record})

	return record, nil
}

// propagateDefaults moves the profile's pre-populated balance and risk to
// the values the latest trade declared. Stored trades keep their own
// snapshots; failures here are logged by the caller chain only through the
// request logger, the trade itself is already persisted.
func (s *JournalService) propagateDefaults(userID uint, record *models.Trade) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return
	}
	profile.AccountBalance = record.AccountBalanceAtTrade
	if record.RiskPercent != nil && *record.RiskPercent > 0 {
		profile.DefaultRiskPercent = *record.RiskPercent
	}
	s.profileRepo.Update(profile)
}

// ListTrades retrieves a user's trades with pagination, newest first
func (s *JournalService) ListTrades(userID uint, page, pageSize int) ([]models.Trade, int64, error) {
	return s.tradeRepo.GetByUserIDPaginated(userID, page, pageSize)
}

// ListAllTrades retrieves all of a user's trades, newest first
func (s *JournalService) ListAllTrades(userID uint) ([]models.Trade, error) {
	return s.tradeRepo.GetByUserID(userID)
}

// UpdateTradeRequest is the patch applied to an existing trade. Computed
// P&L fields are immutable; only descriptive fields can change.
type UpdateTradeRequest struct {
	Pair      string  `json:"pair" binding:"omitempty,max=20"`
	TradeDate string  `json:"trade_date" binding:"omitempty"`
	AccountID *string `json:"account_id"`
}

// UpdateTrade patches a trade's descriptive fields
func (s *JournalService) UpdateTrade(ctx context.Context, userID uint, id string, req *UpdateTradeRequest) (*models.Trade, error) {
	record, err := s.tradeRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Pair != "" {
		record.Pair = req.Pair
	}
	if req.TradeDate != "" {
		date, err := time.Parse(tradeDateLayout, req.TradeDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTradeDate, req.TradeDate)
		}
		record.TradeDate = date
	}
	if req.AccountID != nil {
		record.AccountID = req.AccountID
	}

	if err := s.tradeRepo.Update(record); err != nil {
		return nil, err
	}

	s.statsSvc.Invalidate(ctx, userID)
	s.hub.Publish(events.Event{Type: events.EventTradeUpdated, UserID: userID, Payload: record})

	return record, nil
}

// DeleteTrade removes a trade
func (s *JournalService) DeleteTrade(ctx context.Context, userID uint, id string) error {
	if err := s.tradeRepo.Delete(userID, id); err != nil {
		return err
	}

	s.statsSvc.Invalidate(ctx, userID)
	s.hub.Publish(events.Event{Type: events.EventTradeDeleted, UserID: userID, Payload: map[string]string{"id": id}})

	return nil
}

// ImportReport summarizes a CSV import
type ImportReport struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportCSV reads trades from the interchange CSV format and persists them
// in one batch. Short or malformed rows are skipped and reported, never
// fatal.
func (s *JournalService) ImportCSV(ctx context.Context, userID uint, r io.Reader) (*ImportReport, error) {
	res, err := journal.ImportCSV(r)
	if err != nil {
		return nil, err
	}

	records := make([]models.Trade, len(res.Trades))
	for i, t := range res.Trades {
		records[i] = *models.NewTradeRecord(userID, t)
	}
	if err := s.tradeRepo.CreateBatch(records); err != nil {
		return nil, err
	}

	if len(records) > 0 {
		s.statsSvc.Invalidate(ctx, userID)
		s.hub.Publish(events.Event{Type: events.EventTradeCreated, UserID: userID, Payload: map[string]int{"imported": len(records)}})
	}

	return &ImportReport{Imported: len(records), Skipped: res.Skipped}, nil
}

// ExportCSV writes all of a user's trades in the interchange CSV format
func (s *JournalService) ExportCSV(userID uint, w io.Writer) error {
	records, err := s.tradeRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	return journal.ExportCSV(w, models.JournalTrades(records))
}
