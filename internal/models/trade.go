package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tradejournal/internal/journal"
)

// Trade is the stored journal entry. Price columns are null for simple
// entries; AccountBalanceAtTrade is a snapshot and is never rewritten when
// the profile balance changes later.
type Trade struct {
	ID                    string              `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                uint                `gorm:"index;not null" json:"user_id"`
	AccountID             *string             `gorm:"type:uuid;index" json:"account_id,omitempty"`
	Pair                  string              `gorm:"size:20;not null" json:"pair"`
	EntryMethod           journal.EntryMethod `gorm:"size:10;not null" json:"entry_method"`
	EntryPrice            *float64            `gorm:"type:decimal(20,8)" json:"entry_price,omitempty"`
	ExitPrice             *float64            `gorm:"type:decimal(20,8)" json:"exit_price,omitempty"`
	StopLoss              *float64            `gorm:"type:decimal(20,8)" json:"stop_loss,omitempty"`
	TakeProfit            *float64            `gorm:"type:decimal(20,8)" json:"take_profit,omitempty"`
	PositionSize          float64             `gorm:"type:decimal(20,8);not null" json:"position_size"`
	ProfitUSD             float64             `gorm:"type:decimal(20,8);not null" json:"profit_usd"`
	ProfitRR              float64             `gorm:"type:decimal(20,8);not null" json:"profit_rr"`
	IsWin                 bool                `gorm:"not null" json:"is_win"`
	AccountBalanceAtTrade float64             `gorm:"type:decimal(20,8);not null" json:"account_balance_at_trade"`
	RiskPercent           *float64            `gorm:"type:decimal(10,4)" json:"risk_percent,omitempty"`
	TradeDate             time.Time           `gorm:"type:date;index;not null" json:"trade_date"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for Trade model
func (Trade) TableName() string {
	return "trades"
}

// BeforeCreate assigns an opaque id when none was set
func (t *Trade) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// NewTradeRecord maps a computed journal trade onto its stored form.
func NewTradeRecord(userID uint, t journal.Trade) *Trade {
	rec := &Trade{
		ID:                    t.ID,
		UserID:                userID,
		Pair:                  t.Pair,
		EntryMethod:           t.EntryMethod,
		PositionSize:          t.Size,
		ProfitUSD:             t.Profit,
		ProfitRR:              t.ProfitRR,
		IsWin:                 t.IsWin,
		AccountBalanceAtTrade: t.AccountBalance,
		TradeDate:             t.Date,
	}
	if t.EntryMethod == journal.EntryMethodDetailed {
		rec.EntryPrice = ptr(t.Entry)
		rec.ExitPrice = ptr(t.Exit)
		rec.StopLoss = ptr(t.StopLoss)
		if t.TakeProfit != 0 {
			rec.TakeProfit = ptr(t.TakeProfit)
		}
		if t.RiskPercent != 0 {
			rec.RiskPercent = ptr(t.RiskPercent)
		}
	}
	return rec
}

// Journal maps the stored record back to the in-memory trade the
// calculator, aggregator and projector work with.
func (t *Trade) Journal() journal.Trade {
	return journal.Trade{
		ID:             t.ID,
		Pair:           t.Pair,
		EntryMethod:    t.EntryMethod,
		Entry:          deref(t.EntryPrice),
		Exit:           deref(t.ExitPrice),
		StopLoss:       deref(t.StopLoss),
		TakeProfit:     deref(t.TakeProfit),
		Size:           t.PositionSize,
		Profit:         t.ProfitUSD,
		ProfitRR:       t.ProfitRR,
		IsWin:          t.IsWin,
		Date:           t.TradeDate,
		AccountBalance: t.AccountBalanceAtTrade,
		RiskPercent:    deref(t.RiskPercent),
	}
}

// JournalTrades converts a stored result set in one pass.
func JournalTrades(records []Trade) []journal.Trade {
	trades := make([]journal.Trade, len(records))
	for i := range records {
		trades[i] = records[i].Journal()
	}
	return trades
}

func ptr(f float64) *float64 { return &f }

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
