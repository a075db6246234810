package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mkTrade(profit, profitRR float64, day int) Trade {
	return Trade{
		Pair:     "EURUSD",
		Profit:   profit,
		ProfitRR: profitRR,
		IsWin:    profit > 0,
		Date:     time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, DisplayModeCurrency)

	assert.Zero(t, s.TotalTrades)
	assert.Zero(t, s.WinRate)
	assert.Zero(t, s.AvgWin)
	assert.Zero(t, s.AvgLoss)
	assert.Zero(t, s.ProfitFactor)
}

func TestSummarizeCurrency(t *testing.T) {
	trades := []Trade{
		mkTrade(100, 2, 1),
		mkTrade(-50, -1, 2),
	}

	s := Summarize(trades, DisplayModeCurrency)

	assert.Equal(t, 2, s.TotalTrades)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.InDelta(t, 50, s.WinRate, 1e-9)
	assert.InDelta(t, 50, s.TotalProfit, 1e-9)
	assert.InDelta(t, 1, s.TotalProfitRR, 1e-9)
	assert.InDelta(t, 100, s.AvgWin, 1e-9)
	assert.InDelta(t, 50, s.AvgLoss, 1e-9)
	assert.InDelta(t, 2, s.ProfitFactor, 1e-9)
}

func TestSummarizeRiskMode(t *testing.T) {
	trades := []Trade{
		mkTrade(300, 3, 1),
		mkTrade(100, 1, 2),
		mkTrade(-200, -2, 3),
	}

	s := Summarize(trades, DisplayModeRisk)

	assert.InDelta(t, 2, s.AvgWin, 1e-9)
	assert.InDelta(t, 2, s.AvgLoss, 1e-9)
	// (2 * 2 wins) / (2 * 1 loss)
	assert.InDelta(t, 2, s.ProfitFactor, 1e-9)
	// totals carry both units regardless of mode
	assert.InDelta(t, 200, s.TotalProfit, 1e-9)
	assert.InDelta(t, 2, s.TotalProfitRR, 1e-9)
}

func TestSummarizeNoLossesKeepsProfitFactorZero(t *testing.T) {
	trades := []Trade{
		mkTrade(100, 1, 1),
		mkTrade(250, 2.5, 2),
	}

	s := Summarize(trades, DisplayModeCurrency)

	assert.Equal(t, 2, s.Wins)
	assert.Zero(t, s.Losses)
	assert.Zero(t, s.AvgLoss)
	assert.Zero(t, s.ProfitFactor)
}

func TestSummarizeOrderIndependent(t *testing.T) {
	trades := []Trade{
		mkTrade(120, 1.2, 1),
		mkTrade(-60, -0.6, 5),
		mkTrade(90, 0.9, 9),
	}
	reversed := []Trade{trades[2], trades[1], trades[0]}

	assert.Equal(t, Summarize(trades, DisplayModeCurrency), Summarize(reversed, DisplayModeCurrency))
}
