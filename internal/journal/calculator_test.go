package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tradeDate() time.Time {
	return time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
}

func TestCalculateDetailed(t *testing.T) {
	trade, err := CalculateDetailed(DetailedInput{
		Pair:           "EURUSD",
		Entry:          1.1000,
		Exit:           1.1100,
		StopLoss:       1.0950,
		AccountBalance: 100000,
		RiskPercent:    1,
		Date:           tradeDate(),
	})
	require.NoError(t, err)

	// risk amount 1000, stop distance 0.005 -> size 200000
	assert.InDelta(t, 200000, trade.Size, 1e-6)
	assert.InDelta(t, 2000, trade.Profit, 1e-6)
	assert.InDelta(t, 2.0, trade.ProfitRR, 1e-9)
	assert.True(t, trade.IsWin)
	assert.Equal(t, EntryMethodDetailed, trade.EntryMethod)
	assert.Equal(t, tradeDate(), trade.Date)
	assert.InDelta(t, 100000, trade.AccountBalance, 1e-9)
}

func TestCalculateDetailedLoss(t *testing.T) {
	trade, err := CalculateDetailed(DetailedInput{
		Pair:           "GBPUSD",
		Entry:          1.2500,
		Exit:           1.2400,
		StopLoss:       1.2450,
		AccountBalance: 50000,
		RiskPercent:    2,
		Date:           tradeDate(),
	})
	require.NoError(t, err)

	assert.Less(t, trade.Profit, 0.0)
	assert.Less(t, trade.ProfitRR, 0.0)
	assert.False(t, trade.IsWin)
	// profit and RR must carry the same sign
	assert.InDelta(t, -2.0, trade.ProfitRR, 1e-9)
}

func TestCalculateDetailedBreakEven(t *testing.T) {
	trade, err := CalculateDetailed(DetailedInput{
		Pair:           "EURUSD",
		Entry:          1.1000,
		Exit:           1.1000,
		StopLoss:       1.0950,
		AccountBalance: 100000,
		RiskPercent:    1,
		Date:           tradeDate(),
	})
	require.NoError(t, err)

	assert.Zero(t, trade.Profit)
	assert.Zero(t, trade.ProfitRR)
	assert.False(t, trade.IsWin)
}

func TestCalculateDetailedInvalidInput(t *testing.T) {
	valid := DetailedInput{
		Pair:           "EURUSD",
		Entry:          1.1000,
		Exit:           1.1100,
		StopLoss:       1.0950,
		AccountBalance: 100000,
		RiskPercent:    1,
		Date:           tradeDate(),
	}

	cases := map[string]func(in *DetailedInput){
		"empty pair":             func(in *DetailedInput) { in.Pair = "  " },
		"pair too long":          func(in *DetailedInput) { in.Pair = "AAAAAAAAAAAAAAAAAAAAA" },
		"zero entry":             func(in *DetailedInput) { in.Entry = 0 },
		"negative exit":          func(in *DetailedInput) { in.Exit = -1 },
		"entry equals stop":      func(in *DetailedInput) { in.StopLoss = in.Entry },
		"zero balance":           func(in *DetailedInput) { in.AccountBalance = 0 },
		"risk percent too small": func(in *DetailedInput) { in.RiskPercent = 0.001 },
		"risk percent above 100": func(in *DetailedInput) { in.RiskPercent = 150 },
		"future date":            func(in *DetailedInput) { in.Date = time.Now().AddDate(0, 0, 2) },
		"zero date":              func(in *DetailedInput) { in.Date = time.Time{} },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := valid
			mutate(&in)
			_, err := CalculateDetailed(in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCalculateSimple(t *testing.T) {
	trade, err := CalculateSimple(SimpleInput{
		Pair:           "XAUUSD",
		RRValue:        2.5,
		AccountBalance: 100000,
		Date:           tradeDate(),
	})
	require.NoError(t, err)

	assert.InDelta(t, 1000, trade.Size, 1e-9) // 1R = 1% of balance
	assert.InDelta(t, 2500, trade.Profit, 1e-9)
	assert.InDelta(t, 2.5, trade.ProfitRR, 1e-9)
	assert.True(t, trade.IsWin)
	assert.Equal(t, EntryMethodSimple, trade.EntryMethod)
}

func TestCalculateSimpleZeroRRIsNotAWin(t *testing.T) {
	trade, err := CalculateSimple(SimpleInput{
		Pair:           "EURUSD",
		RRValue:        0,
		AccountBalance: 20000,
		Date:           tradeDate(),
	})
	require.NoError(t, err)

	assert.Zero(t, trade.Profit)
	assert.False(t, trade.IsWin)
}

func TestCalculateSimpleInvalidInput(t *testing.T) {
	valid := SimpleInput{
		Pair:           "EURUSD",
		RRValue:        1,
		AccountBalance: 10000,
		Date:           tradeDate(),
	}

	cases := map[string]func(in *SimpleInput){
		"empty pair":       func(in *SimpleInput) { in.Pair = "" },
		"rr too low":       func(in *SimpleInput) { in.RRValue = -101 },
		"rr too high":      func(in *SimpleInput) { in.RRValue = 1001 },
		"zero balance":     func(in *SimpleInput) { in.AccountBalance = 0 },
		"negative balance": func(in *SimpleInput) { in.AccountBalance = -5 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := valid
			mutate(&in)
			_, err := CalculateSimple(in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestIsWinMatchesProfitSign(t *testing.T) {
	inputs := []DetailedInput{
		{Pair: "EURUSD", Entry: 1.2, Exit: 1.3, StopLoss: 1.1, AccountBalance: 1000, RiskPercent: 1, Date: tradeDate()},
		{Pair: "EURUSD", Entry: 1.2, Exit: 1.1, StopLoss: 1.25, AccountBalance: 1000, RiskPercent: 1, Date: tradeDate()},
		{Pair: "EURUSD", Entry: 1.2, Exit: 1.2, StopLoss: 1.15, AccountBalance: 1000, RiskPercent: 1, Date: tradeDate()},
	}
	for _, in := range inputs {
		trade, err := CalculateDetailed(in)
		require.NoError(t, err)
		assert.Equal(t, trade.Profit > 0, trade.IsWin)
		if trade.Profit != 0 {
			assert.Equal(t, trade.Profit > 0, trade.ProfitRR > 0)
		}
	}

	for _, rr := range []float64{3, -0.5, 0} {
		trade, err := CalculateSimple(SimpleInput{Pair: "EURUSD", RRValue: rr, AccountBalance: 1000, Date: tradeDate()})
		require.NoError(t, err)
		assert.Equal(t, trade.Profit > 0, trade.IsWin)
	}
}
