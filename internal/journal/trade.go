package journal

import "time"

// EntryMethod describes how a trade was recorded
type EntryMethod string

const (
	EntryMethodSimple   EntryMethod = "simple"
	EntryMethodDetailed EntryMethod = "detailed"
)

// DisplayMode selects which P&L unit drives value fields in rollups
type DisplayMode string

const (
	DisplayModeCurrency DisplayMode = "$"
	DisplayModeRisk     DisplayMode = "RR"
)

// Trade is a fully computed journal entry. It is immutable once built:
// AccountBalance is the balance snapshot at trade time and never tracks
// later profile updates.
type Trade struct {
	ID          string
	Pair        string
	EntryMethod EntryMethod

	// Price fields are only set for detailed entries.
	Entry      float64
	Exit       float64
	StopLoss   float64
	TakeProfit float64

	// Size is the position size for detailed entries; for simple entries
	// it holds the risk amount (1R) instead.
	Size float64

	Profit   float64
	ProfitRR float64
	IsWin    bool

	Date           time.Time
	AccountBalance float64
	RiskPercent    float64
}

// Value returns the trade's P&L in the unit selected by mode.
func (t Trade) Value(mode DisplayMode) float64 {
	if mode == DisplayModeRisk {
		return t.ProfitRR
	}
	return t.Profit
}

// sameDay reports whether the trade's date falls on the given calendar day,
// ignoring time of day.
func (t Trade) sameDay(year int, month time.Month, day int) bool {
	y, m, d := t.Date.Date()
	return y == year && m == month && d == day
}
